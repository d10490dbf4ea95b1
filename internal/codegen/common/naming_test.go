package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCaseConversions(t *testing.T) {
	tests := []struct {
		in, pascal, camel, snake string
	}{
		{"", "", "", ""},
		{"sensor_id", "SensorId", "sensorId", "sensor_id"},
		{"sensorID", "SensorID", "sensorID", "sensor_id"},
		{"XMLParser", "XMLParser", "xMLParser", "xml_parser"},
		{"my-name here", "MyNameHere", "myNameHere", "my-name here"},
		{"add", "Add", "add", "add"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.pascal, ToPascalCase(tt.in))
			assert.Equal(t, tt.camel, ToCamelCase(tt.in))
			assert.Equal(t, tt.snake, ToSnakeCase(tt.in))
		})
	}
}

func TestSanitizeLeadingDigit(t *testing.T) {
	assert.Equal(t, "Num2D", SanitizeLeadingDigit("2D"))
	assert.Equal(t, "RED", SanitizeLeadingDigit("RED"))
	assert.Equal(t, "", SanitizeLeadingDigit(""))
}

func TestLastSegment(t *testing.T) {
	tests := map[string]string{
		"":           "",
		"Color":      "Color",
		"com.acme.a": "a",
		"a::b::C":    "C",
		"::a::B":     "B",
	}
	for in, want := range tests {
		assert.Equal(t, want, LastSegment(in), in)
	}
}

func TestIndent(t *testing.T) {
	assert.Equal(t, "  a\n\n  b", Indent(2, "a\n\nb"))
	assert.Equal(t, "    x", Indent(4, "x"))
	assert.Equal(t, "", Indent(4, ""))
}

func TestGetVersion(t *testing.T) {
	orig := Version
	t.Cleanup(func() { Version = orig })

	Version = ""
	v, err := GetVersion()
	assert.NoError(t, err)
	assert.Equal(t, "0.0.1-dev", v)

	Version = "v1.2.3-rc1"
	v, err = GetVersion()
	assert.NoError(t, err)
	assert.Equal(t, "1.2.3-rc1", v)

	Version = "nightly"
	_, err = GetVersion()
	assert.Error(t, err)
}
