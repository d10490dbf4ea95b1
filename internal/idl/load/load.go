package load

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml"
	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/term"
	yaml "gopkg.in/yaml.v3"

	"github.com/Alia5/idlgen/internal/idl"
)

// Format identifies a document encoding.
type Format string

const (
	FormatYAML    Format = "yaml"
	FormatTOML    Format = "toml"
	FormatJSON    Format = "json"
	FormatMsgpack Format = "msgpack"
)

// Stdin is the path that makes File read from standard input.
const Stdin = "-"

// ErrTerminalInput is returned when asked to read a document from an
// interactive terminal.
var ErrTerminalInput = errors.New("refusing to read definitions from a terminal; pipe a document or pass a file")

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	case ".msgpack", ".mp":
		return FormatMsgpack, nil
	default:
		return "", fmt.Errorf("unsupported definition document extension %q (supported: .yaml, .yml, .toml, .json, .msgpack, .mp)", filepath.Ext(path))
	}
}

// File loads a document from path and builds its Context. Path "-" reads
// YAML (or JSON) from standard input.
func File(path string) (*idl.Context, error) {
	if path == Stdin {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return nil, ErrTerminalInput
		}
		return Read(os.Stdin, FormatYAML, "<stdin>")
	}

	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open definition document: %w", err)
	}
	defer f.Close()

	return Read(f, format, path)
}

// Read decodes a document from r and builds its Context. name is used as the
// source when the document does not set one.
func Read(r io.Reader, format Format, name string) (*idl.Context, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read definition document %s: %w", name, err)
	}
	doc, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("decode definition document %s: %w", name, err)
	}
	if doc.Source == "" {
		doc.Source = name
	}
	return doc.Build()
}

// Decode parses data in the given format.
func Decode(data []byte, format Format) (*Document, error) {
	var doc Document
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	case FormatTOML:
		err = toml.Unmarshal(data, &doc)
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&doc)
	case FormatMsgpack:
		err = msgpack.Unmarshal(data, &doc)
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// Encode serializes doc in the given format.
func Encode(doc *Document, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(doc)
	case FormatTOML:
		return toml.Marshal(doc)
	case FormatJSON:
		return json.MarshalIndent(doc, "", "  ")
	case FormatMsgpack:
		return msgpack.Marshal(doc)
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}
