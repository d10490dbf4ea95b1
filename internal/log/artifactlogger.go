package log

import (
	"bytes"
	"fmt"
	"io"
	"sync"
	"time"
)

// ArtifactLogger records the full text of rendered artifacts.
type ArtifactLogger interface {
	Log(path string, data []byte)
}

type artifactLogger struct {
	w  io.Writer
	mu sync.Mutex
}

// NewArtifact creates an ArtifactLogger writing to w. A nil w discards everything.
func NewArtifact(w io.Writer) ArtifactLogger {
	return &artifactLogger{w: w}
}

// Log writes a header line naming the artifact followed by its contents.
func (a *artifactLogger) Log(path string, data []byte) {
	if len(data) == 0 {
		return
	}
	if a.w == nil {
		return
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s ==> %s (%d bytes)\n",
		time.Now().Format("2006/01/02 15:04:05"),
		path,
		len(data))
	buf.Write(data)
	if !bytes.HasSuffix(data, []byte("\n")) {
		buf.WriteByte('\n')
	}

	a.mu.Lock()
	_, _ = a.w.Write(buf.Bytes())
	a.mu.Unlock()
}
