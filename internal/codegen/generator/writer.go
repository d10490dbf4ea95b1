package generator

import (
	"errors"
	"io/fs"
	"os"

	"github.com/Alia5/idlgen/internal/codegen/template"
)

// writeFile renders tmpl into path. An existing file is left untouched
// unless overwrite is set; skipping is not an error.
func (g *Generator) writeFile(path string, tmpl *template.Template, overwrite bool) error {
	_, err := os.Stat(path)
	exists := err == nil
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return &WriteError{Path: path, Cause: err}
	}

	if exists && !overwrite {
		g.metrics.FilesSkipped++
		g.logger.Info("File exists, skipping", "path", path)
		return nil
	}

	text, err := g.render(tmpl)
	if err != nil {
		return err
	}
	data := []byte(text)

	if g.lang.Format != nil {
		if data, err = g.lang.Format(path, data); err != nil {
			return &WriteError{Path: path, Cause: err}
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &WriteError{Path: path, Cause: err}
	}

	g.metrics.FilesWritten++
	g.metrics.TotalBytes += int64(len(data))
	g.artifacts.Log(path, data)
	g.logger.Debug("Wrote file", "path", path, "bytes", len(data))
	return nil
}
