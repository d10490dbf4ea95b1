package generator

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks against the typed errors below.
var (
	// ErrStructural reports that an output directory could not be provided.
	ErrStructural = errors.New("idlgen: cannot create output directory")
	// ErrWrite reports that a rendered artifact could not be written.
	ErrWrite = errors.New("idlgen: cannot write file")
	// ErrTemplate reports that a template could not be resolved or rendered.
	ErrTemplate = errors.New("idlgen: template failure")
	// ErrNotDirectory is the cause of a StructuralError when the module path
	// is taken by something that is not a directory.
	ErrNotDirectory = errors.New("path exists and is not a directory")
)

// StructuralError is returned when a module directory exists as a
// non-directory or cannot be created. It aborts the render pass.
type StructuralError struct {
	Module string
	Path   string
	Cause  error
}

func (e *StructuralError) Error() string {
	if e.Module != "" {
		return fmt.Sprintf("cannot create directory %s for module %s: %v", e.Path, e.Module, e.Cause)
	}
	return fmt.Sprintf("cannot create directory %s: %v", e.Path, e.Cause)
}

func (e *StructuralError) Unwrap() error { return e.Cause }

func (e *StructuralError) Is(target error) bool { return target == ErrStructural }

// WriteError is returned when a rendered artifact cannot be written. Files
// written before the failure are left in place.
type WriteError struct {
	Path  string
	Cause error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("cannot write file %s: %v", e.Path, e.Cause)
}

func (e *WriteError) Unwrap() error { return e.Cause }

func (e *WriteError) Is(target error) bool { return target == ErrWrite }

// TemplateError is returned when a template cannot be resolved or rendered.
type TemplateError struct {
	Template string
	Cause    error
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("template %s: %v", e.Template, e.Cause)
}

func (e *TemplateError) Unwrap() error { return e.Cause }

func (e *TemplateError) Is(target error) bool { return target == ErrTemplate }
