package sgl

import (
	"errors"
	"fmt"
)

var (
	// ErrCompile is wrapped by shader compilation failures.
	ErrCompile = errors.New("shader compilation failed")
	// ErrLink is wrapped by program link failures.
	ErrLink = errors.New("program link failed")
	// ErrCreate is returned when the context refuses to issue a handle.
	ErrCreate = errors.New("failed to create GL object")
)

// BuildError carries the compiler or linker diagnostic of a failed build.
type BuildError struct {
	Stage string // "vertex", "fragment" or "link"
	Log   string
}

func (e *BuildError) Error() string {
	if e.Stage == "link" {
		return fmt.Sprintf("failed to link program: %s", e.Log)
	}
	return fmt.Sprintf("failed to compile %s shader: %s", e.Stage, e.Log)
}

func (e *BuildError) Unwrap() error {
	if e.Stage == "link" {
		return ErrLink
	}
	return ErrCompile
}
