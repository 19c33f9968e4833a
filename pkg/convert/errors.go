package convert

import (
	"errors"
	"fmt"
)

// Every conversion failure is fatal to that conversion: no partial mesh is
// ever returned and nothing is retried here. The caller decides whether to
// retry with different parameters.
var (
	// ErrInputNotFound means the input file could not be located.
	ErrInputNotFound = errors.New("input file not found")

	// ErrNoGeometry means the shape contains no tessellatable faces.
	ErrNoGeometry = errors.New("no faces found in shape")

	// ErrEmptyMesh means the face walk completed but produced no vertices
	// or no triangles.
	ErrEmptyMesh = errors.New("no mesh extracted")
)

// GeometryReadError wraps a failure reported by the shape source (recipe
// loader or script engine) while reading the input description.
type GeometryReadError struct {
	Err error
}

func (e *GeometryReadError) Error() string {
	return fmt.Sprintf("geometry read failed: %v", e.Err)
}

func (e *GeometryReadError) Unwrap() error { return e.Err }

// ConversionError wraps any other stage failure (tessellation, malformed
// triangulation data, export) together with the stage that raised it.
type ConversionError struct {
	Stage string
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Stage, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }
