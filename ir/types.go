// Package ir defines the definition model for annotated enumeration
// types, the resolution of their textual representations, and the plan
// of operations to generate. Providers build the model, the emitter
// consumes the plan; everything in between is pure and side-effect free.
package ir

// PackageInfo describes the Go package a definition was extracted from.
type PackageInfo struct {
	// Path is the import path (e.g., "github.com/foo/bar/api").
	Path string

	// Name is the package name (e.g., "api").
	Name string

	// Dir is the filesystem directory, if known.
	Dir string
}

// IsZero returns true if the package info is empty.
func (p PackageInfo) IsZero() bool {
	return p.Path == "" && p.Name == "" && p.Dir == ""
}

// Source represents a source code location.
type Source struct {
	File   string
	Line   int
	Column int
}

// IsZero returns true if the source location is empty.
func (s Source) IsZero() bool {
	return s.File == "" && s.Line == 0 && s.Column == 0
}

// Warning represents a non-fatal issue encountered during resolution or
// synthesis. Warnings never abort a generation pass.
type Warning struct {
	// Code is a machine-readable warning identifier.
	Code string

	// Message is a human-readable description.
	Message string

	// TypeName is the type that triggered the warning, if applicable.
	TypeName string

	// Source is the location that triggered the warning, if applicable.
	Source *Source
}
