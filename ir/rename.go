package ir

import "fmt"

// RenameKind identifies the strategy of a RenameSpec.
type RenameKind int

const (
	// RenameLiteral replaces the representation with a fixed string.
	// Only legal on variant-level directives.
	RenameLiteral RenameKind = iota

	// RenameUppercase converts the representation to uppercase.
	RenameUppercase

	// RenameLowercase converts the representation to lowercase.
	RenameLowercase
)

// String returns the directive spelling of the rename kind.
func (k RenameKind) String() string {
	switch k {
	case RenameLiteral:
		return "literal"
	case RenameUppercase:
		return "uppercase"
	case RenameLowercase:
		return "lowercase"
	default:
		return fmt.Sprintf("RenameKind(%d)", int(k))
	}
}

// RenameSpec is one rename or rename_abbr directive value: a literal
// override, an uppercase transform, or a lowercase transform.
type RenameSpec struct {
	Kind    RenameKind
	Literal string // set only when Kind is RenameLiteral
}

// Literal returns a rename spec that substitutes a fixed string.
func Literal(s string) *RenameSpec {
	return &RenameSpec{Kind: RenameLiteral, Literal: s}
}

// Uppercase returns a rename spec that uppercases the representation.
func Uppercase() *RenameSpec {
	return &RenameSpec{Kind: RenameUppercase}
}

// Lowercase returns a rename spec that lowercases the representation.
func Lowercase() *RenameSpec {
	return &RenameSpec{Kind: RenameLowercase}
}

// String returns the directive form of the spec, e.g. `rename("x")`
// renders as `"x"` and `rename(uppercase)` as `uppercase`.
func (s *RenameSpec) String() string {
	if s == nil {
		return "<none>"
	}
	if s.Kind == RenameLiteral {
		return fmt.Sprintf("%q", s.Literal)
	}
	return s.Kind.String()
}
