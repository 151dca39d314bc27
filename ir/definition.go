package ir

import "fmt"

// DefinitionKind identifies the category of the annotated declaration.
// Generation is only supported for enumerations; the other kinds exist
// so that misapplied directives are rejected with a precise error.
type DefinitionKind int

const (
	KindEnum   DefinitionKind = iota // defined type with a const group of unit variants
	KindStruct                       // record type (Go struct)
	KindUnion                        // union type (Go interface)
)

// String returns the string representation of the definition kind.
func (k DefinitionKind) String() string {
	switch k {
	case KindEnum:
		return "enum"
	case KindStruct:
		return "struct"
	case KindUnion:
		return "union"
	default:
		return fmt.Sprintf("DefinitionKind(%d)", int(k))
	}
}

// VariantShape identifies the data shape of a variant. Source-based
// providers always produce unit variants; non-unit shapes can only be
// constructed through the programmatic API and are rejected by Validate.
type VariantShape int

const (
	ShapeUnit    VariantShape = iota // no associated data
	ShapeNamed                       // named fields
	ShapeTuple                       // unnamed positional fields
	ShapeNewtype                     // a single wrapped value
)

// String returns the string representation of the variant shape.
func (s VariantShape) String() string {
	switch s {
	case ShapeUnit:
		return "unit"
	case ShapeNamed:
		return "named fields"
	case ShapeTuple:
		return "tuple fields"
	case ShapeNewtype:
		return "newtype"
	default:
		return fmt.Sprintf("VariantShape(%d)", int(s))
	}
}

// TypeDefinition is the immutable in-memory representation of one
// annotated enumeration type. It is built once per generation pass,
// owned by that pass, and never mutated afterwards.
type TypeDefinition struct {
	// Name is the type identifier.
	Name string

	// Package is the Go package the type was extracted from.
	Package PackageInfo

	// Source is the location of the type declaration.
	Source Source

	// Kind is the declaration category. Only KindEnum validates.
	Kind DefinitionKind

	// Underlying is the basic type name the enum is defined over
	// (e.g. "int", "uint8", "string"). Used by emitters for the
	// out-of-set fallback branch.
	Underlying string

	// Variants are the enum members in declaration order. Declaration
	// order is iteration and listing order.
	Variants []VariantDefinition

	// Attrs holds the type-level directives.
	Attrs TypeAttributes

	// DeclaredMethods lists method names already present on the type
	// in source, used to detect capability conflicts.
	DeclaredMethods []string
}

// HasMethod reports whether the type already declares a method with the
// given name.
func (d *TypeDefinition) HasMethod(name string) bool {
	for _, m := range d.DeclaredMethods {
		if m == name {
			return true
		}
	}
	return false
}

// VariantDefinition is a single enum member and its directives.
type VariantDefinition struct {
	// Name is the variant identifier, unique within the type.
	Name string

	// Shape is the variant's data shape. Must be ShapeUnit to validate.
	Shape VariantShape

	// Skip excludes the variant from iteration and listing. Skipped
	// variants still resolve strings and still participate in parsing.
	Skip bool

	// Rename overrides the display string resolution.
	Rename *RenameSpec

	// RenameAbbr overrides the abbreviated string resolution.
	RenameAbbr *RenameSpec

	// Source is the location of the variant declaration.
	Source Source
}

// TypeAttributes holds the type-level directives.
type TypeAttributes struct {
	// Rename is the base rename strategy applied to every variant's
	// display string. Only case strategies are legal at type level.
	Rename *RenameSpec

	// RenameAbbr is the base rename strategy applied to every
	// variant's abbreviated string. Only case strategies are legal.
	RenameAbbr *RenameSpec

	// Display requests a fmt.Stringer implementation.
	Display bool

	// FromStr requests a Parse<Type> function.
	FromStr bool

	// Serialize requests an encoding.TextMarshaler implementation.
	// Honored only when the generator's serde feature is enabled.
	Serialize bool

	// Deserialize requests an encoding.TextUnmarshaler implementation.
	// Honored only when the generator's serde feature is enabled.
	Deserialize bool
}
