package ir

import "fmt"

// StructuralError reports a directive applied to a declaration that is
// not an enumeration of unit variants (a struct or union target, or an
// enum type without any variants).
type StructuralError struct {
	Type   string
	Kind   DefinitionKind
	Reason string
}

func (e *StructuralError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s", e.Type, e.Reason)
	}
	return fmt.Sprintf("%s: variants directives require an enum type, got %s", e.Type, e.Kind)
}

// FieldShapeError reports a variant that carries data.
type FieldShapeError struct {
	Type    string
	Variant string
	Shape   VariantShape
}

func (e *FieldShapeError) Error() string {
	return fmt.Sprintf("%s.%s: variant carries data (%s); only unit variants are supported", e.Type, e.Variant, e.Shape)
}

// AttributeValueError reports an illegal value for a rename or
// rename_abbr directive, or a malformed directive surface (unknown
// directive name, duplicate variant identifier).
type AttributeValueError struct {
	Type    string
	Variant string // empty for type-level directives
	Attr    string
	Reason  string
}

func (e *AttributeValueError) Error() string {
	target := e.Type
	if e.Variant != "" {
		target = e.Type + "." + e.Variant
	}
	if e.Attr == "" {
		return fmt.Sprintf("%s: %s", target, e.Reason)
	}
	return fmt.Sprintf("%s: invalid %s directive: %s", target, e.Attr, e.Reason)
}

// ConflictingCapabilityError reports a generated capability that would
// collide with one the type already declares.
type ConflictingCapabilityError struct {
	Type       string
	Capability string // generated method name, e.g. "Clone"
}

func (e *ConflictingCapabilityError) Error() string {
	return fmt.Sprintf("%s: generated %s would conflict with an existing %s declaration", e.Type, e.Capability, e.Capability)
}

// AmbiguousRepresentationError reports two variants resolving to the
// same display or abbreviated string while a parse or deserialize
// capability is requested. Parsing must be a one-to-one inverse of the
// string conversion, so the collision is fatal.
type AmbiguousRepresentationError struct {
	Type  string
	Field string // "display" or "abbreviation"
	Value string
	First string
	Other string
}

func (e *AmbiguousRepresentationError) Error() string {
	return fmt.Sprintf("%s: variants %s and %s share the %s string %q; parsing would be ambiguous",
		e.Type, e.First, e.Other, e.Field, e.Value)
}
