package ir

// Validate checks a TypeDefinition for structural and directive-value
// violations. It is a pure predicate pass: it either returns nil or the
// first violation found, and produces nothing else. A non-nil error
// aborts the entire generation pass for the type.
func Validate(def *TypeDefinition) error {
	if def.Kind != KindEnum {
		return &StructuralError{Type: def.Name, Kind: def.Kind}
	}
	if len(def.Variants) == 0 {
		return &StructuralError{
			Type:   def.Name,
			Kind:   def.Kind,
			Reason: "enum has no variants (no constants of this type were found)",
		}
	}

	if err := validateTypeRename(def.Name, "rename", def.Attrs.Rename); err != nil {
		return err
	}
	if err := validateTypeRename(def.Name, "rename_abbr", def.Attrs.RenameAbbr); err != nil {
		return err
	}

	seen := make(map[string]bool, len(def.Variants))
	for _, v := range def.Variants {
		if seen[v.Name] {
			return &AttributeValueError{
				Type:    def.Name,
				Variant: v.Name,
				Reason:  "duplicate variant identifier",
			}
		}
		seen[v.Name] = true

		if v.Shape != ShapeUnit {
			return &FieldShapeError{Type: def.Name, Variant: v.Name, Shape: v.Shape}
		}
		if err := validateVariantRename(def.Name, v.Name, "rename", v.Rename); err != nil {
			return err
		}
		if err := validateVariantRename(def.Name, v.Name, "rename_abbr", v.RenameAbbr); err != nil {
			return err
		}
	}
	return nil
}

// validateTypeRename rejects literal strategies at type level: a fixed
// string cannot apply to every variant at once.
func validateTypeRename(typeName, attr string, spec *RenameSpec) error {
	if spec == nil {
		return nil
	}
	switch spec.Kind {
	case RenameUppercase, RenameLowercase:
		return nil
	case RenameLiteral:
		return &AttributeValueError{
			Type:   typeName,
			Attr:   attr,
			Reason: "a literal cannot be used at type level; use uppercase or lowercase",
		}
	default:
		return &AttributeValueError{
			Type:   typeName,
			Attr:   attr,
			Reason: "unknown strategy " + spec.Kind.String(),
		}
	}
}

func validateVariantRename(typeName, variant, attr string, spec *RenameSpec) error {
	if spec == nil {
		return nil
	}
	switch spec.Kind {
	case RenameLiteral, RenameUppercase, RenameLowercase:
		return nil
	default:
		return &AttributeValueError{
			Type:    typeName,
			Variant: variant,
			Attr:    attr,
			Reason:  "unknown strategy " + spec.Kind.String(),
		}
	}
}
