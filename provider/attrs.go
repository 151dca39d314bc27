package provider

import (
	"github.com/variantgen/variantgen/internal/directive"
	"github.com/variantgen/variantgen/ir"
)

// parseTypeAttrs maps a type-level directive list onto TypeAttributes.
// Strategy legality (no literals at type level) is the Validator's job;
// this only rejects unknown directive names and malformed arguments.
func parseTypeAttrs(typeName string, attrs []directive.Attr) (ir.TypeAttributes, error) {
	var out ir.TypeAttributes
	for _, a := range attrs {
		switch a.Name {
		case "rename":
			spec, err := renameSpec(typeName, "", a)
			if err != nil {
				return out, err
			}
			out.Rename = spec
		case "rename_abbr":
			spec, err := renameSpec(typeName, "", a)
			if err != nil {
				return out, err
			}
			out.RenameAbbr = spec
		case "display":
			if err := noArg(typeName, a); err != nil {
				return out, err
			}
			out.Display = true
		case "from_str":
			if err := noArg(typeName, a); err != nil {
				return out, err
			}
			out.FromStr = true
		case "serialize":
			if err := noArg(typeName, a); err != nil {
				return out, err
			}
			out.Serialize = true
		case "deserialize":
			if err := noArg(typeName, a); err != nil {
				return out, err
			}
			out.Deserialize = true
		default:
			return out, &ir.AttributeValueError{
				Type:   typeName,
				Attr:   a.Name,
				Reason: "unknown type-level directive",
			}
		}
	}
	return out, nil
}

// applyVariantAttrs maps a variant-level directive list onto the
// variant definition.
func applyVariantAttrs(v *ir.VariantDefinition, typeName string, attrs []directive.Attr) error {
	for _, a := range attrs {
		switch a.Name {
		case "skip":
			if a.Arg != nil {
				return &ir.AttributeValueError{
					Type:    typeName,
					Variant: v.Name,
					Attr:    "skip",
					Reason:  "takes no argument",
				}
			}
			v.Skip = true
		case "rename":
			spec, err := renameSpec(typeName, v.Name, a)
			if err != nil {
				return err
			}
			v.Rename = spec
		case "rename_abbr":
			spec, err := renameSpec(typeName, v.Name, a)
			if err != nil {
				return err
			}
			v.RenameAbbr = spec
		default:
			return &ir.AttributeValueError{
				Type:    typeName,
				Variant: v.Name,
				Attr:    a.Name,
				Reason:  "unknown variant-level directive",
			}
		}
	}
	return nil
}

// renameSpec interprets the argument of a rename / rename_abbr
// directive: a quoted string becomes a literal override, the bare
// words uppercase and lowercase select the case transforms.
func renameSpec(typeName, variant string, a directive.Attr) (*ir.RenameSpec, error) {
	if a.Arg == nil {
		return nil, &ir.AttributeValueError{
			Type:    typeName,
			Variant: variant,
			Attr:    a.Name,
			Reason:  "missing strategy; expected a string literal, uppercase, or lowercase",
		}
	}
	if a.Arg.Quoted {
		return ir.Literal(a.Arg.Text), nil
	}
	switch a.Arg.Text {
	case "uppercase":
		return ir.Uppercase(), nil
	case "lowercase":
		return ir.Lowercase(), nil
	default:
		return nil, &ir.AttributeValueError{
			Type:    typeName,
			Variant: variant,
			Attr:    a.Name,
			Reason:  "unknown strategy " + a.Arg.Text + "; expected a string literal, uppercase, or lowercase",
		}
	}
}

func noArg(typeName string, a directive.Attr) error {
	if a.Arg == nil {
		return nil
	}
	return &ir.AttributeValueError{
		Type:   typeName,
		Attr:   a.Name,
		Reason: "takes no argument",
	}
}
