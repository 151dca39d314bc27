package ir

import "fmt"

// Op identifies one operation to materialize for a type.
type Op int

const (
	OpAsStr Op = iota
	OpAsStrAbbr
	OpIterVariants
	OpIterVariantsAsStr
	OpIterVariantsAsStrAbbr
	OpVariantsListStr
	OpVariantsListStrAbbr
	OpDisplay
	OpFromStr
	OpSerialize
	OpDeserialize
	OpClone
)

// String returns the string representation of the op.
func (o Op) String() string {
	switch o {
	case OpAsStr:
		return "AsStr"
	case OpAsStrAbbr:
		return "AsStrAbbr"
	case OpIterVariants:
		return "IterVariants"
	case OpIterVariantsAsStr:
		return "IterVariantsAsStr"
	case OpIterVariantsAsStrAbbr:
		return "IterVariantsAsStrAbbr"
	case OpVariantsListStr:
		return "VariantsListStr"
	case OpVariantsListStrAbbr:
		return "VariantsListStrAbbr"
	case OpDisplay:
		return "Display"
	case OpFromStr:
		return "FromStr"
	case OpSerialize:
		return "Serialize"
	case OpDeserialize:
		return "Deserialize"
	case OpClone:
		return "Clone"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// SynthesizeOptions are the requested-operations flags. The iteration
// and listing families default to on; the serde flag gates the
// serialize and deserialize capabilities.
type SynthesizeOptions struct {
	// Iterators requests the iteration family.
	Iterators bool

	// Lists requests the listing family.
	Lists bool

	// Serde enables the serialize/deserialize capabilities for types
	// that request them.
	Serde bool
}

// GenerationPlan is the language-neutral description of every operation
// to materialize for one type, together with the resolution table the
// operations draw their match arms from.
type GenerationPlan struct {
	// Type is the target type's name.
	Type string

	// Table is the resolution table the operations are built over.
	Table *ResolutionTable

	// Ops lists the operations to emit, in a fixed deterministic order.
	Ops []Op
}

// Contains reports whether the plan includes the given op.
func (p *GenerationPlan) Contains(op Op) bool {
	for _, o := range p.Ops {
		if o == op {
			return true
		}
	}
	return false
}

// Synthesize builds the GenerationPlan for a validated, resolved
// definition. AsStr and AsStrAbbr are always planned; the iteration and
// listing families follow the option flags; the display, from_str,
// serialize and deserialize capabilities follow the type's directives.
//
// The trivial duplication capability (Clone) is always planned, since
// every generated type is data-less and cheaply copyable. If the type
// already declares a Clone method the plan is refused with a
// ConflictingCapabilityError rather than letting two definitions of the
// same capability collide in the generated file. The same rule protects
// the String, MarshalText and UnmarshalText names when the
// corresponding capability is requested.
func Synthesize(def *TypeDefinition, table *ResolutionTable, opts SynthesizeOptions) (*GenerationPlan, []Warning, error) {
	if table == nil || table.Type != def.Name {
		return nil, nil, fmt.Errorf("%s: resolution table does not belong to this definition", def.Name)
	}

	if def.HasMethod("Clone") {
		return nil, nil, &ConflictingCapabilityError{Type: def.Name, Capability: "Clone"}
	}

	plan := &GenerationPlan{
		Type:  def.Name,
		Table: table,
		Ops:   []Op{OpAsStr, OpAsStrAbbr},
	}
	if opts.Iterators {
		plan.Ops = append(plan.Ops, OpIterVariants, OpIterVariantsAsStr, OpIterVariantsAsStrAbbr)
	}
	if opts.Lists {
		plan.Ops = append(plan.Ops, OpVariantsListStr, OpVariantsListStrAbbr)
	}

	var warnings []Warning
	if def.Attrs.Display {
		if def.HasMethod("String") {
			return nil, nil, &ConflictingCapabilityError{Type: def.Name, Capability: "String"}
		}
		plan.Ops = append(plan.Ops, OpDisplay)
	}
	if def.Attrs.FromStr {
		plan.Ops = append(plan.Ops, OpFromStr)
	}
	if def.Attrs.Serialize || def.Attrs.Deserialize {
		if !opts.Serde {
			warnings = append(warnings, Warning{
				Code:     "serde_disabled",
				Message:  "serialize/deserialize directives ignored; enable the serde option to honor them",
				TypeName: def.Name,
			})
		} else {
			if def.Attrs.Serialize {
				if def.HasMethod("MarshalText") {
					return nil, nil, &ConflictingCapabilityError{Type: def.Name, Capability: "MarshalText"}
				}
				plan.Ops = append(plan.Ops, OpSerialize)
			}
			if def.Attrs.Deserialize {
				if def.HasMethod("UnmarshalText") {
					return nil, nil, &ConflictingCapabilityError{Type: def.Name, Capability: "UnmarshalText"}
				}
				plan.Ops = append(plan.Ops, OpDeserialize)
			}
		}
	}

	plan.Ops = append(plan.Ops, OpClone)
	return plan, warnings, nil
}
