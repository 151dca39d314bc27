package ir

import "strings"

// abbrLen is the number of characters (runes, not bytes) kept by the
// default abbreviation.
const abbrLen = 3

// ResolvedVariant is the final textual representation of one variant.
type ResolvedVariant struct {
	// Name is the variant identifier.
	Name string

	// DisplayString is the canonical display representation.
	DisplayString string

	// AbbrString is the abbreviated representation.
	AbbrString string

	// IncludedInIteration is false exactly when the variant is marked
	// skip. Skipped variants still carry both strings and still match
	// during parsing.
	IncludedInIteration bool
}

// ResolutionTable is the immutable per-variant mapping from variant to
// display string, abbreviated string, and iteration inclusion, in
// declaration order. Once computed it is never mutated and is safe for
// concurrent reads.
type ResolutionTable struct {
	// Type is the owning type's name.
	Type string

	// Variants holds one entry per variant, skipped ones included.
	Variants []ResolvedVariant
}

// Iterable returns the variants included in iteration and listing, in
// declaration order.
func (t *ResolutionTable) Iterable() []ResolvedVariant {
	out := make([]ResolvedVariant, 0, len(t.Variants))
	for _, v := range t.Variants {
		if v.IncludedInIteration {
			out = append(out, v)
		}
	}
	return out
}

// ListString returns the listing form of the non-skipped display
// strings: each double-quoted, joined with ", ", declaration order.
func (t *ResolutionTable) ListString() string {
	return listString(t.Iterable(), func(v ResolvedVariant) string { return v.DisplayString })
}

// AbbrListString returns the listing form of the non-skipped
// abbreviated strings.
func (t *ResolutionTable) AbbrListString() string {
	return listString(t.Iterable(), func(v ResolvedVariant) string { return v.AbbrString })
}

func listString(variants []ResolvedVariant, get func(ResolvedVariant) string) string {
	var b strings.Builder
	for i, v := range variants {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('"')
		b.WriteString(get(v))
		b.WriteByte('"')
	}
	return b.String()
}

// Resolve computes the ResolutionTable for a validated definition.
//
// Display strings resolve through a three-level fallback, highest
// priority first: the variant's rename directive (a literal used
// verbatim, or a case transform of the identifier), then the type-level
// rename directive (case transform of the identifier), then the
// identifier unchanged.
//
// Abbreviated strings follow the same shape over the abbreviation: the
// variant's rename_abbr directive (a literal used verbatim, or a case
// transform of the default abbreviation of the resolved display
// string), then the type-level rename_abbr directive (case transform of
// the same abbreviation), then the abbreviation unmodified. The default
// abbreviation is the first three characters of the display string,
// counted by rune; shorter strings are kept whole.
//
// Two variants sharing a display string or sharing an abbreviated
// string make parsing ambiguous. When the definition requests from_str
// or deserialize this is fatal and Resolve returns an
// AmbiguousRepresentationError; otherwise the collision is reported as
// a warning and resolution succeeds.
func Resolve(def *TypeDefinition) (*ResolutionTable, []Warning, error) {
	table := &ResolutionTable{
		Type:     def.Name,
		Variants: make([]ResolvedVariant, 0, len(def.Variants)),
	}

	for _, v := range def.Variants {
		display := resolveDisplay(&v, def.Attrs.Rename)
		table.Variants = append(table.Variants, ResolvedVariant{
			Name:                v.Name,
			DisplayString:       display,
			AbbrString:          resolveAbbr(&v, def.Attrs.RenameAbbr, display),
			IncludedInIteration: !v.Skip,
		})
	}

	warnings, err := checkAmbiguity(def, table)
	if err != nil {
		return nil, nil, err
	}
	return table, warnings, nil
}

func resolveDisplay(v *VariantDefinition, typeRename *RenameSpec) string {
	if v.Rename != nil {
		switch v.Rename.Kind {
		case RenameLiteral:
			return v.Rename.Literal
		case RenameUppercase:
			return strings.ToUpper(v.Name)
		case RenameLowercase:
			return strings.ToLower(v.Name)
		}
	}
	if typeRename != nil {
		switch typeRename.Kind {
		case RenameUppercase:
			return strings.ToUpper(v.Name)
		case RenameLowercase:
			return strings.ToLower(v.Name)
		}
	}
	return v.Name
}

func resolveAbbr(v *VariantDefinition, typeRenameAbbr *RenameSpec, display string) string {
	if v.RenameAbbr != nil {
		switch v.RenameAbbr.Kind {
		case RenameLiteral:
			return v.RenameAbbr.Literal
		case RenameUppercase:
			return strings.ToUpper(abbreviate(display))
		case RenameLowercase:
			return strings.ToLower(abbreviate(display))
		}
	}
	if typeRenameAbbr != nil {
		switch typeRenameAbbr.Kind {
		case RenameUppercase:
			return strings.ToUpper(abbreviate(display))
		case RenameLowercase:
			return strings.ToLower(abbreviate(display))
		}
	}
	return abbreviate(display)
}

// abbreviate truncates to the first abbrLen runes. Multi-byte
// characters count as one each.
func abbreviate(s string) string {
	n := 0
	for i := range s {
		if n == abbrLen {
			return s[:i]
		}
		n++
	}
	return s
}

// checkAmbiguity detects duplicate display or abbreviated strings
// across all variants, skipped ones included.
func checkAmbiguity(def *TypeDefinition, table *ResolutionTable) ([]Warning, error) {
	parsing := def.Attrs.FromStr || def.Attrs.Deserialize

	var warnings []Warning
	report := func(field, value, first, other string) error {
		if parsing {
			return &AmbiguousRepresentationError{
				Type:  def.Name,
				Field: field,
				Value: value,
				First: first,
				Other: other,
			}
		}
		warnings = append(warnings, Warning{
			Code:     "ambiguous_representation",
			Message:  "variants " + first + " and " + other + " share the " + field + " string \"" + value + "\"",
			TypeName: def.Name,
		})
		return nil
	}

	displaySeen := make(map[string]string, len(table.Variants))
	abbrSeen := make(map[string]string, len(table.Variants))
	for _, v := range table.Variants {
		if first, dup := displaySeen[v.DisplayString]; dup {
			if err := report("display", v.DisplayString, first, v.Name); err != nil {
				return nil, err
			}
		} else {
			displaySeen[v.DisplayString] = v.Name
		}
		if first, dup := abbrSeen[v.AbbrString]; dup {
			if err := report("abbreviation", v.AbbrString, first, v.Name); err != nil {
				return nil, err
			}
		} else {
			abbrSeen[v.AbbrString] = v.Name
		}
	}
	return warnings, nil
}
