// Package golang emits Go source for generation plans. It is the
// target-language back end of the pipeline: it materializes every
// operation in a plan as methods, functions and constants attached to
// the annotated type, and formats the result with go/format.
package golang

import (
	"bytes"
	"fmt"
	"go/format"
	"strconv"
	"unicode"

	"github.com/variantgen/variantgen/ir"
)

// Unit pairs one definition with its generation plan. A file is
// emitted from all units of one package.
type Unit struct {
	Def  *ir.TypeDefinition
	Plan *ir.GenerationPlan
}

// FileConfig configures file-level emission.
type FileConfig struct {
	// Header is extra comment text placed above the generated-code
	// marker, one line per entry.
	Header []string
}

// parseErrorType is the name of the error type shared by parse and
// deserialize operations within one generated file.
const parseErrorType = "VariantParseError"

// GeneratedMarker is the DO NOT EDIT line placed above the package
// clause of every emitted file. The provider recognizes a prior run's
// output by this line and keeps its declarations out of the source
// model.
const GeneratedMarker = "// Code generated by variantgen. DO NOT EDIT."

// EmitFile renders one generated Go file for a package. Units are
// emitted in order; the shared parse error type is declared once when
// any unit needs it. The output is gofmt-formatted.
func EmitFile(pkgName string, units []Unit, cfg FileConfig) ([]byte, error) {
	if len(units) == 0 {
		return nil, fmt.Errorf("no units to emit")
	}

	// Imports depend on the planned ops, so render bodies first.
	body := &emitter{}
	needParseError := false
	for _, u := range units {
		if err := body.emitUnit(u); err != nil {
			return nil, err
		}
		if u.Plan.Contains(ir.OpFromStr) || u.Plan.Contains(ir.OpDeserialize) {
			needParseError = true
		}
	}
	if needParseError {
		body.need("strconv")
		body.emitParseError()
	}

	head := &emitter{}
	for _, line := range cfg.Header {
		head.printf("// %s\n", line)
	}
	head.printf("%s\n\n", GeneratedMarker)
	head.printf("package %s\n\n", pkgName)
	if len(body.imports) > 0 {
		head.printf("import (\n")
		for _, imp := range []string{"iter", "strconv"} {
			if body.imports[imp] {
				head.printf("\t%q\n", imp)
			}
		}
		head.printf(")\n\n")
	}
	head.buf.Write(body.buf.Bytes())

	src, err := format.Source(head.buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source for package %s: %w", pkgName, err)
	}
	return src, nil
}

type emitter struct {
	buf     bytes.Buffer
	imports map[string]bool
}

func (e *emitter) printf(f string, args ...any) {
	fmt.Fprintf(&e.buf, f, args...)
}

func (e *emitter) need(imp string) {
	if e.imports == nil {
		e.imports = make(map[string]bool)
	}
	e.imports[imp] = true
}

// emitUnit renders every operation of one plan.
func (e *emitter) emitUnit(u Unit) error {
	def, plan := u.Def, u.Plan
	if plan.Table == nil {
		return fmt.Errorf("%s: plan has no resolution table", def.Name)
	}

	name := def.Name
	recv := receiver(name)
	table := plan.Table

	// AsStr / AsStrAbbr are unconditional.
	e.printf("// AsStr returns the display string of the %s variant.\n", name)
	e.emitStringSwitch(def, recv, "AsStr", table, func(v ir.ResolvedVariant) string { return v.DisplayString })

	e.printf("// AsStrAbbr returns the abbreviated string of the %s variant.\n", name)
	e.emitStringSwitch(def, recv, "AsStrAbbr", table, func(v ir.ResolvedVariant) string { return v.AbbrString })

	if plan.Contains(ir.OpDisplay) {
		e.printf("// String implements fmt.Stringer using the display string.\n")
		e.printf("func (%s %s) String() string {\n\treturn %s.AsStr()\n}\n\n", recv, name, recv)
	}

	if plan.Contains(ir.OpIterVariants) {
		e.emitIterators(name, table)
	}

	if plan.Contains(ir.OpVariantsListStr) {
		e.printf("// %sVariantsListStr lists the double-quoted display strings of the\n", name)
		e.printf("// non-skipped %s variants, joined with \", \".\n", name)
		e.printf("const %sVariantsListStr = %s\n\n", name, strconv.Quote(table.ListString()))
		e.printf("// %sVariantsListStrAbbr lists the double-quoted abbreviated strings of\n", name)
		e.printf("// the non-skipped %s variants, joined with \", \".\n", name)
		e.printf("const %sVariantsListStrAbbr = %s\n\n", name, strconv.Quote(table.AbbrListString()))
	}

	if plan.Contains(ir.OpFromStr) || plan.Contains(ir.OpDeserialize) {
		e.emitMatch(name, table)
	}
	if plan.Contains(ir.OpFromStr) {
		e.printf("// Parse%s parses s as a %s. Display strings are matched first, in\n", name, name)
		e.printf("// declaration order, then abbreviated strings. Matching is exact.\n")
		e.printf("func Parse%s(s string) (%s, error) {\n", name, name)
		e.printf("\tif v, ok := match%s(s); ok {\n\t\treturn v, nil\n\t}\n", name)
		e.printf("\tvar zero %s\n", name)
		e.printf("\treturn zero, &%s{Type: %q, Input: s}\n}\n\n", parseErrorType, name)
	}

	if plan.Contains(ir.OpSerialize) {
		e.printf("// MarshalText implements encoding.TextMarshaler using the display\n// string.\n")
		e.printf("func (%s %s) MarshalText() ([]byte, error) {\n\treturn []byte(%s.AsStr()), nil\n}\n\n", recv, name, recv)
	}

	if plan.Contains(ir.OpDeserialize) {
		e.printf("// UnmarshalText implements encoding.TextUnmarshaler using the same\n")
		e.printf("// two-phase matching as parsing.\n")
		e.printf("func (%s *%s) UnmarshalText(text []byte) error {\n", recv, name)
		e.printf("\tv, ok := match%s(string(text))\n", name)
		e.printf("\tif !ok {\n\t\treturn &%s{Type: %q, Input: string(text)}\n\t}\n", parseErrorType, name)
		e.printf("\t*%s = v\n\treturn nil\n}\n\n", recv)
	}

	if plan.Contains(ir.OpClone) {
		e.printf("// Clone returns a copy of the value. %s variants carry no data, so\n", name)
		e.printf("// the copy is a plain bit copy.\n")
		e.printf("func (%s %s) Clone() %s {\n\treturn %s\n}\n\n", recv, name, name, recv)
	}
	return nil
}

// emitStringSwitch renders a total switch mapping every variant,
// skipped ones included, to a constant string. Out-of-set values fall
// through to a synthesized representation so the function stays total
// over the carrier type.
func (e *emitter) emitStringSwitch(def *ir.TypeDefinition, recv, method string, table *ir.ResolutionTable, get func(ir.ResolvedVariant) string) {
	name := def.Name
	e.printf("func (%s %s) %s() string {\n", recv, name, method)
	e.printf("\tswitch %s {\n", recv)
	for _, v := range table.Variants {
		e.printf("\tcase %s:\n\t\treturn %s\n", v.Name, strconv.Quote(get(v)))
	}
	e.printf("\t}\n")
	if def.Underlying == "string" {
		e.printf("\treturn string(%s)\n", recv)
	} else {
		e.need("strconv")
		e.printf("\treturn %q + strconv.FormatInt(int64(%s), 10) + \")\"\n", name+"(", recv)
	}
	e.printf("}\n\n")
}

// emitIterators renders the backing array and the three iteration
// functions. Each call returns a fresh, restartable sequence.
func (e *emitter) emitIterators(name string, table *ir.ResolutionTable) {
	e.need("iter")

	iterable := table.Iterable()
	e.printf("// _%sVariants holds the non-skipped %s variants in declaration\n// order.\n", name, name)
	e.printf("var _%sVariants = [...]%s{", name, name)
	for i, v := range iterable {
		if i > 0 {
			e.printf(", ")
		}
		e.printf("%s", v.Name)
	}
	e.printf("}\n\n")

	e.printf("// %sVariants iterates over the non-skipped %s variants in\n// declaration order.\n", name, name)
	e.printf("func %sVariants() iter.Seq[%s] {\n", name, name)
	e.printf("\treturn func(yield func(%s) bool) {\n", name)
	e.printf("\t\tfor _, v := range _%sVariants {\n", name)
	e.printf("\t\t\tif !yield(v) {\n\t\t\t\treturn\n\t\t\t}\n\t\t}\n\t}\n}\n\n")

	e.printf("// %sVariantsAsStr iterates over the display strings of the\n// non-skipped %s variants.\n", name, name)
	e.emitMappedIterator(name+"VariantsAsStr", name, "AsStr")

	e.printf("// %sVariantsAsStrAbbr iterates over the abbreviated strings of the\n// non-skipped %s variants.\n", name, name)
	e.emitMappedIterator(name+"VariantsAsStrAbbr", name, "AsStrAbbr")
}

func (e *emitter) emitMappedIterator(fn, typeName, method string) {
	e.printf("func %s() iter.Seq[string] {\n", fn)
	e.printf("\treturn func(yield func(string) bool) {\n")
	e.printf("\t\tfor _, v := range _%sVariants {\n", typeName)
	e.printf("\t\t\tif !yield(v.%s()) {\n\t\t\t\treturn\n\t\t\t}\n\t\t}\n\t}\n}\n\n", method)
}

// emitMatch renders the shared two-phase matcher used by parsing and
// deserialization: all display strings in declaration order, then all
// abbreviated strings, skipped variants included in both phases.
func (e *emitter) emitMatch(name string, table *ir.ResolutionTable) {
	e.printf("func match%s(s string) (%s, bool) {\n", name, name)
	e.printf("\tswitch s {\n")
	for _, v := range table.Variants {
		e.printf("\tcase %s:\n\t\treturn %s, true\n", strconv.Quote(v.DisplayString), v.Name)
	}
	e.printf("\t}\n")
	e.printf("\tswitch s {\n")
	for _, v := range table.Variants {
		e.printf("\tcase %s:\n\t\treturn %s, true\n", strconv.Quote(v.AbbrString), v.Name)
	}
	e.printf("\t}\n")
	e.printf("\tvar zero %s\n\treturn zero, false\n}\n\n", name)
}

// emitParseError declares the error type returned by parse and
// deserialize operations.
func (e *emitter) emitParseError() {
	e.printf("// %s is returned when an input string matches no variant\n", parseErrorType)
	e.printf("// of the named type.\n")
	e.printf("type %s struct {\n\tType  string\n\tInput string\n}\n\n", parseErrorType)
	e.printf("func (e *%s) Error() string {\n", parseErrorType)
	e.printf("\treturn \"cannot parse \" + strconv.Quote(e.Input) + \" as \" + e.Type\n}\n\n")
}

// receiver picks a short receiver name from the type name.
func receiver(name string) string {
	for _, r := range name {
		return string(unicode.ToLower(r))
	}
	return "v"
}
