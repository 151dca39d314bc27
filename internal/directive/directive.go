// Package directive parses variantgen directives from Go doc comments.
//
// Directives are line comments in the form:
//
//	//variants:rename(uppercase) rename_abbr(lowercase) display from_str
//	//variants:skip
//	//variants:rename("plain-text") rename_abbr = "txt"
//
// A type-level directive line appears in the doc comment of a type
// declaration and marks the type as a generation target. Variant-level
// directive lines appear in the doc comments of the type's constants.
//
// Each directive is a bare name, a name with a single parenthesized
// argument, or the `name = "literal"` shorthand, which is equivalent to
// `name("literal")`. Arguments are either bare words (strategy names)
// or double-quoted Go string literals.
package directive

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Prefix marks a comment line as a directive.
const Prefix = "//variants:"

// Attr is one parsed directive, e.g. `skip` or `rename("x")`.
type Attr struct {
	// Name is the directive name.
	Name string

	// Arg is the directive argument, nil for bare directives.
	Arg *Arg
}

// Arg is a directive argument.
type Arg struct {
	// Quoted is true for string-literal arguments, false for bare
	// strategy words.
	Quoted bool

	// Text is the unquoted argument text.
	Text string
}

// FromComment extracts the directive payload from a comment line.
// It returns the text after the prefix and true if the line is a
// directive.
func FromComment(line string) (string, bool) {
	if !strings.HasPrefix(line, Prefix) {
		return "", false
	}
	return strings.TrimPrefix(line, Prefix), true
}

// Parse parses a directive payload (the text after the prefix) into a
// list of attributes.
func Parse(text string) ([]Attr, error) {
	p := &parser{input: text}
	var attrs []Attr
	for {
		p.skipSpace()
		if p.done() {
			return attrs, nil
		}
		attr, err := p.attr()
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, attr)
	}
}

type parser struct {
	input string
	pos   int
}

func (p *parser) done() bool { return p.pos >= len(p.input) }

func (p *parser) skipSpace() {
	for !p.done() && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("directive syntax error at column %d: %s", p.pos+1, fmt.Sprintf(format, args...))
}

// attr parses `name`, `name(arg)` or `name = "literal"`.
func (p *parser) attr() (Attr, error) {
	name := p.ident()
	if name == "" {
		return Attr{}, p.errorf("expected directive name, got %q", p.rest())
	}

	mark := p.pos
	p.skipSpace()
	switch {
	case !p.done() && p.input[p.pos] == '(':
		p.pos++
		arg, err := p.arg()
		if err != nil {
			return Attr{}, err
		}
		p.skipSpace()
		if p.done() || p.input[p.pos] != ')' {
			return Attr{}, p.errorf("missing ) after %s argument", name)
		}
		p.pos++
		return Attr{Name: name, Arg: &arg}, nil

	case !p.done() && p.input[p.pos] == '=':
		p.pos++
		p.skipSpace()
		if p.done() || p.input[p.pos] != '"' {
			return Attr{}, p.errorf("%s = requires a quoted string", name)
		}
		text, err := p.quoted()
		if err != nil {
			return Attr{}, err
		}
		return Attr{Name: name, Arg: &Arg{Quoted: true, Text: text}}, nil

	default:
		// Bare directive. Rewind so trailing space separates attrs.
		p.pos = mark
		return Attr{Name: name}, nil
	}
}

// arg parses the inside of a parenthesized argument: a bare strategy
// word or a quoted string.
func (p *parser) arg() (Arg, error) {
	p.skipSpace()
	if p.done() {
		return Arg{}, p.errorf("missing argument")
	}
	if p.input[p.pos] == '"' {
		text, err := p.quoted()
		if err != nil {
			return Arg{}, err
		}
		return Arg{Quoted: true, Text: text}, nil
	}
	word := p.ident()
	if word == "" {
		return Arg{}, p.errorf("expected strategy word or quoted string, got %q", p.rest())
	}
	return Arg{Text: word}, nil
}

// quoted parses a double-quoted Go string literal starting at p.pos.
func (p *parser) quoted() (string, error) {
	start := p.pos
	p.pos++ // opening quote
	for !p.done() {
		switch p.input[p.pos] {
		case '\\':
			p.pos += 2
		case '"':
			p.pos++
			text, err := strconv.Unquote(p.input[start:p.pos])
			if err != nil {
				return "", p.errorf("malformed string literal %s", p.input[start:p.pos])
			}
			return text, nil
		default:
			p.pos++
		}
	}
	return "", p.errorf("unterminated string literal")
}

func (p *parser) ident() string {
	start := p.pos
	for !p.done() {
		c := rune(p.input[p.pos])
		if !unicode.IsLetter(c) && !unicode.IsDigit(c) && c != '_' {
			break
		}
		p.pos++
	}
	return p.input[start:p.pos]
}

func (p *parser) rest() string {
	const max = 20
	r := p.input[p.pos:]
	if len(r) > max {
		return r[:max] + "..."
	}
	return r
}
