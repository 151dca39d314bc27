package directive

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromComment(t *testing.T) {
	payload, ok := FromComment("//variants:rename(uppercase) display")
	if !ok {
		t.Fatal("FromComment did not recognize a directive line")
	}
	if payload != "rename(uppercase) display" {
		t.Errorf("payload = %q", payload)
	}

	if _, ok := FromComment("// variants:rename(uppercase)"); ok {
		t.Error("a spaced comment must not be treated as a directive")
	}
	if _, ok := FromComment("// plain comment"); ok {
		t.Error("plain comments must not be treated as directives")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Attr
	}{
		{
			name:  "bare flags",
			input: "display from_str",
			want:  []Attr{{Name: "display"}, {Name: "from_str"}},
		},
		{
			name:  "strategy argument",
			input: "rename(uppercase) rename_abbr(lowercase)",
			want: []Attr{
				{Name: "rename", Arg: &Arg{Text: "uppercase"}},
				{Name: "rename_abbr", Arg: &Arg{Text: "lowercase"}},
			},
		},
		{
			name:  "literal argument",
			input: `rename("plain-text")`,
			want:  []Attr{{Name: "rename", Arg: &Arg{Quoted: true, Text: "plain-text"}}},
		},
		{
			name:  "assignment shorthand",
			input: `rename_abbr = "txt"`,
			want:  []Attr{{Name: "rename_abbr", Arg: &Arg{Quoted: true, Text: "txt"}}},
		},
		{
			name:  "mixed forms",
			input: `skip rename("plain-text") rename_abbr = "txt"`,
			want: []Attr{
				{Name: "skip"},
				{Name: "rename", Arg: &Arg{Quoted: true, Text: "plain-text"}},
				{Name: "rename_abbr", Arg: &Arg{Quoted: true, Text: "txt"}},
			},
		},
		{
			name:  "escaped quotes in literal",
			input: `rename("say \"hi\"")`,
			want:  []Attr{{Name: "rename", Arg: &Arg{Quoted: true, Text: `say "hi"`}}},
		},
		{
			name:  "empty payload",
			input: "",
			want:  nil,
		},
		{
			name:  "surrounding whitespace",
			input: "  skip  ",
			want:  []Attr{{Name: "skip"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	inputs := []string{
		"rename(",
		"rename(uppercase",
		"rename()",
		`rename("unterminated`,
		`rename_abbr = txt`,
		"= display",
		"rename(upper case)",
	}
	for _, input := range inputs {
		if _, err := Parse(input); err == nil {
			t.Errorf("Parse(%q) succeeded, want syntax error", input)
		}
	}
}
