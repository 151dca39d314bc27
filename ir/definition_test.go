package ir

import "testing"

func TestDefinitionKind_String(t *testing.T) {
	tests := []struct {
		kind DefinitionKind
		want string
	}{
		{KindEnum, "enum"},
		{KindStruct, "struct"},
		{KindUnion, "union"},
		{DefinitionKind(9), "DefinitionKind(9)"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestVariantShape_String(t *testing.T) {
	if got := ShapeTuple.String(); got != "tuple fields" {
		t.Errorf("ShapeTuple.String() = %q", got)
	}
	if got := ShapeUnit.String(); got != "unit" {
		t.Errorf("ShapeUnit.String() = %q", got)
	}
}

func TestTypeDefinition_HasMethod(t *testing.T) {
	def := &TypeDefinition{DeclaredMethods: []string{"String", "Clone"}}
	if !def.HasMethod("Clone") {
		t.Error("HasMethod(Clone) = false, want true")
	}
	if def.HasMethod("MarshalText") {
		t.Error("HasMethod(MarshalText) = true, want false")
	}
}

func TestRenameSpec_String(t *testing.T) {
	tests := []struct {
		spec *RenameSpec
		want string
	}{
		{Literal("plain-text"), `"plain-text"`},
		{Uppercase(), "uppercase"},
		{Lowercase(), "lowercase"},
		{nil, "<none>"},
	}
	for _, tt := range tests {
		if got := tt.spec.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
