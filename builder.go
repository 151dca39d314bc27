package variantgen

import (
	"github.com/variantgen/variantgen/ir"
	"github.com/variantgen/variantgen/sink"
)

// Generator provides a fluent API for configuring a generation run.
// Create with FromPackages() or FromDefinitions() and finish with
// ToDir() or Run().
//
// Example:
//
//	variantgen.FromPackages("./...").
//	    Serde().
//	    ToDir("./gen")
type Generator struct {
	cfg  Config
	defs []*ir.TypeDefinition
}

// FromPackages creates a Generator that analyzes the given package
// patterns. This is the entry point for the fluent API.
func FromPackages(patterns ...string) *Generator {
	return &Generator{cfg: Config{Packages: patterns}}
}

// FromDefinitions creates a Generator over hand-built definitions,
// bypassing source analysis. Useful for programmatic generation and
// for frontends other than Go source.
func FromDefinitions(defs ...*ir.TypeDefinition) *Generator {
	return &Generator{defs: defs}
}

// Dir sets the working directory for package loading.
func (g *Generator) Dir(dir string) *Generator {
	g.cfg.Dir = dir
	return g
}

// Serde enables the serialize/deserialize capabilities for types that
// request them.
func (g *Generator) Serde() *Generator {
	g.cfg.Serde = true
	return g
}

// WithoutIterators disables the iteration family.
func (g *Generator) WithoutIterators() *Generator {
	off := false
	g.cfg.Iterators = &off
	return g
}

// WithoutLists disables the listing family.
func (g *Generator) WithoutLists() *Generator {
	off := false
	g.cfg.Lists = &off
	return g
}

// FileName sets the generated file's name.
func (g *Generator) FileName(name string) *Generator {
	g.cfg.FileName = name
	return g
}

// Header adds comment lines to the top of every generated file.
func (g *Generator) Header(lines ...string) *Generator {
	g.cfg.Header = append(g.cfg.Header, lines...)
	return g
}

// To directs output to a custom sink instead of the filesystem.
func (g *Generator) To(s sink.OutputSink) *Generator {
	g.cfg.Sink = s
	return g
}

// ToDir generates files under the given directory, nested by import
// path. This is a terminal operation.
func (g *Generator) ToDir(dir string) (*Result, error) {
	g.cfg.OutDir = dir
	return g.run()
}

// Run generates files next to their source packages (or into the
// configured sink). This is a terminal operation.
func (g *Generator) Run() (*Result, error) {
	return g.run()
}

func (g *Generator) run() (*Result, error) {
	if g.defs != nil {
		return GenerateDefinitions(g.defs, &g.cfg)
	}
	return Generate(&g.cfg)
}
