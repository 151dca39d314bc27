package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/variantgen/variantgen/ir"
	"github.com/variantgen/variantgen/provider"
)

type CheckCmd struct {
	Package []string `help:"Package patterns to analyze (default: current directory)." short:"p"`
	Serde   bool     `help:"Treat serialize/deserialize directives as enabled."`
}

// Run validates every annotated type, resolves its table and prints
// the result. Nothing is written.
func (c *CheckCmd) Run() error {
	patterns := c.Package
	if len(patterns) == 0 {
		patterns = []string{"."}
	}

	p := &provider.SourceProvider{}
	defs, err := p.Definitions(context.Background(), provider.Options{Packages: patterns})
	if err != nil {
		return err
	}
	if len(defs) == 0 {
		return fmt.Errorf("no annotated types found in %v", patterns)
	}

	opts := ir.SynthesizeOptions{Iterators: true, Lists: true, Serde: c.Serde}
	for _, def := range defs {
		if err := ir.Validate(def); err != nil {
			return err
		}
		table, warns, err := ir.Resolve(def)
		if err != nil {
			return err
		}
		plan, planWarns, err := ir.Synthesize(def, table, opts)
		if err != nil {
			return err
		}
		warns = append(warns, planWarns...)

		fmt.Printf("✓ %s (%s): %d variants\n", def.Name, def.Package.Path, len(def.Variants))
		tw := tabwriter.NewWriter(os.Stdout, 4, 4, 2, ' ', 0)
		for _, v := range table.Variants {
			marker := ""
			if !v.IncludedInIteration {
				marker = "(skip)"
			}
			fmt.Fprintf(tw, "    %s\t%q\t%q\t%s\n", v.Name, v.DisplayString, v.AbbrString, marker)
		}
		tw.Flush()

		ops := make([]string, len(plan.Ops))
		for i, op := range plan.Ops {
			ops[i] = op.String()
		}
		fmt.Printf("  ops: %s\n", strings.Join(ops, ", "))
		for _, w := range warns {
			fmt.Printf("  warning: %s: %s\n", w.Code, w.Message)
		}
	}
	return nil
}
