// Package variantgen generates string conversion, abbreviation,
// iteration, listing, parsing and serialization helpers for Go
// enumeration types annotated with //variants: directives.
//
// The pipeline is a single synchronous pass per annotated type:
// the provider parses source into a definition model, the model is
// validated, per-variant display and abbreviated strings are resolved
// through the directive fallback chain, a generation plan is
// synthesized from the capability flags, and the plan is emitted as a
// Go source file per package. Independent packages share no state and
// may be generated in any order.
package variantgen

import (
	"context"
	"fmt"
	"path"

	"github.com/variantgen/variantgen/golang"
	"github.com/variantgen/variantgen/ir"
	"github.com/variantgen/variantgen/provider"
	"github.com/variantgen/variantgen/sink"
)

// DefaultFileName is the name of the generated file in each package.
const DefaultFileName = "variants.gen.go"

// Config holds the configuration for a generation run.
type Config struct {
	// Packages are the package patterns to analyze, following go
	// command semantics (e.g. "./...").
	Packages []string

	// Dir is the working directory for package loading.
	Dir string

	// OutDir, when set, collects all generated files under one
	// directory, nested by import path. When empty, each package's
	// file is written next to its source.
	OutDir string

	// FileName is the generated file's name (default "variants.gen.go").
	FileName string

	// Serde enables the serialize/deserialize capabilities for types
	// that request them.
	Serde bool

	// Iterators controls the iteration family. Nil means on.
	Iterators *bool

	// Lists controls the listing family. Nil means on.
	Lists *bool

	// Header is extra comment text placed at the top of every
	// generated file, one line per entry.
	Header []string

	// Sink overrides the output destination. When set, OutDir is
	// ignored and files are written to the sink under
	// "<import path>/<FileName>".
	Sink sink.OutputSink
}

// GeneratedFile records one emitted file.
type GeneratedFile struct {
	// Path is the file's path relative to its sink root.
	Path string

	// Package is the import path the file was generated for.
	Package string

	// Types lists the type names covered by the file.
	Types []string
}

// Result is the outcome of a generation run.
type Result struct {
	// Files are the emitted files.
	Files []GeneratedFile

	// Warnings are the non-fatal issues collected across all types.
	Warnings []ir.Warning
}

// Generate analyzes the configured packages and generates helpers for
// every annotated type found. Any validation, resolution or synthesis
// error aborts the whole run with nothing written for the failing
// package.
func Generate(cfg *Config) (*Result, error) {
	cfg = applyConfigDefaults(cfg)
	if len(cfg.Packages) == 0 {
		return nil, fmt.Errorf("Packages is required")
	}

	ctx := context.Background()
	p := &provider.SourceProvider{}
	defs, err := p.Definitions(ctx, provider.Options{
		Packages: cfg.Packages,
		Dir:      cfg.Dir,
	})
	if err != nil {
		return nil, fmt.Errorf("extract definitions: %w", err)
	}
	if len(defs) == 0 {
		return nil, fmt.Errorf("no types annotated with %s found in %v", "//variants:", cfg.Packages)
	}
	return generate(ctx, defs, cfg)
}

// GenerateDefinitions runs the pipeline over hand-built definitions,
// bypassing source analysis. Definitions without package info are
// emitted as package main under the file name directly.
func GenerateDefinitions(defs []*ir.TypeDefinition, cfg *Config) (*Result, error) {
	cfg = applyConfigDefaults(cfg)
	if len(defs) == 0 {
		return nil, fmt.Errorf("no definitions given")
	}
	return generate(context.Background(), defs, cfg)
}

func generate(ctx context.Context, defs []*ir.TypeDefinition, cfg *Config) (*Result, error) {
	opts := ir.SynthesizeOptions{
		Iterators: cfg.Iterators == nil || *cfg.Iterators,
		Lists:     cfg.Lists == nil || *cfg.Lists,
		Serde:     cfg.Serde,
	}

	// Group definitions by package, preserving discovery order.
	var order []string
	groups := make(map[string][]*ir.TypeDefinition)
	for _, def := range defs {
		key := def.Package.Path
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], def)
	}

	result := &Result{}
	for _, key := range order {
		group := groups[key]

		var units []golang.Unit
		var typeNames []string
		for _, def := range group {
			if err := ir.Validate(def); err != nil {
				return nil, err
			}
			table, warns, err := ir.Resolve(def)
			if err != nil {
				return nil, err
			}
			result.Warnings = append(result.Warnings, warns...)

			plan, warns, err := ir.Synthesize(def, table, opts)
			if err != nil {
				return nil, err
			}
			result.Warnings = append(result.Warnings, warns...)

			units = append(units, golang.Unit{Def: def, Plan: plan})
			typeNames = append(typeNames, def.Name)
		}

		info := group[0].Package
		pkgName := info.Name
		if pkgName == "" {
			pkgName = "main"
		}
		content, err := golang.EmitFile(pkgName, units, golang.FileConfig{Header: cfg.Header})
		if err != nil {
			return nil, err
		}

		dest, relPath := destination(cfg, info)
		if err := dest.WriteFile(ctx, relPath, content); err != nil {
			return nil, fmt.Errorf("write %s: %w", relPath, err)
		}
		result.Files = append(result.Files, GeneratedFile{
			Path:    relPath,
			Package: info.Path,
			Types:   typeNames,
		})
	}
	return result, nil
}

// destination picks the sink and relative path for one package's file.
func destination(cfg *Config, info ir.PackageInfo) (sink.OutputSink, string) {
	nested := cfg.FileName
	if info.Path != "" {
		nested = path.Join(info.Path, cfg.FileName)
	}
	switch {
	case cfg.Sink != nil:
		return cfg.Sink, nested
	case cfg.OutDir != "":
		return sink.NewFilesystemSink(cfg.OutDir), nested
	default:
		dir := info.Dir
		if dir == "" {
			dir = "."
		}
		return sink.NewFilesystemSink(dir), cfg.FileName
	}
}

// applyConfigDefaults returns a copy of cfg with defaults filled in.
// A nil cfg is treated as the zero Config.
func applyConfigDefaults(cfg *Config) *Config {
	var result Config
	if cfg != nil {
		result = *cfg
	}
	if result.FileName == "" {
		result.FileName = DefaultFileName
	}
	return &result
}
