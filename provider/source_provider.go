// Package provider extracts annotated enumeration declarations from Go
// source code and converts them to the definition model. It is the
// parsing front end of the pipeline; everything downstream of it is
// pure.
package provider

import (
	"context"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"path/filepath"

	"golang.org/x/tools/go/packages"

	"github.com/variantgen/variantgen/golang"
	"github.com/variantgen/variantgen/internal/directive"
	"github.com/variantgen/variantgen/ir"
)

// SourceProvider builds TypeDefinitions by analyzing Go source with
// go/packages.
type SourceProvider struct{}

// Options configures source extraction.
type Options struct {
	// Packages are the package patterns to analyze, following go
	// command semantics ("./...", import paths, directories).
	Packages []string

	// Dir is the working directory for package loading. Empty means
	// the current directory.
	Dir string
}

// Definitions loads the requested packages and returns one
// TypeDefinition per annotated type, in source order. A type is a
// generation target iff its doc comment contains a //variants:
// directive line; its variants are the package-level constants of the
// type, in declaration order across const blocks.
func (p *SourceProvider) Definitions(ctx context.Context, opts Options) ([]*ir.TypeDefinition, error) {
	if len(opts.Packages) == 0 {
		return nil, fmt.Errorf("no packages specified")
	}

	cfg := &packages.Config{
		Context: ctx,
		Dir:     opts.Dir,
		Mode: packages.NeedName |
			packages.NeedFiles |
			packages.NeedCompiledGoFiles |
			packages.NeedSyntax |
			packages.NeedTypes |
			packages.NeedTypesInfo,
	}

	pkgs, err := packages.Load(cfg, opts.Packages...)
	if err != nil {
		return nil, fmt.Errorf("load packages: %w", err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found matching %v", opts.Packages)
	}
	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			return nil, fmt.Errorf("package %s has errors: %v", pkg.PkgPath, pkg.Errors[0])
		}
	}

	var defs []*ir.TypeDefinition
	for _, pkg := range pkgs {
		pkgDefs, err := extractPackage(pkg)
		if err != nil {
			return nil, err
		}
		defs = append(defs, pkgDefs...)
	}
	return defs, nil
}

// extractPackage scans one loaded package for annotated types.
func extractPackage(pkg *packages.Package) ([]*ir.TypeDefinition, error) {
	info := ir.PackageInfo{
		Path: pkg.PkgPath,
		Name: pkg.Name,
	}
	if len(pkg.GoFiles) > 0 {
		info.Dir = filepath.Dir(pkg.GoFiles[0])
	}

	generated := priorOutputs(pkg)

	var defs []*ir.TypeDefinition
	for _, file := range pkg.Syntax {
		if generated[fileName(pkg, file)] {
			continue
		}
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}
			for _, spec := range gd.Specs {
				ts := spec.(*ast.TypeSpec)
				doc := specDoc(gd, ts.Doc)
				attrs, found, err := directiveAttrs(doc)
				if err != nil {
					return nil, &ir.AttributeValueError{
						Type:   ts.Name.Name,
						Reason: err.Error(),
					}
				}
				if !found {
					continue
				}
				def, err := buildDefinition(pkg, info, ts, attrs, generated)
				if err != nil {
					return nil, err
				}
				defs = append(defs, def)
			}
		}
	}
	return defs, nil
}

// buildDefinition assembles the TypeDefinition for one annotated type.
func buildDefinition(pkg *packages.Package, info ir.PackageInfo, ts *ast.TypeSpec, attrs []directive.Attr, generated map[string]bool) (*ir.TypeDefinition, error) {
	name := ts.Name.Name
	def := &ir.TypeDefinition{
		Name:    name,
		Package: info,
		Source:  position(pkg.Fset, ts.Pos()),
	}

	typeAttrs, err := parseTypeAttrs(name, attrs)
	if err != nil {
		return nil, err
	}
	def.Attrs = typeAttrs

	obj := pkg.TypesInfo.Defs[ts.Name]
	named, _ := obj.Type().(*types.Named)
	if named == nil {
		def.Kind = ir.KindStruct
		return def, nil
	}

	switch u := named.Underlying().(type) {
	case *types.Basic:
		def.Kind = ir.KindEnum
		def.Underlying = u.Name()
	case *types.Interface:
		def.Kind = ir.KindUnion
		return def, nil
	default:
		def.Kind = ir.KindStruct
		return def, nil
	}

	// Methods from a prior run's output are not pre-existing
	// declarations; counting them would make every regeneration
	// conflict with itself.
	for i := 0; i < named.NumMethods(); i++ {
		m := named.Method(i)
		if generated[pkg.Fset.Position(m.Pos()).Filename] {
			continue
		}
		def.DeclaredMethods = append(def.DeclaredMethods, m.Name())
	}

	variants, err := collectVariants(pkg, name, named, generated)
	if err != nil {
		return nil, err
	}
	def.Variants = variants
	return def, nil
}

// collectVariants finds the package-level constants of the enum type,
// in declaration order, along with their variant-level directives.
func collectVariants(pkg *packages.Package, typeName string, named *types.Named, generated map[string]bool) ([]ir.VariantDefinition, error) {
	var variants []ir.VariantDefinition
	for _, file := range pkg.Syntax {
		if generated[fileName(pkg, file)] {
			continue
		}
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.CONST {
				continue
			}
			for _, spec := range gd.Specs {
				vs, ok := spec.(*ast.ValueSpec)
				if !ok {
					continue
				}
				for _, ident := range vs.Names {
					if ident.Name == "_" {
						continue
					}
					obj := pkg.TypesInfo.Defs[ident]
					if obj == nil || !types.Identical(obj.Type(), named) {
						continue
					}
					v := ir.VariantDefinition{
						Name:   ident.Name,
						Shape:  ir.ShapeUnit,
						Source: position(pkg.Fset, ident.Pos()),
					}
					attrs, found, err := directiveAttrs(specDoc(gd, vs.Doc))
					if err != nil {
						return nil, &ir.AttributeValueError{
							Type:    typeName,
							Variant: ident.Name,
							Reason:  err.Error(),
						}
					}
					if found {
						if err := applyVariantAttrs(&v, typeName, attrs); err != nil {
							return nil, err
						}
					}
					variants = append(variants, v)
				}
			}
		}
	}
	return variants, nil
}

// directiveAttrs scans a doc comment for //variants: lines and parses
// them. Multiple directive lines accumulate.
func directiveAttrs(doc *ast.CommentGroup) ([]directive.Attr, bool, error) {
	if doc == nil {
		return nil, false, nil
	}
	var attrs []directive.Attr
	found := false
	for _, c := range doc.List {
		payload, ok := directive.FromComment(c.Text)
		if !ok {
			continue
		}
		found = true
		parsed, err := directive.Parse(payload)
		if err != nil {
			return nil, true, err
		}
		attrs = append(attrs, parsed...)
	}
	return attrs, found, nil
}

// specDoc prefers the spec's own doc comment, falling back to the
// declaration's doc when the spec is the declaration's only member.
func specDoc(decl *ast.GenDecl, specDoc *ast.CommentGroup) *ast.CommentGroup {
	if specDoc != nil {
		return specDoc
	}
	if len(decl.Specs) == 1 {
		return decl.Doc
	}
	return nil
}

// priorOutputs identifies the syntax files written by an earlier run of
// this generator, keyed by filename.
func priorOutputs(pkg *packages.Package) map[string]bool {
	out := make(map[string]bool)
	for _, file := range pkg.Syntax {
		if hasGeneratedMarker(file) {
			out[fileName(pkg, file)] = true
		}
	}
	return out
}

// hasGeneratedMarker reports whether the file carries this generator's
// DO NOT EDIT marker in the comments above its package clause.
func hasGeneratedMarker(file *ast.File) bool {
	for _, group := range file.Comments {
		if group.Pos() > file.Package {
			return false
		}
		for _, c := range group.List {
			if c.Text == golang.GeneratedMarker {
				return true
			}
		}
	}
	return false
}

func fileName(pkg *packages.Package, file *ast.File) string {
	return pkg.Fset.Position(file.Pos()).Filename
}

func position(fset *token.FileSet, pos token.Pos) ir.Source {
	p := fset.Position(pos)
	return ir.Source{File: p.Filename, Line: p.Line, Column: p.Column}
}
