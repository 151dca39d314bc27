package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/variantgen/variantgen"
)

type GenCmd struct {
	Package  []string `help:"Package patterns to analyze (default: current directory)." short:"p"`
	Out      string   `help:"Collect generated files under one directory instead of writing next to source." short:"o"`
	Serde    bool     `help:"Enable serialize/deserialize generation."`
	FileName string   `help:"Generated file name." name:"filename"`
	NoIter   bool     `help:"Skip the iteration family." name:"no-iterators"`
	NoLists  bool     `help:"Skip the listing family." name:"no-lists"`
	Config   string   `help:"Project config file (default: .variantgen.yaml if present)." short:"c" type:"path"`
}

func (c *GenCmd) Run() error {
	cfg, err := c.buildConfig()
	if err != nil {
		return err
	}

	result, err := variantgen.Generate(cfg)
	if err != nil {
		return err
	}

	for _, w := range result.Warnings {
		fmt.Printf("warning: %s: %s: %s\n", w.TypeName, w.Code, w.Message)
	}
	for _, f := range result.Files {
		fmt.Printf("✓ %s (%s)\n", f.Path, strings.Join(f.Types, ", "))
	}
	return nil
}

// buildConfig merges the project config file with command-line flags;
// flags win where both are given.
func (c *GenCmd) buildConfig() (*variantgen.Config, error) {
	file, err := loadFileConfig(c.Config)
	if err != nil {
		return nil, err
	}

	cfg := &variantgen.Config{
		Packages:  file.Packages,
		OutDir:    file.Out,
		FileName:  file.FileName,
		Serde:     file.Serde,
		Iterators: file.Iterators,
		Lists:     file.Lists,
		Header:    file.Header,
	}
	if len(c.Package) > 0 {
		cfg.Packages = c.Package
	}
	if len(cfg.Packages) == 0 {
		cfg.Packages = []string{"."}
	}
	if c.Out != "" {
		cfg.OutDir = c.Out
	}
	if c.FileName != "" {
		cfg.FileName = c.FileName
	}
	if c.Serde {
		cfg.Serde = true
	}
	if c.NoIter {
		off := false
		cfg.Iterators = &off
	}
	if c.NoLists {
		off := false
		cfg.Lists = &off
	}

	slog.Debug("generation config",
		slog.Any("packages", cfg.Packages),
		slog.String("out", cfg.OutDir),
		slog.Bool("serde", cfg.Serde))
	return cfg, nil
}
