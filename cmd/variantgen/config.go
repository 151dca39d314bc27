package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the project config looked up when --config is
// not given.
const DefaultConfigFile = ".variantgen.yaml"

// FileConfig is the project configuration file schema.
type FileConfig struct {
	// Packages are the package patterns to analyze.
	Packages []string `yaml:"packages" validate:"omitempty,dive,required"`

	// Out collects generated files under one directory; empty writes
	// next to each package's source.
	Out string `yaml:"out"`

	// FileName is the generated file's name.
	FileName string `yaml:"filename" validate:"omitempty,endswith=.go"`

	// Serde enables the serialize/deserialize capabilities.
	Serde bool `yaml:"serde"`

	// Iterators toggles the iteration family (default on).
	Iterators *bool `yaml:"iterators"`

	// Lists toggles the listing family (default on).
	Lists *bool `yaml:"lists"`

	// Header lines are placed at the top of every generated file.
	Header []string `yaml:"header"`
}

// loadFileConfig reads and validates a project config file. When path
// is empty, the default file is used if it exists; a missing default
// file yields an empty config.
func loadFileConfig(path string) (*FileConfig, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return &FileConfig{}, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &FileConfig{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		var valErrs validator.ValidationErrors
		if errors.As(err, &valErrs) {
			msgs := make([]string, 0, len(valErrs))
			for _, ve := range valErrs {
				msgs = append(msgs, formatValidationError(ve))
			}
			return nil, fmt.Errorf("invalid config %s: %s", path, strings.Join(msgs, "; "))
		}
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// formatValidationError converts a validator.FieldError to a
// human-readable message.
func formatValidationError(ve validator.FieldError) string {
	field := strings.ToLower(ve.Field())
	switch ve.Tag() {
	case "required":
		return field + " must not be empty"
	case "endswith":
		return field + " must end with " + ve.Param()
	default:
		if ve.Param() != "" {
			return fmt.Sprintf("%s failed %s=%s validation", field, ve.Tag(), ve.Param())
		}
		return fmt.Sprintf("%s failed %s validation", field, ve.Tag())
	}
}
