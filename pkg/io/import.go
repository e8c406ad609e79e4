package io

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/floorsmith/pkg/errors"
	"github.com/matzehuels/floorsmith/pkg/plan"
)

// Format is a program file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the encoding from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat,
		"unsupported program file %q (use .toml, .yaml, .yml or .json)", path)
}

// ReadProgram decodes a room program from r. Unknown keys are rejected so a
// misspelled field never silently falls back to zero. Enum fields are
// normalized with [plan.Program.Normalize].
func ReadProgram(r io.Reader, f Format) (plan.Program, error) {
	var p plan.Program
	switch f {
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&p)
		if err != nil {
			return p, errors.Wrap(errors.ErrCodeInvalidProgram, err, "decode toml")
		}
		if keys := md.Undecoded(); len(keys) > 0 {
			names := make([]string, len(keys))
			for i, k := range keys {
				names[i] = k.String()
			}
			sort.Strings(names)
			return p, errors.New(errors.ErrCodeInvalidProgram, "unknown keys: %s", strings.Join(names, ", "))
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&p); err != nil && err != io.EOF {
			return p, errors.Wrap(errors.ErrCodeInvalidProgram, err, "decode yaml")
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&p); err != nil {
			return p, errors.Wrap(errors.ErrCodeInvalidProgram, err, "decode json")
		}
	default:
		return p, errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q", f)
	}
	return p.Normalize()
}

// ImportProgram reads a program file, choosing the decoder by extension.
func ImportProgram(path string) (plan.Program, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return plan.Program{}, err
	}
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return plan.Program{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "program file %s", path)
		}
		return plan.Program{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	p, err := ReadProgram(file, f)
	if err != nil {
		return p, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// ReadDocument decodes a floor plan document written by [WriteDocument].
func ReadDocument(r io.Reader) (*plan.Document, error) {
	var doc plan.Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode document")
	}
	if doc.Rooms == nil {
		doc.Rooms = []plan.Room{}
	}
	doc.Normalize()
	return &doc, nil
}

// ImportDocument reads a document from a JSON file.
func ImportDocument(path string) (*plan.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "document %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadDocument(f)
}
