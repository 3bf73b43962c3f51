// Package routefile reads and writes external route table files.
package routefile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	gotoml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/bnema/riblet/internal/domain/route"
)

// CurrentVersion is the route file format version written by Encode.
const CurrentVersion = 1

// ErrUnsupportedFormat is returned for file extensions other than yaml, yml, toml and json.
var ErrUnsupportedFormat = errors.New("unsupported route file format")

// Format is a route file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// Route is one route table entry.
type Route struct {
	Pattern string `yaml:"pattern" toml:"pattern" json:"pattern" jsonschema:"required,description=Absolute URI pattern; host path and query values may hold {name} or {name:regexp} variables"`
	Builder string `yaml:"builder" toml:"builder" json:"builder" jsonschema:"required,description=Name of a registered builder,example=page,example=webview"`
	Title   string `yaml:"title,omitempty" toml:"title,omitempty" json:"title,omitempty" jsonschema:"description=Display name; defaults to the pattern"`
}

// File is the on-disk route table.
type File struct {
	Version int     `yaml:"version" toml:"version" json:"version" jsonschema:"enum=1,default=1"`
	Routes  []Route `yaml:"routes" toml:"routes" json:"routes" jsonschema:"description=Routes in match order; the first match wins"`
}

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// LoadFile reads and validates the route file at path.
func LoadFile(path string) (*File, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading route file: %w", err)
	}
	defer f.Close()

	file, err := Load(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return file, nil
}

// Load decodes a route file. Unknown keys are rejected.
func Load(r io.Reader, format Format) (*File, error) {
	var file File

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parsing route file: %w", err)
		}
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&file)
		if err != nil {
			return nil, fmt.Errorf("parsing route file: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("parsing route file: unknown key %q", undecoded[0].String())
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parsing route file: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if err := file.Validate(); err != nil {
		return nil, err
	}
	return &file, nil
}

// Validate checks the version and required route fields.
func (f *File) Validate() error {
	if f.Version != 0 && f.Version != CurrentVersion {
		return fmt.Errorf("unsupported route file version %d", f.Version)
	}
	for i, r := range f.Routes {
		if strings.TrimSpace(r.Pattern) == "" {
			return fmt.Errorf("routes[%d]: pattern is required", i)
		}
		if strings.TrimSpace(r.Builder) == "" {
			return fmt.Errorf("routes[%d]: builder is required", i)
		}
	}
	return nil
}

// Specs converts the file's routes to route specs, in order.
func (f *File) Specs() []route.Spec {
	specs := make([]route.Spec, 0, len(f.Routes))
	for _, r := range f.Routes {
		specs = append(specs, route.Spec{
			Pattern: strings.TrimSpace(r.Pattern),
			Builder: strings.TrimSpace(r.Builder),
			Title:   strings.TrimSpace(r.Title),
		})
	}
	return specs
}

// FromSpecs builds a file from route specs.
func FromSpecs(specs []route.Spec) *File {
	file := &File{Version: CurrentVersion, Routes: make([]Route, 0, len(specs))}
	for _, s := range specs {
		file.Routes = append(file.Routes, Route{Pattern: s.Pattern, Builder: s.Builder, Title: s.Title})
	}
	return file
}

// Encode writes f in the given format.
func Encode(w io.Writer, f *File, format Format) error {
	var buf bytes.Buffer

	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(f); err != nil {
			return fmt.Errorf("failed to encode route file: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to encode route file: %w", err)
		}
	case FormatTOML:
		enc := gotoml.NewEncoder(&buf)
		enc.SetIndentTables(true)
		if err := enc.Encode(f); err != nil {
			return fmt.Errorf("failed to encode route file: %w", err)
		}
	case FormatJSON:
		data, err := json.MarshalIndent(f, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode route file: %w", err)
		}
		buf.Write(data)
		buf.WriteByte('\n')
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	_, err := w.Write(buf.Bytes())
	return err
}
