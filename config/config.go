package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/effect"
	"github.com/gogpu/effect/accel"
	"github.com/gogpu/effect/engine"
)

// Format is the encoding of a pipeline document.
type Format uint8

// Format constants.
const (
	FormatYAML Format = iota
	FormatTOML
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// Errors.
var (
	// ErrUnknownFormat is returned for a file extension that is neither
	// YAML nor TOML.
	ErrUnknownFormat = errors.New("config: unknown document format")

	// ErrNoKind is returned for an effect entry that names no kind.
	ErrNoKind = errors.New("config: effect names no kind")

	// ErrMultipleKinds is returned for an effect entry naming more than one
	// kind.
	ErrMultipleKinds = errors.New("config: effect names more than one kind")

	// ErrInvalidValue is returned for a field value outside its domain.
	ErrInvalidValue = errors.New("config: invalid value")
)

// EffectError reports a validation failure of one effects entry.
type EffectError struct {
	Index int
	Err   error
}

func (e *EffectError) Error() string {
	return fmt.Sprintf("config: effects[%d]: %v", e.Index, e.Err)
}

func (e *EffectError) Unwrap() error {
	return e.Err
}

// Document is a decoded pipeline document.
type Document struct {
	Engine  EngineSettings `yaml:"engine" toml:"engine"`
	Effects []EffectSpec   `yaml:"effects" toml:"effects"`
}

// EngineSettings configures the engine that runs a document's pipeline.
type EngineSettings struct {
	// Accelerate enables the downscaled blur path.
	Accelerate bool    `yaml:"accelerate" toml:"accelerate"`
	// Downscale is the accelerated downsampling factor. Zero means
	// accel.DefaultDownscale.
	Downscale  int     `yaml:"downscale" toml:"downscale"`
	// MinRadius is the smallest blur radius worth accelerating. Zero means
	// accel.DefaultMinRadius.
	MinRadius  float64 `yaml:"min_radius" toml:"min_radius"`
	// DirectDraw defaults to true when absent.
	DirectDraw *bool   `yaml:"direct_draw" toml:"direct_draw"`
}

// FormatFor returns the document format implied by a file name.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Load reads and validates the document at path.
func Load(path string) (*Document, error) {
	f, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	doc, err := Parse(data, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes and validates a document.
func Parse(data []byte, f Format) (*Document, error) {
	var doc Document
	switch f {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("config: decode yaml: %w", err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("config: decode toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate checks the engine settings and that every effect names exactly
// one kind with valid values.
func (d *Document) Validate() error {
	if d.Engine.Downscale < 0 {
		return fmt.Errorf("%w: downscale %d", ErrInvalidValue, d.Engine.Downscale)
	}
	if d.Engine.MinRadius < 0 {
		return fmt.Errorf("%w: min_radius %v", ErrInvalidValue, d.Engine.MinRadius)
	}
	for i := range d.Effects {
		if _, err := d.Effects[i].Params(); err != nil {
			return &EffectError{Index: i, Err: err}
		}
	}
	return nil
}

// Pipeline returns a fresh pipeline holding one node per effect entry.
func (d *Document) Pipeline() (effect.Pipeline, error) {
	p := make(effect.Pipeline, 0, len(d.Effects))
	for i := range d.Effects {
		params, err := d.Effects[i].Params()
		if err != nil {
			return nil, &EffectError{Index: i, Err: err}
		}
		p = append(p, effect.NewFromErased(effect.Box(params)))
	}
	return p, nil
}

// BuilderOptions returns the accel options implied by the engine settings.
func (d *Document) BuilderOptions() []accel.Option {
	var opts []accel.Option
	if d.Engine.Downscale > 0 {
		opts = append(opts, accel.WithDownscale(d.Engine.Downscale))
	}
	if d.Engine.MinRadius > 0 {
		opts = append(opts, accel.WithMinRadius(d.Engine.MinRadius))
	}
	return opts
}

// EngineOptions returns the engine options implied by the engine settings.
// extra builder options, such as a device provider, are passed to the
// accelerated builder when acceleration is enabled.
func (d *Document) EngineOptions(extra ...accel.Option) []engine.Option {
	var opts []engine.Option
	if d.Engine.DirectDraw != nil {
		opts = append(opts, engine.WithDirectDraw(*d.Engine.DirectDraw))
	}
	if d.Engine.Accelerate {
		b := accel.NewBuilder(append(d.BuilderOptions(), extra...)...)
		opts = append(opts, engine.WithBuilder(b))
	}
	return opts
}
