// Package config loads drawing parameters and scripted input from YAML.
//
// A File carries the drawing parameters (length band, stroke range,
// opacity and its scope, path division, pointer caching, self reference)
// together with the canvas, the source paths and a script of pointer
// strokes to replay. Files are overlaid on Default, so a config
// only needs to name what it changes.
package config

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"

	"github.com/milcktoast/sketchy"
	"github.com/milcktoast/sketchy/export"
	"github.com/milcktoast/sketchy/session"
)

// File is the YAML configuration document.
type File struct {
	Canvas          Canvas       `yaml:"canvas"`
	Length          LengthBand   `yaml:"length"`
	Stroke          StrokeRange  `yaml:"stroke"`
	Opacity         Opacity      `yaml:"opacity"`
	Division        Division     `yaml:"division"`
	Mouse           Mouse        `yaml:"mouse"`
	SelfReferential bool         `yaml:"self_referential"`
	IndexThreshold  int          `yaml:"index_threshold" validate:"gte=0"`
	Paths           []PathSpec   `yaml:"paths" validate:"dive"`
	Pointer         []StrokeSpec `yaml:"pointer" validate:"dive"`
	CrossReference  bool         `yaml:"cross_reference"`
}

// Canvas describes the output surface.
type Canvas struct {
	Width        int     `yaml:"width" validate:"gt=0"`
	Height       int     `yaml:"height" validate:"gt=0"`
	Scale        float64 `yaml:"scale" validate:"finite,gte=0"`
	Background   string  `yaml:"background" validate:"omitempty,hexcolor"`
	Stroke       string  `yaml:"stroke" validate:"omitempty,hexcolor"`
	ShowSources  bool    `yaml:"show_sources"`
	SourceStroke string  `yaml:"source_stroke" validate:"omitempty,hexcolor"`
}

// LengthBand is the accepted connection length range (exclusive).
type LengthBand struct {
	Min float64 `yaml:"min" validate:"finite,gte=0"`
	Max float64 `yaml:"max" validate:"finite,gtfield=Min"`
}

// StrokeRange is the stroke width range mapped from the length band.
type StrokeRange struct {
	Min float64 `yaml:"min" validate:"finite,gte=0"`
	Max float64 `yaml:"max" validate:"finite,gtefield=Min"`
}

// Opacity is the generated line opacity and where it is applied.
type Opacity struct {
	Value float64 `yaml:"value" validate:"finite,gte=0,lte=1"`
	SetBy string  `yaml:"set_by" validate:"oneof=Path Group"`
}

// Division controls path sampling.
type Division struct {
	Amount float64 `yaml:"amount" validate:"finite,gt=0"`
	By     string  `yaml:"by" validate:"oneof=Length Number"`
}

// Mouse controls pointer input caching.
type Mouse struct {
	CachePoints bool `yaml:"cache_points"`
	CacheLimit  int  `yaml:"cache_limit" validate:"gte=0"`
}

// PathSpec describes one source path.
type PathSpec struct {
	Kind     string       `yaml:"kind" validate:"oneof=polyline rect circle ellipse"`
	Points   [][2]float64 `yaml:"points" validate:"omitempty,min=2,dive,dive,finite"`
	Closed   bool         `yaml:"closed"`
	Center   [2]float64   `yaml:"center" validate:"dive,finite"`
	Radius   float64      `yaml:"radius" validate:"finite,gte=0"`
	Radii    [2]float64   `yaml:"radii" validate:"dive,finite"`
	Origin   [2]float64   `yaml:"origin" validate:"dive,finite"`
	Size     [2]float64   `yaml:"size" validate:"dive,finite"`
	Selected *bool        `yaml:"selected"`
}

// StrokeSpec is a scripted pointer stroke: each point is one pointer event.
type StrokeSpec struct {
	// Clear empties the point cache before the stroke starts.
	Clear  bool         `yaml:"clear"`
	Coords [][2]float64 `yaml:"points" validate:"dive,dive,finite"`
}

// Default returns the stock configuration.
func Default() *File {
	return &File{
		Canvas: Canvas{
			Width:        800,
			Height:       600,
			Scale:        1,
			Background:   "#ffffff",
			Stroke:       "#000000",
			SourceStroke: "#c0c0c0",
		},
		Length:          LengthBand{Min: 0, Max: 100},
		Stroke:          StrokeRange{Min: 0.05, Max: 0.1},
		Opacity:         Opacity{Value: 0.6, SetBy: "Path"},
		Division:        Division{Amount: 10, By: "Length"},
		Mouse:           Mouse{CachePoints: true},
		SelfReferential: true,
		IndexThreshold:  1 << 16,
	}
}

// Parse decodes YAML over Default and validates the result.
func Parse(data []byte) (*File, error) {
	f := Default()
	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// Load downloads and parses the configuration at url. Any afs URL is
// accepted; plain paths refer to the local file system.
func Load(ctx context.Context, url string) (*File, error) {
	data, err := afs.New().DownloadWithURL(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", url, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", url, err)
	}
	sketchy.Logger().Debug("config: loaded", "url", url, "paths", len(f.Paths), "strokes", len(f.Pointer))
	return f, nil
}

// SessionOptions converts the parameters into session options.
func (f *File) SessionOptions() (session.Options, error) {
	mode, err := sketchy.ParseDivisionMode(f.Division.By)
	if err != nil {
		return session.Options{}, err
	}
	scope, err := sketchy.ParseOpacityScope(f.Opacity.SetBy)
	if err != nil {
		return session.Options{}, err
	}
	opts := session.Options{
		Division: sketchy.DivisionParams{Mode: mode, Amount: f.Division.Amount},
		Connection: sketchy.ConnectionParams{
			MinLength:      f.Length.Min,
			MaxLength:      f.Length.Max,
			MinStrokeWidth: f.Stroke.Min,
			MaxStrokeWidth: f.Stroke.Max,
		},
		Style:             sketchy.StyleParams{Opacity: f.Opacity.Value, Scope: scope},
		CachePointerInput: f.Mouse.CachePoints,
		SelfReferential:   f.SelfReferential,
		CacheLimit:        f.Mouse.CacheLimit,
		IndexThreshold:    f.IndexThreshold,
	}
	if err := opts.Validate(); err != nil {
		return session.Options{}, fmt.Errorf("config: %w", err)
	}
	return opts, nil
}

// ExportOptions converts the canvas section into export options.
func (f *File) ExportOptions() (export.Options, error) {
	opts := export.DefaultOptions(f.Canvas.Width, f.Canvas.Height)
	opts.Scale = f.Canvas.Scale
	opts.ShowSources = f.Canvas.ShowSources

	var err error
	if f.Canvas.Background != "" {
		if opts.Background, err = export.ParseColor(f.Canvas.Background); err != nil {
			return export.Options{}, fmt.Errorf("config: canvas background: %w", err)
		}
	}
	if f.Canvas.Stroke != "" {
		if opts.Stroke, err = export.ParseColor(f.Canvas.Stroke); err != nil {
			return export.Options{}, fmt.Errorf("config: canvas stroke: %w", err)
		}
	}
	if f.Canvas.SourceStroke != "" {
		if opts.SourceStroke, err = export.ParseColor(f.Canvas.SourceStroke); err != nil {
			return export.Options{}, fmt.Errorf("config: canvas source stroke: %w", err)
		}
	}
	return opts, nil
}
