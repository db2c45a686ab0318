// Command sketchy renders structural line drawings from a YAML scene.
//
// The configuration lists the source paths, the drawing parameters and a
// script of pointer strokes. Each stroke point is replayed as one pointer
// event, then the cross reference action runs if enabled, and the document
// is exported to SVG or PNG.
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"
	"os/signal"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/viant/afs"

	"github.com/milcktoast/sketchy"
	"github.com/milcktoast/sketchy/config"
	"github.com/milcktoast/sketchy/export"
	"github.com/milcktoast/sketchy/scene"
	"github.com/milcktoast/sketchy/session"
)

func main() {
	var (
		opts    options
		verbose bool
	)
	flag.StringVar(&opts.configURL, "config", "", "configuration file or afs URL (built-in demo if empty)")
	flag.StringVar(&opts.output, "output", "sketchy.svg", "output file or afs URL")
	flag.StringVar(&opts.format, "format", "", "output format: svg or png (default: output extension)")
	flag.BoolVar(&opts.watch, "watch", false, "regenerate whenever the local config file changes")
	flag.StringVar(&opts.metricsFile, "metrics", "", "write Prometheus metrics to this text file")
	flag.BoolVar(&verbose, "v", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	sketchy.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, opts)
	stop()
	if err != nil {
		log.Fatal(err)
	}
}

type options struct {
	configURL   string
	output      string
	format      string
	watch       bool
	metricsFile string
}

// run renders once and, in watch mode, again on every config change until
// ctx is canceled.
func run(ctx context.Context, opts options) error {
	if opts.format == "" {
		opts.format = export.FormatOf(opts.output)
	}
	if opts.watch && opts.configURL == "" {
		return errors.New("-watch requires -config")
	}

	cfg := demoConfig()
	if opts.configURL != "" {
		var err error
		if cfg, err = config.Load(ctx, opts.configURL); err != nil {
			return fmt.Errorf("load config: %w", err)
		}
	}

	r := &renderer{
		output:      opts.output,
		format:      opts.format,
		metricsFile: opts.metricsFile,
		registry:    prometheus.NewRegistry(),
	}
	r.metrics = session.NewMetrics(r.registry)

	if err := r.render(ctx, cfg); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if !opts.watch {
		return nil
	}

	w, err := config.Watch(ctx, opts.configURL, 0)
	if err != nil {
		return fmt.Errorf("watch config: %w", err)
	}
	defer w.Close()

	sketchy.Logger().Info("watching for changes", "config", opts.configURL)
	for cfg := range w.Changes() {
		if err := r.render(ctx, cfg); err != nil {
			sketchy.Logger().Error("render failed", "err", err)
		}
	}
	return nil
}

type renderer struct {
	output      string
	format      string
	metricsFile string
	registry    *prometheus.Registry
	metrics     *session.Metrics
}

// render generates a document from cfg and writes it to the output URL.
func (r *renderer) render(ctx context.Context, cfg *config.File) error {
	doc, err := generate(cfg, r.metrics)
	if err != nil {
		return err
	}

	exp, err := export.New(r.format)
	if err != nil {
		return err
	}
	opts, err := cfg.ExportOptions()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := exp.Export(&buf, doc, opts); err != nil {
		return err
	}
	if err := afs.New().Upload(ctx, r.output, 0o644, &buf); err != nil {
		return err
	}
	sketchy.Logger().Info("exported",
		"output", r.output,
		"format", r.format,
		"groups", len(doc.Groups()),
		"lines", doc.LineCount())

	if r.metricsFile != "" {
		if err := prometheus.WriteToTextfile(r.metricsFile, r.registry); err != nil {
			return err
		}
	}
	return nil
}

// generate replays the configured pointer strokes and cross reference
// action against a fresh document.
func generate(cfg *config.File, metrics *session.Metrics) (*scene.Document, error) {
	opts, err := cfg.SessionOptions()
	if err != nil {
		return nil, err
	}
	doc := cfg.Document()
	s := session.New(doc, doc, opts, session.WithMetrics(metrics))

	for _, stroke := range cfg.Pointer {
		if stroke.Clear {
			s.ClearCache()
		}
		for _, pt := range stroke.Points() {
			s.Pointer(pt)
		}
	}
	if cfg.CrossReference {
		s.CrossReference()
	}
	return doc, nil
}

// demoConfig is used when no configuration is given: three nested shapes
// cross referenced with a short pointer stroke.
func demoConfig() *config.File {
	cfg := config.Default()
	cfg.Length.Min = 5
	cfg.Length.Max = 60
	cfg.Stroke.Min = 0.25
	cfg.Stroke.Max = 1
	cfg.Division.Amount = 8
	cfg.CrossReference = true
	cfg.Paths = []config.PathSpec{
		{Kind: "circle", Center: [2]float64{400, 300}, Radius: 220},
		{Kind: "ellipse", Center: [2]float64{400, 300}, Radii: [2]float64{160, 90}},
		{Kind: "rect", Origin: [2]float64{300, 230}, Size: [2]float64{200, 140}},
	}

	var arc [][2]float64
	for i := range 24 {
		t := float64(i) / 23 * math.Pi
		arc = append(arc, [2]float64{400 + 260*math.Cos(t), 300 + 260*math.Sin(t)})
	}
	cfg.Pointer = []config.StrokeSpec{{Coords: arc}}
	return cfg
}
