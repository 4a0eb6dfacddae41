// Command markergen draws the BCC, FCC and HCP tracking markers.
//
// Usage:
//
//	markergen [-config markergen.yaml] [-output assets/markers] [-size 640]
//	          [-font /path/to/font.ttf] [-font-size 40] [-markers bcc,fcc,hcp]
//	          [-log-level warn] [-log-format text]
//
// Settings are read from defaults, then the config file, then MARKERGEN_*
// environment variables, then flags.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gogpu/markers"
	"github.com/gogpu/markers/internal/config"
	"github.com/gogpu/markers/internal/console"
	"github.com/gogpu/markers/internal/logging"
	"github.com/gogpu/markers/typeface"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// flags holds command-line overrides. Empty or zero values leave the
// loaded configuration unchanged.
type flags struct {
	config    string
	output    string
	size      int
	font      string
	fontSize  float64
	markers   string
	logLevel  string
	logFormat string
}

func parseFlags(args []string, stderr io.Writer) (flags, error) {
	var f flags
	fs := flag.NewFlagSet("markergen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.config, "config", os.Getenv("MARKERGEN_CONFIG"), "YAML config file")
	fs.StringVar(&f.output, "output", "", "output directory (default assets/markers)")
	fs.IntVar(&f.size, "size", 0, "canvas size in pixels (default 640)")
	fs.StringVar(&f.font, "font", "", "comma-separated label font files, tried first")
	fs.Float64Var(&f.fontSize, "font-size", 0, "label font size at 640 pixels (default 40)")
	fs.StringVar(&f.markers, "markers", "", "comma-separated markers to draw (default bcc,fcc,hcp)")
	fs.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.StringVar(&f.logFormat, "log-format", "", "log format: text or json")
	err := fs.Parse(args)
	return f, err
}

// apply overlays the flags onto cfg and revalidates it.
func (f flags) apply(cfg *config.Config) error {
	if f.output != "" {
		cfg.OutputDir = f.output
	}
	if f.size != 0 {
		cfg.Size = f.size
	}
	if f.font != "" {
		cfg.Font.Paths = config.SplitList(f.font)
	}
	if f.fontSize != 0 {
		cfg.Font.Size = f.fontSize
	}
	if f.markers != "" {
		cfg.Markers = config.SplitList(f.markers)
	}
	if f.logLevel != "" {
		cfg.Logging.Level = f.logLevel
	}
	if f.logFormat != "" {
		cfg.Logging.Format = f.logFormat
	}
	return cfg.Validate()
}

func run(args []string, stdout, stderr io.Writer) error {
	f, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	cfg, err := config.Load(f.config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := f.apply(cfg); err != nil {
		return err
	}

	kinds, err := markers.ParseKinds(cfg.Markers)
	if err != nil {
		return err
	}

	logCfg := logging.Config{
		Level:          cfg.Logging.Level,
		Format:         cfg.Logging.Format,
		FilePath:       cfg.Logging.File,
		FileMaxSizeMB:  cfg.Logging.FileMaxSizeMB,
		FileMaxFiles:   cfg.Logging.FileMaxFiles,
		FileMaxAgeDays: cfg.Logging.FileMaxAgeDays,
	}
	logger, closer := logging.New(logCfg, stderr)
	defer closer.Close() //nolint:errcheck
	markers.SetLogger(logger)
	defer markers.SetLogger(nil)

	candidates := cfg.Font.Paths
	if !cfg.Font.SkipSystem {
		candidates = append(candidates, typeface.SystemCandidates()...)
	}
	face := typeface.Loader{
		Candidates: candidates,
		Size:       markers.LabelSize(cfg.Font.Size, cfg.Size),
		Logger:     logger,
	}.Load()
	if c, ok := face.(io.Closer); ok {
		defer c.Close() //nolint:errcheck
	}

	logger.Debug("starting",
		slog.String("config", f.config),
		slog.String("logging", logCfg.String()),
		slog.Int("size", cfg.Size),
		slog.String("output", cfg.OutputDir),
		slog.String("font", face.Name()))

	d := &markers.Driver{
		Generator: markers.NewGenerator(markers.WithSize(cfg.Size), markers.WithFace(face)),
		OutputDir: cfg.OutputDir,
		Kinds:     kinds,
		Reporter:  console.New(stdout),
	}
	_, err = d.Run()
	return err
}
