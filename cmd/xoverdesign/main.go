// Command xoverdesign designs a second-order passive crossover, rounds the
// ideal parts to commercial values and prints how the rounding changes the
// low-pass and high-pass responses.
//
// Usage:
//
//	xoverdesign [flags]
//
// Settings come from defaults, an optional -config file, XOVER_* environment
// variables and finally the flags, each overriding the previous.
//
// Examples:
//
//	xoverdesign
//	xoverdesign -fc 3000 -r 8
//	xoverdesign -fc 2400 -r 4 -format csv > bode.csv
//	xoverdesign -topology hpf -sample-rate 48000
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/cwbudde/algo-xover/internal/config"
	"github.com/cwbudde/algo-xover/plot"
	"github.com/cwbudde/algo-xover/report"
)

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"fc":          config.KeyCutoffHz,
	"r":           config.KeyLoadOhms,
	"format":      config.KeyFormat,
	"topology":    config.KeyTopology,
	"sample-rate": config.KeySampleRate,
	"log-level":   config.KeyLogLevel,
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("xoverdesign", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "optional config file (yaml, json, toml, env)")
	fs.Float64("fc", report.DefaultCutoffHz, "cutoff frequency in Hz")
	fs.Float64("r", report.DefaultLoadOhms, "load impedance in Ohms")
	fs.String("format", config.FormatTable, "figure output: table, csv or none")
	fs.String("topology", "both", "topologies to evaluate: both, lpf or hpf")
	fs.Float64("sample-rate", 0, "sample rate of the digital preview in Hz (0 disables)")
	fs.String("log-level", "info", "log level: debug, info, warn or error")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: xoverdesign [flags]\n\n")
		fmt.Fprintf(stderr, "Designs a second-order passive crossover and compares ideal and\n")
		fmt.Fprintf(stderr, "commercial-part responses.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nEnvironment:\n")
		fmt.Fprintf(stderr, "  XOVER_CUTOFF_HZ, XOVER_LOAD_OHMS, XOVER_FORMAT, XOVER_TOPOLOGY,\n")
		fmt.Fprintf(stderr, "  XOVER_SAMPLE_RATE, XOVER_LOG_LEVEL\n")
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  xoverdesign -fc 3000 -r 8\n")
		fmt.Fprintf(stderr, "  xoverdesign -format csv > bode.csv\n")
		fmt.Fprintf(stderr, "  xoverdesign -topology hpf -sample-rate 48000\n")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	// Only flags given explicitly override file and environment values.
	var setErr error
	fs.Visit(func(f *flag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok || setErr != nil {
			return
		}
		setErr = cfg.Set(key, f.Value.String())
	})
	if setErr != nil {
		fmt.Fprintf(stderr, "error: %v\n", setErr)
		return 2
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr}).
		Level(cfg.LogLevel).
		With().Timestamp().Logger()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	topologies, err := cfg.Topologies()
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	var renderer plot.Renderer
	switch cfg.Format {
	case config.FormatCSV:
		renderer = plot.NewCSVRenderer(stdout)
	case config.FormatNone:
		renderer = plot.Discard
	default:
		renderer = plot.TableRenderer{W: stdout}
	}

	// CSV output stays machine-readable; the summary goes to stderr.
	summary := stdout
	if cfg.Format == config.FormatCSV {
		summary = stderr
	}

	logger.Debug().
		Float64("cutoff_hz", cfg.Design.CutoffHz).
		Float64("load_ohms", cfg.Design.LoadOhms).
		Str("format", cfg.Format).
		Msg("starting design")

	_, err = report.Run(summary, renderer,
		report.WithParams(cfg.Design),
		report.WithTopologies(topologies...),
		report.WithSampleRate(cfg.SampleRate),
		report.WithLogger(logger),
	)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
