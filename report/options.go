package report

import (
	"github.com/rs/zerolog"

	"github.com/cwbudde/algo-xover/network"
	"github.com/cwbudde/algo-xover/parts"
	"github.com/cwbudde/algo-xover/response"
)

// Reference design used when no parameters are given.
const (
	DefaultCutoffHz = 2400.0
	DefaultLoadOhms = 4.0
)

// Config holds the inputs of a report run.
type Config struct {
	Params     network.Params
	Inductors  parts.Table
	Capacitors parts.Table
	Sweep      response.Sweep
	Topologies []network.Topology

	// SampleRate enables the digital preview when positive.
	SampleRate float64

	Logger zerolog.Logger
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the reference design with the standard tables, the
// default sweep, both topologies and no digital preview.
func DefaultConfig() Config {
	return Config{
		Params:     network.Params{CutoffHz: DefaultCutoffHz, LoadOhms: DefaultLoadOhms},
		Inductors:  parts.Inductors(),
		Capacitors: parts.Capacitors(),
		Sweep:      response.DefaultSweep(),
		Topologies: network.Topologies(),
		Logger:     zerolog.Nop(),
	}
}

// WithParams sets the design inputs. They are validated by [Run].
func WithParams(p network.Params) Option {
	return func(cfg *Config) { cfg.Params = p }
}

// WithTables replaces the inductor (mH) and capacitor (µF) tables.
func WithTables(inductors, capacitors parts.Table) Option {
	return func(cfg *Config) {
		cfg.Inductors = inductors
		cfg.Capacitors = capacitors
	}
}

// WithSweep replaces the evaluation sweep.
func WithSweep(s response.Sweep) Option {
	return func(cfg *Config) { cfg.Sweep = s }
}

// WithTopologies restricts the report to the given topologies.
func WithTopologies(ts ...network.Topology) Option {
	return func(cfg *Config) { cfg.Topologies = ts }
}

// WithSampleRate enables the digital preview at sampleRate. Zero disables
// it.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *Config) { cfg.SampleRate = sampleRate }
}

// WithLogger sets the logger for progress messages.
func WithLogger(l zerolog.Logger) Option {
	return func(cfg *Config) { cfg.Logger = l }
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
