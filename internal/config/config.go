// Package config loads the crossover designer settings from defaults, an
// optional config file and XOVER_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/cwbudde/algo-xover/network"
)

// Keys of every recognized setting. Environment variables use the XOVER_
// prefix with the key upper-cased, e.g. XOVER_CUTOFF_HZ.
const (
	KeyCutoffHz   = "cutoff_hz"
	KeyLoadOhms   = "load_ohms"
	KeyFormat     = "format"
	KeyTopology   = "topology"
	KeySampleRate = "sample_rate"
	KeyLogLevel   = "log_level"
)

// Output formats understood by the command.
const (
	FormatTable = "table"
	FormatCSV   = "csv"
	FormatNone  = "none"
)

// Config holds the designer settings.
type Config struct {
	Design network.Params

	// Topology is "both", "lpf" or "hpf".
	Topology string
	// Format selects the figure renderer: table, csv or none.
	Format string
	// SampleRate enables the digital preview when positive.
	SampleRate float64
	LogLevel   zerolog.Level
}

// Load reads the settings. path names an optional config file in any format
// viper understands; an empty path skips the file. Environment variables
// override the file.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault(KeyCutoffHz, 2400.0)
	v.SetDefault(KeyLoadOhms, 4.0)
	v.SetDefault(KeyFormat, FormatTable)
	v.SetDefault(KeyTopology, "both")
	v.SetDefault(KeySampleRate, 0.0)
	v.SetDefault(KeyLogLevel, "info")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	v.SetEnvPrefix("XOVER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	for _, k := range []string{KeyCutoffHz, KeyLoadOhms, KeyFormat, KeyTopology, KeySampleRate, KeyLogLevel} {
		if err := v.BindEnv(k); err != nil {
			return nil, fmt.Errorf("config: bind %s: %w", k, err)
		}
	}

	level, err := zerolog.ParseLevel(strings.ToLower(v.GetString(KeyLogLevel)))
	if err != nil {
		return nil, fmt.Errorf("config: log level %q: %w", v.GetString(KeyLogLevel), err)
	}

	cfg := &Config{
		Design: network.Params{
			CutoffHz: v.GetFloat64(KeyCutoffHz),
			LoadOhms: v.GetFloat64(KeyLoadOhms),
		},
		Topology:   strings.ToLower(v.GetString(KeyTopology)),
		Format:     strings.ToLower(v.GetString(KeyFormat)),
		SampleRate: v.GetFloat64(KeySampleRate),
		LogLevel:   level,
	}
	return cfg, nil
}

// Validate checks the design inputs and the presentation options.
func (c *Config) Validate() error {
	if err := c.Design.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := c.Topologies(); err != nil {
		return err
	}
	switch c.Format {
	case FormatTable, FormatCSV, FormatNone:
	default:
		return fmt.Errorf("config: unknown format %q", c.Format)
	}
	if c.SampleRate < 0 {
		return fmt.Errorf("config: sample rate must not be negative, got %v: %w", c.SampleRate, network.ErrInvalidParameter)
	}
	return nil
}

// Topologies resolves the Topology setting.
func (c *Config) Topologies() ([]network.Topology, error) {
	if c.Topology == "" || c.Topology == "both" {
		return network.Topologies(), nil
	}
	t, err := network.ParseTopology(c.Topology)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return []network.Topology{t}, nil
}

// ErrUnknownKey is returned by Set for keys Load does not recognize.
var ErrUnknownKey = errors.New("unknown config key")

// Set overrides a single setting from its string form, as given on the
// command line.
func (c *Config) Set(key, value string) error {
	switch key {
	case KeyCutoffHz, KeyLoadOhms, KeySampleRate:
		f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return fmt.Errorf("config: %s=%q: %w", key, value, err)
		}
		switch key {
		case KeyCutoffHz:
			c.Design.CutoffHz = f
		case KeyLoadOhms:
			c.Design.LoadOhms = f
		default:
			c.SampleRate = f
		}
	case KeyFormat:
		c.Format = strings.ToLower(value)
	case KeyTopology:
		c.Topology = strings.ToLower(value)
	case KeyLogLevel:
		level, err := zerolog.ParseLevel(strings.ToLower(value))
		if err != nil {
			return fmt.Errorf("config: log level %q: %w", value, err)
		}
		c.LogLevel = level
	default:
		return fmt.Errorf("config: %q: %w", key, ErrUnknownKey)
	}
	return nil
}
