package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/hasbyte1/cronies/chain"
	"github.com/hasbyte1/cronies/logging"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("cronies: invalid config")

// Config holds the settings of one cronies run.
type Config struct {
	Log    logging.Config `koanf:"log"`
	Format FormatConfig   `koanf:"format"`
	Output OutputConfig   `koanf:"output"`
}

// FormatConfig holds the defaults of the formatting steps.
type FormatConfig struct {
	// DecimalPlaces used by round and fixed steps without an argument.
	DecimalPlaces int `koanf:"decimal_places"`
	// DatePattern used by date steps without an argument.
	DatePattern string `koanf:"date_pattern"`
	// DayNames, Monday first. Empty means English abbreviations.
	DayNames []string `koanf:"day_names"`
	// Location is an IANA zone name. Empty means the local zone.
	Location string `koanf:"location"`
}

// OutputConfig controls how results are written.
type OutputConfig struct {
	Format string `koanf:"format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log: logging.DefaultConfig(),
		Format: FormatConfig{
			DecimalPlaces: 2,
			DatePattern:   "YYYY-MM-dd",
		},
		Output: OutputConfig{Format: "json"},
	}
}

// applyDefaults fills empty string fields. Numeric fields are defaulted
// before the file is read, since zero is a valid value for them.
func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.Log.Level == "" {
		cfg.Log.Level = def.Log.Level
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = def.Log.Format
	}
	if cfg.Format.DatePattern == "" {
		cfg.Format.DatePattern = def.Format.DatePattern
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = def.Output.Format
	}
}

// Validate checks every field.
func (c *Config) Validate() error {
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("%w: log: %w", ErrInvalidConfig, err)
	}
	if c.Format.DecimalPlaces < 0 {
		return fmt.Errorf("%w: format.decimal_places must be >= 0, got %d", ErrInvalidConfig, c.Format.DecimalPlaces)
	}
	if n := len(c.Format.DayNames); n != 0 && n != 7 {
		return fmt.Errorf("%w: format.day_names needs 7 names, got %d", ErrInvalidConfig, n)
	}
	if _, err := c.location(); err != nil {
		return fmt.Errorf("%w: format.location: %w", ErrInvalidConfig, err)
	}
	switch c.Output.Format {
	case "json", "yaml":
	default:
		return fmt.Errorf("%w: output.format must be 'json' or 'yaml', got %q", ErrInvalidConfig, c.Output.Format)
	}
	return nil
}

func (c *Config) location() (*time.Location, error) {
	if c.Format.Location == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Format.Location)
}

// ChainOptions returns the wrapper options matching the format settings.
// The config must have been validated.
func (c *Config) ChainOptions() []chain.Option {
	loc, _ := c.location()
	opts := []chain.Option{chain.WithLocation(loc)}
	if len(c.Format.DayNames) == 7 {
		var names [7]string
		copy(names[:], c.Format.DayNames)
		opts = append(opts, chain.WithDayNames(names))
	}
	return opts
}
