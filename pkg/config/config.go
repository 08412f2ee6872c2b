// Package config holds the run configuration shared by the nbayes commands.
package config

import (
	"io"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/axelmagn/simple-nbclf/pkg/model"
)

// Config is the TOML-serializable run configuration.
type Config struct {
	// Alpha is the additive smoothing constant passed to the model.
	Alpha float64 `toml:"alpha"`
	// Precision is the number of fractional digits printed per posterior.
	Precision int `toml:"precision"`
	// Workers is the number of goroutines used by predict. <= 0 means GOMAXPROCS.
	Workers int `toml:"workers"`
	// LogLevel is a logrus level name.
	LogLevel string `toml:"log_level"`
}

// Default returns the configuration used when no file or flag overrides it.
func Default() Config {
	return Config{
		Alpha:     model.DefaultAlpha,
		Precision: 6,
		Workers:   1,
		LogLevel:  logrus.WarnLevel.String(),
	}
}

// Load reads a TOML file on top of the defaults. Keys missing from the file
// keep their default values; unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config: %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.Errorf("config: %s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, cfg.Validate()
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Alpha < 0 {
		return errors.Errorf("config: alpha must be >= 0, got %v", c.Alpha)
	}
	if c.Precision < 0 {
		return errors.Errorf("config: precision must be >= 0, got %d", c.Precision)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "config")
	}
	return nil
}

// Level returns the parsed log level. Call Validate first.
func (c Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.WarnLevel
	}
	return lvl
}

// ModelOptions translates the configuration into model options.
func (c Config) ModelOptions() []model.Option {
	return []model.Option{model.WithAlpha(c.Alpha), model.WithWorkers(c.Workers)}
}

// Write encodes c as TOML.
func (c Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
