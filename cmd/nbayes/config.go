package main

import (
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/axelmagn/simple-nbclf/pkg/config"
)

var dumpconfigCommand = &cli.Command{
	Name:   "dumpconfig",
	Usage:  "Export the effective configuration as TOML",
	Flags:  globalFlags,
	Action: dumpConfig,
}

// loadConfig resolves defaults, the optional config file and explicit flags,
// in that order, and applies the log level.
func loadConfig(ctx *cli.Context) (config.Config, error) {
	cfg := config.Default()
	if path := ctx.String(ConfigFlag.Name); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return config.Config{}, err
		}
	}
	if ctx.IsSet(AlphaFlag.Name) {
		cfg.Alpha = ctx.Float64(AlphaFlag.Name)
	}
	if ctx.IsSet(WorkersFlag.Name) {
		cfg.Workers = ctx.Int(WorkersFlag.Name)
	}
	if ctx.IsSet(PrecisionFlag.Name) {
		cfg.Precision = ctx.Int(PrecisionFlag.Name)
	}
	if ctx.IsSet(VerbosityFlag.Name) {
		cfg.LogLevel = ctx.String(VerbosityFlag.Name)
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	log.SetOutput(ctx.App.ErrWriter)
	log.SetLevel(cfg.Level())
	logrus.SetOutput(ctx.App.ErrWriter)
	logrus.SetLevel(cfg.Level())
	return cfg, nil
}

func dumpConfig(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	return cfg.Write(ctx.App.Writer)
}
