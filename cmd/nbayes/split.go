package main

import (
	"math/rand"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/axelmagn/simple-nbclf/pkg/core"
	"github.com/axelmagn/simple-nbclf/pkg/data"
	"github.com/axelmagn/simple-nbclf/pkg/loader"
)

var (
	RatioFlag = &cli.Float64Flag{
		Name:  "ratio",
		Usage: "Fraction of records held out for testing",
		Value: 0.2,
	}
	SeedFlag = &cli.Int64Flag{
		Name:  "seed",
		Usage: "Shuffle seed",
		Value: 1,
	}
	PrefixFlag = &cli.StringFlag{
		Name:  "prefix",
		Usage: "File name prefix for the written matrices",
	}
)

var splitCommand = &cli.Command{
	Name:      "split",
	Usage:     "Shuffle a labelled data set and write train/test matrices",
	ArgsUsage: "<x> <y> <out-dir>",
	Description: `Writes <prefix>x_train.tsv, <prefix>x_test.tsv, <prefix>y_train.tsv and
<prefix>y_test.tsv into out-dir. The same seed always yields the same split.`,
	Flags:  []cli.Flag{VerbosityFlag, RatioFlag, SeedFlag, PrefixFlag},
	Action: split,
}

func split(ctx *cli.Context) error {
	if ctx.NArg() != 3 {
		return errors.Errorf("expected 3 arguments (%s), got %d", ctx.Command.ArgsUsage, ctx.NArg())
	}
	if _, err := loadConfig(ctx); err != nil {
		return err
	}
	x, y, err := loadTraining(ctx.Args().Get(0), ctx.Args().Get(1))
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(ctx.Int64(SeedFlag.Name)))
	s, err := loader.TrainTestSplit(x, y, ctx.Float64(RatioFlag.Name), rng)
	if err != nil {
		return err
	}

	dir, prefix := ctx.Args().Get(2), ctx.String(PrefixFlag.Name)
	outputs := []struct {
		name string
		m    *core.Matrix[int]
	}{
		{"x_train", s.XTrain},
		{"x_test", s.XTest},
		{"y_train", s.YTrain},
		{"y_test", s.YTest},
	}
	for _, o := range outputs {
		path := filepath.Join(dir, prefix+o.name+".tsv")
		if err := data.Save(path, o.m); err != nil {
			return err
		}
		log.WithFields(logrus.Fields{"path": path, "rows": o.m.R, "cols": o.m.C}).Info("Wrote matrix")
	}
	return nil
}
