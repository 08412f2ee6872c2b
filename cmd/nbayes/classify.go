package main

import (
	"bytes"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"gonum.org/v1/gonum/mat"

	"github.com/axelmagn/simple-nbclf/pkg/config"
	"github.com/axelmagn/simple-nbclf/pkg/core"
	"github.com/axelmagn/simple-nbclf/pkg/data"
	"github.com/axelmagn/simple-nbclf/pkg/model"
	"github.com/axelmagn/simple-nbclf/pkg/report"
)

// classify is the default action: fit on X and Y, predict Z, print the
// posterior grid. Output is only written once every step has succeeded.
func classify(ctx *cli.Context) error {
	if ctx.NArg() != 3 {
		return errors.Errorf("expected 3 arguments (%s), got %d", ctx.App.ArgsUsage, ctx.NArg())
	}
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	x, y, err := loadTraining(ctx.Args().Get(0), ctx.Args().Get(1))
	if err != nil {
		return err
	}
	z, err := loadMatrix("z", ctx.Args().Get(2))
	if err != nil {
		return err
	}

	clf, err := fit(cfg, x, y)
	if err != nil {
		return err
	}
	pred, err := clf.Predict(z)
	if err != nil {
		return err
	}

	var out bytes.Buffer
	if err := data.WriteTSV(&out, pred, cfg.Precision); err != nil {
		return err
	}
	names, err := classNames(ctx, clf.NumClasses())
	if err != nil {
		return err
	}
	if path := ctx.String(PlotFlag.Name); path != "" {
		if err := report.PlotPosteriors(pred, names, path); err != nil {
			return err
		}
		log.WithField("path", path).Info("Saved posterior plot")
	}
	if ctx.Bool(SummaryFlag.Name) {
		report.WriteSummary(ctx.App.ErrWriter, report.Summarize(pred, names))
	}
	_, err = ctx.App.Writer.Write(out.Bytes())
	return err
}

func loadTraining(xPath, yPath string) (x, y *core.Matrix[int], err error) {
	if x, err = loadMatrix("x", xPath); err != nil {
		return nil, nil, err
	}
	if y, err = loadMatrix("y", yPath); err != nil {
		return nil, nil, err
	}
	return x, y, nil
}

// loadMatrix parses an integer matrix and traces it under name.
func loadMatrix(name, path string) (*core.Matrix[int], error) {
	m, err := data.Load[int](path)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{"matrix": name, "rows": m.R, "cols": m.C}).Debug("Loaded input")
	if log.IsLevelEnabled(logrus.TraceLevel) {
		log.Tracef("%s:\n%v", name, mat.Formatted(core.ToDense(m), mat.Squeeze()))
	}
	return m, nil
}

func fit(cfg config.Config, x, y *core.Matrix[int]) (*model.MultinomialNB, error) {
	clf, err := model.FitMultinomialNB(x, y, cfg.ModelOptions()...)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"alpha":    clf.Alpha(),
		"classes":  clf.NumClasses(),
		"features": clf.NumFeatures(),
	}).Info("Fitted model")
	if log.IsLevelEnabled(logrus.DebugLevel) {
		log.Debugf("class_count: %v", clf.ClassCount())
		log.Debugf("class_log_prior: %v", clf.ClassLogPrior())
		log.Debugf("feature_count:\n%v", mat.Formatted(core.ToDense(clf.FeatureCount()), mat.Squeeze()))
		log.Debugf("feature_log_prob:\n%v", mat.Formatted(core.ToDense(clf.FeatureLogProb()), mat.Squeeze()))
	}
	return clf, nil
}

func classNames(ctx *cli.Context, n int) ([]string, error) {
	names := ctx.StringSlice(ClassNamesFlag.Name)
	if len(names) == 0 {
		return report.DefaultClassNames(n), nil
	}
	if len(names) != n {
		return nil, errors.Errorf("--%s has %d names, model has %d classes", ClassNamesFlag.Name, len(names), n)
	}
	return names, nil
}
