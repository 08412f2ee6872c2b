package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/axelmagn/simple-nbclf/pkg/dataprep"
	"github.com/axelmagn/simple-nbclf/pkg/model"
	"github.com/axelmagn/simple-nbclf/pkg/report"
	"github.com/axelmagn/simple-nbclf/pkg/stats"
)

var evaluateCommand = &cli.Command{
	Name:      "evaluate",
	Usage:     "Fit on a training set and score predictions against held-out labels",
	ArgsUsage: "<x-train> <y-train> <x-test> <y-test>",
	Flags:     append(append([]cli.Flag{}, globalFlags...), SummaryFlag, ClassNamesFlag),
	Action:    evaluate,
}

func evaluate(ctx *cli.Context) error {
	if ctx.NArg() != 4 {
		return errors.Errorf("expected 4 arguments (%s), got %d", ctx.Command.ArgsUsage, ctx.NArg())
	}
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	x, y, err := loadTraining(ctx.Args().Get(0), ctx.Args().Get(1))
	if err != nil {
		return err
	}
	xTest, yTest, err := loadTraining(ctx.Args().Get(2), ctx.Args().Get(3))
	if err != nil {
		return err
	}
	if xTest.R != yTest.R {
		return errors.Wrapf(model.ErrMismatchedRecordCount, "test x has %d rows, test y has %d", xTest.R, yTest.R)
	}

	clf, err := fit(cfg, x, y)
	if err != nil {
		return err
	}
	if yTest.C != clf.NumClasses() {
		return errors.Errorf("test labels have %d classes, model has %d", yTest.C, clf.NumClasses())
	}
	proba, err := clf.Predict(xTest)
	if err != nil {
		return err
	}

	pred := make([]int, proba.R)
	undecided := 0
	for i := range pred {
		if pred[i] = stats.ArgMax(proba.RawRow(i)); pred[i] < 0 {
			undecided++
		}
	}
	acc, err := model.Accuracy(dataprep.FromOneHot(yTest), pred)
	if err != nil {
		return err
	}
	loss, err := model.LogLoss(yTest, proba)
	if err != nil {
		return err
	}
	if undecided > 0 {
		log.WithFields(logrus.Fields{"records": undecided}).Warn("Records with undefined posteriors")
	}

	fmt.Fprintf(ctx.App.Writer, "records\t%d\n", len(pred))
	fmt.Fprintf(ctx.App.Writer, "accuracy\t%.*f\n", cfg.Precision, acc)
	fmt.Fprintf(ctx.App.Writer, "log_loss\t%.*f\n", cfg.Precision, loss)

	if ctx.Bool(SummaryFlag.Name) {
		names, err := classNames(ctx, clf.NumClasses())
		if err != nil {
			return err
		}
		report.WriteSummary(ctx.App.ErrWriter, report.Summarize(proba, names))
	}
	return nil
}
