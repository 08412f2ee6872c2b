package main

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/axelmagn/simple-nbclf/pkg/core"
	"github.com/axelmagn/simple-nbclf/pkg/dataprep"
	"github.com/axelmagn/simple-nbclf/pkg/loader"
	"github.com/axelmagn/simple-nbclf/pkg/model"
	"github.com/axelmagn/simple-nbclf/pkg/report"
)

// generateCountData draws nSamples documents of docLen tokens over nFeatures
// features. Every class has its own random token distribution.
func generateCountData(rng *rand.Rand, nSamples, nFeatures, nClasses, docLen int) (X *core.Matrix[int], labels []int) {
	// cumulative distribution per class
	cdf := make([][]float64, nClasses)
	for c := range cdf {
		cdf[c] = make([]float64, nFeatures)
		total := 0.0
		for f := range cdf[c] {
			total += rng.ExpFloat64()
			cdf[c][f] = total
		}
		for f := range cdf[c] {
			cdf[c][f] /= total
		}
	}

	X = core.NewMatrix[int](nSamples, nFeatures)
	labels = make([]int, nSamples)
	for i := 0; i < nSamples; i++ {
		class := rng.Intn(nClasses)
		labels[i] = class
		row := X.RawRow(i)
		for t := 0; t < docLen; t++ {
			u := rng.Float64()
			f := 0
			for f < nFeatures-1 && cdf[class][f] < u {
				f++
			}
			row[f]++
		}
	}
	return X, labels
}

func main() {
	rng := rand.New(rand.NewSource(42))

	fmt.Println("=== Multinomial Naive Bayes on synthetic counts ===")

	// Step 1. Generate dataset
	X, labels := generateCountData(rng, 600, 12, 3, 40)
	Y := dataprep.OneHot(labels, 3)
	X, Y, err := loader.ShuffleRows(X, Y, rng)
	if err != nil {
		logrus.Fatal(err)
	}
	fmt.Printf("Generated %d samples with %d count features each.\n", X.R, X.C)

	// Step 2. Split into train/test sets
	split, err := loader.TrainTestSplit(X, Y, 0.25, rng)
	if err != nil {
		logrus.Fatal(err)
	}
	fmt.Printf("Train size: %d, Test size: %d\n", split.XTrain.R, split.XTest.R)

	// Step 3. Fit with Laplace smoothing, predict on every core
	clf, err := model.FitMultinomialNB(split.XTrain, split.YTrain, model.WithAlpha(1), model.WithWorkers(0))
	if err != nil {
		logrus.Fatal(err)
	}
	fmt.Printf("Class counts: %v\n", clf.ClassCount())

	// Step 4. Evaluate
	proba, err := clf.Predict(split.XTest)
	if err != nil {
		logrus.Fatal(err)
	}
	pred, err := clf.PredictClass(split.XTest)
	if err != nil {
		logrus.Fatal(err)
	}
	acc, err := model.Accuracy(dataprep.FromOneHot(split.YTest), pred)
	if err != nil {
		logrus.Fatal(err)
	}
	loss, err := model.LogLoss(split.YTest, proba)
	if err != nil {
		logrus.Fatal(err)
	}
	fmt.Printf("Accuracy on test data: %.2f%%, log loss: %.4f\n", acc*100, loss)

	// Step 5. Plot the first records
	n := min(12, proba.R)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	if err := report.PlotPosteriors(proba.SelectRows(idx), nil, "posteriors.png"); err != nil {
		logrus.Fatal(err)
	}
	fmt.Println("Saved posterior plot to posteriors.png")
}
