package model

import "github.com/axelmagn/simple-nbclf/pkg/core"

// Classifier is a fitted model over count features that yields per-class
// posteriors.
type Classifier interface {
	// Predict returns a records x classes matrix of posterior probabilities.
	Predict(Z *core.Matrix[int]) (*core.Matrix[float64], error)
	// PredictClass returns the most probable class per record.
	PredictClass(Z *core.Matrix[int]) ([]int, error)
}

var _ Classifier = (*MultinomialNB)(nil)
