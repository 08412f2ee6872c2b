package model

import (
	"math"

	"github.com/pkg/errors"

	"github.com/axelmagn/simple-nbclf/pkg/core"
)

// probability clamp used by LogLoss
const eps = 1e-15

// Accuracy is the fraction of positions where yPred equals yTrue.
func Accuracy(yTrue, yPred []int) (float64, error) {
	if len(yTrue) != len(yPred) {
		return 0, errors.Wrapf(ErrShapeMismatch, "%d labels, %d predictions", len(yTrue), len(yPred))
	}
	if len(yTrue) == 0 {
		return 0, nil
	}
	c := 0
	for i := range yTrue {
		if yTrue[i] == yPred[i] {
			c++
		}
	}
	return float64(c) / float64(len(yTrue)), nil
}

// LogLoss is the mean natural-log cross entropy between one-hot labels Y and
// posteriors P. Probabilities are clamped to [eps, 1-eps]; NaN posteriors
// count as eps.
func LogLoss(Y *core.Matrix[int], P *core.Matrix[float64]) (float64, error) {
	if Y.R != P.R || Y.C != P.C {
		return 0, errors.Wrapf(ErrShapeMismatch, "labels %dx%d, posteriors %dx%d", Y.R, Y.C, P.R, P.C)
	}
	if Y.R == 0 {
		return 0, nil
	}
	s := 0.0
	for i := range Y.Data {
		if Y.Data[i] != 1 {
			continue
		}
		p := P.Data[i]
		if math.IsNaN(p) {
			p = eps
		}
		p = math.Min(math.Max(p, eps), 1-eps)
		s -= math.Log(p)
	}
	return s / float64(Y.R), nil
}
