package model

import (
	"math"

	"github.com/pkg/errors"

	"github.com/axelmagn/simple-nbclf/pkg/core"
	"github.com/axelmagn/simple-nbclf/pkg/stats"
)

// DefaultAlpha is the additive smoothing applied when WithAlpha is not given.
// It keeps zero counts finite in log space without shifting non-zero counts.
const DefaultAlpha = 1e-50

// MultinomialNB is a fitted multinomial naive bayes classifier. All
// probabilities are kept as base-2 logarithms. The value is read-only once
// FitMultinomialNB returns it.
type MultinomialNB struct {
	alpha   float64
	workers int

	// shape: n_classes
	classCount    []int
	classLogPrior []float64
	// shape: (n_classes, n_features)
	featureCount   *core.Matrix[int]
	featureLogProb *core.Matrix[float64]
}

// Option functional config for MultinomialNB
type Option func(*MultinomialNB)

// WithAlpha sets the additive smoothing constant. Zero disables smoothing,
// in which case unseen features have a log probability of -Inf.
func WithAlpha(alpha float64) Option { return func(nb *MultinomialNB) { nb.alpha = alpha } }

// WithWorkers sets how many goroutines Predict spreads records across.
// Values <= 0 use GOMAXPROCS.
func WithWorkers(n int) Option { return func(nb *MultinomialNB) { nb.workers = n } }

// FitMultinomialNB fits a classifier to X (records x features, counts) and
// Y (records x classes, one-hot). A record flagged for several classes adds
// its counts to each of them. Inputs are validated before any accumulation,
// so no model is returned on error. Zero counts with alpha == 0 produce
// non-finite log probabilities, which are kept as is.
func FitMultinomialNB(X, Y *core.Matrix[int], opts ...Option) (*MultinomialNB, error) {
	nb := &MultinomialNB{alpha: DefaultAlpha, workers: 1}
	for _, o := range opts {
		o(nb)
	}

	nRecords, nFeats := X.Dims()
	yRecords, nClasses := Y.Dims()
	if yRecords != nRecords {
		return nil, errors.Wrapf(ErrMismatchedRecordCount, "x has %d rows, y has %d", nRecords, yRecords)
	}
	for i := 0; i < nRecords; i++ {
		for j, v := range Y.RawRow(i) {
			if v != 0 && v != 1 {
				return nil, errors.Wrapf(ErrNonBinaryLabel, "y[%d][%d] = %d", i, j, v)
			}
		}
	}

	nb.classCount = make([]int, nClasses)
	nb.classLogPrior = make([]float64, nClasses)
	nb.featureCount = core.NewMatrix[int](nClasses, nFeats)
	nb.featureLogProb = core.NewMatrix[float64](nClasses, nFeats)

	// accumulate counts
	nObservations := 0
	for i := 0; i < nRecords; i++ {
		x := X.RawRow(i)
		for j, flag := range Y.RawRow(i) {
			if flag != 1 {
				continue
			}
			counts := nb.featureCount.RawRow(j)
			for k, n := range x {
				nObservations += n
				nb.classCount[j] += n
				counts[k] += n
			}
		}
	}

	// pr(c) = class_count[c] / n_observations
	// pr(f | c) = feature_count[c,f] / class_count[c]
	logObservations := math.Log2(float64(nObservations))
	for c := 0; c < nClasses; c++ {
		logClass := math.Log2(float64(nb.classCount[c]) + nb.alpha)
		nb.classLogPrior[c] = logClass - logObservations
		counts := nb.featureCount.RawRow(c)
		logProbs := nb.featureLogProb.RawRow(c)
		for f := range counts {
			logProbs[f] = math.Log2(float64(counts[f])+nb.alpha) - logClass
		}
	}
	return nb, nil
}

// PredictLogScores returns, per record and class, the unnormalized log2 joint
// score class_log_prior[c] + sum_k feature_log_prob[c][k] * Z[i][k].
func (nb *MultinomialNB) PredictLogScores(Z *core.Matrix[int]) (*core.Matrix[float64], error) {
	if Z.C != nb.featureCount.C {
		return nil, errors.Wrapf(ErrMismatchedFeatureCount, "got %d features, model has %d", Z.C, nb.featureCount.C)
	}
	out := core.NewMatrix[float64](Z.R, nb.NumClasses())
	core.ParallelRows(Z.R, nb.workers, func(start, end int) {
		for i := start; i < end; i++ {
			nb.logScoresInto(Z.RawRow(i), out.RawRow(i))
		}
	})
	return out, nil
}

// Predict returns the posterior probability of every class for every record
// of Z. Each row sums to 1 up to rounding. A row whose scores all underflow
// to zero, or that contains a NaN score, comes back as NaN.
func (nb *MultinomialNB) Predict(Z *core.Matrix[int]) (*core.Matrix[float64], error) {
	if Z.C != nb.featureCount.C {
		return nil, errors.Wrapf(ErrMismatchedFeatureCount, "got %d features, model has %d", Z.C, nb.featureCount.C)
	}
	// pr(C|F) = product(pr(F_i|C), i) * pr(C) / pr(F)
	out := core.NewMatrix[float64](Z.R, nb.NumClasses())
	core.ParallelRows(Z.R, nb.workers, func(start, end int) {
		for i := start; i < end; i++ {
			row := out.RawRow(i)
			nb.logScoresInto(Z.RawRow(i), row)
			for j, s := range row {
				row[j] = math.Exp2(s)
			}
			// sum(pr(C|F), C) = 1
			divisor := stats.Sum(row)
			for j := range row {
				row[j] /= divisor
			}
		}
	})
	return out, nil
}

// PredictClass returns the index of the most probable class per record, or
// -1 for a record whose posterior row is entirely NaN.
func (nb *MultinomialNB) PredictClass(Z *core.Matrix[int]) ([]int, error) {
	proba, err := nb.Predict(Z)
	if err != nil {
		return nil, err
	}
	out := make([]int, proba.R)
	for i := range out {
		out[i] = stats.ArgMax(proba.RawRow(i))
	}
	return out, nil
}

func (nb *MultinomialNB) logScoresInto(z []int, dst []float64) {
	for j := range dst {
		logDividend := nb.classLogPrior[j]
		for k, logProb := range nb.featureLogProb.RawRow(j) {
			logDividend += logProb * float64(z[k])
		}
		dst[j] = logDividend
	}
}

// Alpha returns the smoothing constant the model was fitted with.
func (nb *MultinomialNB) Alpha() float64 { return nb.alpha }

func (nb *MultinomialNB) NumClasses() int  { return len(nb.classCount) }
func (nb *MultinomialNB) NumFeatures() int { return nb.featureCount.C }

// ClassCount returns a copy of the per-class observed count mass.
func (nb *MultinomialNB) ClassCount() []int { return append([]int(nil), nb.classCount...) }

// ClassLogPrior returns a copy of the per-class log2 priors.
func (nb *MultinomialNB) ClassLogPrior() []float64 {
	return append([]float64(nil), nb.classLogPrior...)
}

// FeatureCount returns a copy of the classes x features count matrix.
func (nb *MultinomialNB) FeatureCount() *core.Matrix[int] { return nb.featureCount.Clone() }

// FeatureLogProb returns a copy of the classes x features log2 conditional
// probabilities.
func (nb *MultinomialNB) FeatureLogProb() *core.Matrix[float64] { return nb.featureLogProb.Clone() }
