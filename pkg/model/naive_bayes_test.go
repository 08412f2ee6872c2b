package model

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axelmagn/simple-nbclf/pkg/core"
)

func twoClassData() (X, Y *core.Matrix[int]) {
	X = core.FromSlice([][]int{{2, 0}, {0, 3}})
	Y = core.FromSlice([][]int{{1, 0}, {0, 1}})
	return X, Y
}

func TestFitCounts(t *testing.T) {
	X, Y := twoClassData()
	nb, err := FitMultinomialNB(X, Y)
	require.NoError(t, err)

	assert.Equal(t, []int{2, 3}, nb.ClassCount())
	assert.True(t, nb.FeatureCount().Equal(core.FromSlice([][]int{{2, 0}, {0, 3}})))
	assert.Equal(t, 2, nb.NumClasses())
	assert.Equal(t, 2, nb.NumFeatures())
	assert.Equal(t, DefaultAlpha, nb.Alpha())

	prior := nb.ClassLogPrior()
	assert.InDelta(t, math.Log2(2.0/5), prior[0], 1e-12)
	assert.InDelta(t, math.Log2(3.0/5), prior[1], 1e-12)

	// seen features have probability one within their class; unseen ones
	// are tiny but finite
	flp := nb.FeatureLogProb()
	assert.Equal(t, 0.0, flp.At(0, 0))
	assert.Equal(t, 0.0, flp.At(1, 1))
	assert.Less(t, flp.At(0, 1), -160.0)
	assert.False(t, math.IsInf(flp.At(0, 1), -1))
}

func TestFitLaplace(t *testing.T) {
	X, Y := twoClassData()
	nb, err := FitMultinomialNB(X, Y, WithAlpha(1))
	require.NoError(t, err)

	prior := nb.ClassLogPrior()
	assert.InDelta(t, math.Log2(3)-math.Log2(5), prior[0], 1e-12)
	assert.InDelta(t, math.Log2(4)-math.Log2(5), prior[1], 1e-12)

	flp := nb.FeatureLogProb()
	assert.InDelta(t, 0, flp.At(0, 0), 1e-12)
	assert.InDelta(t, -math.Log2(3), flp.At(0, 1), 1e-12)
	assert.InDelta(t, -2, flp.At(1, 0), 1e-12)
	assert.InDelta(t, 0, flp.At(1, 1), 1e-12)
}

func TestFitUnsmoothedGivesNegativeInfinity(t *testing.T) {
	X, Y := twoClassData()
	nb, err := FitMultinomialNB(X, Y, WithAlpha(0))
	require.NoError(t, err)

	flp := nb.FeatureLogProb()
	assert.True(t, math.IsInf(flp.At(0, 1), -1))
	assert.True(t, math.IsInf(flp.At(1, 0), -1))
}

func TestFitMultiLabelRecordCountsTwice(t *testing.T) {
	X := core.FromSlice([][]int{{1, 2}})
	Y := core.FromSlice([][]int{{1, 1}})
	nb, err := FitMultinomialNB(X, Y)
	require.NoError(t, err)

	assert.Equal(t, []int{3, 3}, nb.ClassCount())
	assert.True(t, nb.FeatureCount().Equal(core.FromSlice([][]int{{1, 2}, {1, 2}})))
	// both classes hold half of the doubled observation mass
	assert.InDelta(t, -1, nb.ClassLogPrior()[0], 1e-12)
}

func TestFitMismatchedRecordCount(t *testing.T) {
	X := core.FromSlice([][]int{{1}, {2}, {3}})
	Y := core.FromSlice([][]int{{1, 0}, {0, 1}})
	nb, err := FitMultinomialNB(X, Y)
	assert.ErrorIs(t, err, ErrMismatchedRecordCount)
	assert.Nil(t, nb)
}

func TestFitNonBinaryLabel(t *testing.T) {
	for _, v := range []int{2, -1, 7} {
		X := core.FromSlice([][]int{{1, 1}, {2, 2}})
		Y := core.FromSlice([][]int{{1, 0}, {0, v}})
		nb, err := FitMultinomialNB(X, Y)
		assert.ErrorIs(t, err, ErrNonBinaryLabel, "label %d", v)
		assert.Nil(t, nb)
	}
}

func TestPredictConcreteScenario(t *testing.T) {
	X, Y := twoClassData()
	nb, err := FitMultinomialNB(X, Y)
	require.NoError(t, err)

	p, err := nb.Predict(core.FromSlice([][]int{{1, 0}}))
	require.NoError(t, err)
	require.Equal(t, 1, p.R)
	require.Equal(t, 2, p.C)
	assert.InDelta(t, 1, p.At(0, 0), 1e-12)
	assert.InDelta(t, 0, p.At(0, 1), 1e-12)

	classes, err := nb.PredictClass(core.FromSlice([][]int{{1, 0}, {0, 4}}))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, classes)
}

func TestPredictLogScoresWeighted(t *testing.T) {
	X, Y := twoClassData()
	nb, err := FitMultinomialNB(X, Y, WithAlpha(1))
	require.NoError(t, err)

	scores, err := nb.PredictLogScores(core.FromSlice([][]int{{0, 3}}))
	require.NoError(t, err)
	prior := nb.ClassLogPrior()
	assert.InDelta(t, prior[0]+3*-math.Log2(3), scores.At(0, 0), 1e-12)
	assert.InDelta(t, prior[1], scores.At(0, 1), 1e-12)
}

func TestPredictMismatchedFeatureCount(t *testing.T) {
	X, Y := twoClassData()
	nb, err := FitMultinomialNB(X, Y)
	require.NoError(t, err)

	_, err = nb.Predict(core.FromSlice([][]int{{1, 0, 0}}))
	assert.ErrorIs(t, err, ErrMismatchedFeatureCount)
	_, err = nb.PredictLogScores(core.FromSlice([][]int{{1}}))
	assert.ErrorIs(t, err, ErrMismatchedFeatureCount)
	_, err = nb.PredictClass(core.NewMatrix[int](0, 0))
	assert.ErrorIs(t, err, ErrMismatchedFeatureCount)
}

func randomCounts(rng *rand.Rand, r, c, max int) *core.Matrix[int] {
	m := core.NewMatrix[int](r, c)
	for i := range m.Data {
		m.Data[i] = rng.Intn(max + 1)
	}
	return m
}

func randomOneHot(rng *rand.Rand, r, c int) *core.Matrix[int] {
	m := core.NewMatrix[int](r, c)
	for i := 0; i < r; i++ {
		m.Set(i, rng.Intn(c), 1)
	}
	return m
}

func TestPredictRowsSumToOne(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 30; trial++ {
		nRecords, nFeats, nClasses := 5+rng.Intn(20), 1+rng.Intn(8), 2+rng.Intn(4)
		X := randomCounts(rng, nRecords, nFeats, 6)
		Y := randomOneHot(rng, nRecords, nClasses)
		nb, err := FitMultinomialNB(X, Y, WithAlpha(1))
		require.NoError(t, err)

		p, err := nb.Predict(randomCounts(rng, 10, nFeats, 5))
		require.NoError(t, err)
		for i := 0; i < p.R; i++ {
			sum := 0.0
			for _, v := range p.RawRow(i) {
				assert.GreaterOrEqual(t, v, 0.0)
				sum += v
			}
			assert.InDelta(t, 1.0, sum, 1e-9, "trial %d row %d", trial, i)
		}
	}
}

func TestPredictDeterministicAcrossWorkers(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	X := randomCounts(rng, 200, 10, 9)
	Y := randomOneHot(rng, 200, 4)
	Z := randomCounts(rng, 333, 10, 4)

	serial, err := FitMultinomialNB(X, Y, WithAlpha(0.5))
	require.NoError(t, err)
	parallel, err := FitMultinomialNB(X, Y, WithAlpha(0.5), WithWorkers(4))
	require.NoError(t, err)

	first, err := serial.Predict(Z)
	require.NoError(t, err)
	again, err := serial.Predict(Z)
	require.NoError(t, err)
	fanned, err := parallel.Predict(Z)
	require.NoError(t, err)

	assert.Equal(t, first.Data, again.Data)
	assert.Equal(t, first.Data, fanned.Data)
}

func TestPredictDegenerateRowsAreNaN(t *testing.T) {
	X, Y := twoClassData()

	// -Inf log probabilities times zero counts poison the score
	unsmoothed, err := FitMultinomialNB(X, Y, WithAlpha(0))
	require.NoError(t, err)
	p, err := unsmoothed.Predict(core.FromSlice([][]int{{1, 0}}))
	require.NoError(t, err)
	assert.True(t, math.IsNaN(p.At(0, 0)))
	assert.True(t, math.IsNaN(p.At(0, 1)))
	classes, err := unsmoothed.PredictClass(core.FromSlice([][]int{{1, 0}}))
	require.NoError(t, err)
	assert.Equal(t, []int{-1}, classes)

	// every class score underflows to zero, leaving 0/0
	laplace, err := FitMultinomialNB(X, Y, WithAlpha(1))
	require.NoError(t, err)
	p, err = laplace.Predict(core.FromSlice([][]int{{2000, 2000}}))
	require.NoError(t, err)
	assert.True(t, math.IsNaN(p.At(0, 0)))
	assert.True(t, math.IsNaN(p.At(0, 1)))

	// the log scores themselves stay finite
	scores, err := laplace.PredictLogScores(core.FromSlice([][]int{{2000, 2000}}))
	require.NoError(t, err)
	assert.False(t, math.IsInf(scores.At(0, 0), 0))
	assert.Greater(t, scores.At(0, 0), scores.At(0, 1))
}

func TestAccessorsReturnCopies(t *testing.T) {
	X, Y := twoClassData()
	nb, err := FitMultinomialNB(X, Y)
	require.NoError(t, err)

	nb.ClassCount()[0] = 99
	nb.ClassLogPrior()[0] = 99
	nb.FeatureCount().Set(0, 0, 99)
	nb.FeatureLogProb().Set(0, 0, 99)

	assert.Equal(t, []int{2, 3}, nb.ClassCount())
	assert.NotEqual(t, 99.0, nb.ClassLogPrior()[0])
	assert.Equal(t, 2, nb.FeatureCount().At(0, 0))
	assert.Equal(t, 0.0, nb.FeatureLogProb().At(0, 0))
}
