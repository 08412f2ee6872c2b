package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axelmagn/simple-nbclf/pkg/core"
)

func TestAccuracy(t *testing.T) {
	acc, err := Accuracy([]int{0, 1, 2, 1}, []int{0, 1, 1, -1})
	require.NoError(t, err)
	assert.Equal(t, 0.5, acc)

	acc, err = Accuracy(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, acc)

	_, err = Accuracy([]int{1}, nil)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestLogLoss(t *testing.T) {
	Y := core.FromSlice([][]int{{1, 0}, {0, 1}})

	perfect := core.FromSlice([][]float64{{1, 0}, {0, 1}})
	loss, err := LogLoss(Y, perfect)
	require.NoError(t, err)
	assert.InDelta(t, 0, loss, 1e-12)

	half := core.FromSlice([][]float64{{0.5, 0.5}, {0.5, 0.5}})
	loss, err = LogLoss(Y, half)
	require.NoError(t, err)
	assert.InDelta(t, math.Ln2, loss, 1e-12)

	undefined := core.FromSlice([][]float64{{math.NaN(), math.NaN()}, {0, 1}})
	loss, err = LogLoss(Y, undefined)
	require.NoError(t, err)
	assert.InDelta(t, -math.Log(eps)/2, loss, 1e-9)

	_, err = LogLoss(Y, core.NewMatrix[float64](1, 2))
	assert.ErrorIs(t, err, ErrShapeMismatch)
}
