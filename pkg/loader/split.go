package loader

import (
	"math/rand"

	"github.com/pkg/errors"

	"github.com/axelmagn/simple-nbclf/pkg/core"
)

// ErrRecordMismatch is returned when paired matrices disagree on row count.
var ErrRecordMismatch = errors.New("loader: x and y have different row counts")

// Split holds paired feature and label matrices for training and testing.
type Split struct {
	XTrain, XTest *core.Matrix[int]
	YTrain, YTest *core.Matrix[int]
}

// TrainTestSplit splits X, Y into train and test sets by ratio. Rows are
// shuffled with rng, so a fixed seed gives a fixed split. The relative order of
// X and Y rows is preserved.
func TrainTestSplit(X, Y *core.Matrix[int], testRatio float64, rng *rand.Rand) (*Split, error) {
	if X.R != Y.R {
		return nil, errors.Wrapf(ErrRecordMismatch, "x has %d rows, y has %d", X.R, Y.R)
	}
	if testRatio < 0 || testRatio > 1 {
		return nil, errors.Errorf("loader: test ratio %v outside [0, 1]", testRatio)
	}
	n := X.R
	indices := rng.Perm(n)
	nTest := int(float64(n) * testRatio)

	testIdx, trainIdx := indices[:nTest], indices[nTest:]
	return &Split{
		XTrain: X.SelectRows(trainIdx),
		XTest:  X.SelectRows(testIdx),
		YTrain: Y.SelectRows(trainIdx),
		YTest:  Y.SelectRows(testIdx),
	}, nil
}

// ShuffleRows shuffles X and Y in unison.
func ShuffleRows(X, Y *core.Matrix[int], rng *rand.Rand) (*core.Matrix[int], *core.Matrix[int], error) {
	if X.R != Y.R {
		return nil, nil, errors.Wrapf(ErrRecordMismatch, "x has %d rows, y has %d", X.R, Y.R)
	}
	indices := rng.Perm(X.R)
	return X.SelectRows(indices), Y.SelectRows(indices), nil
}
