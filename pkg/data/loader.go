package data

import (
	"bufio"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/axelmagn/simple-nbclf/pkg/core"
)

// maxLineSize bounds a single row of text. Wide count matrices easily
// outgrow bufio's 64KiB default.
const maxLineSize = 64 << 20

// Parse reads a whitespace-delimited matrix from r. Every line is one row,
// a line without tokens is a row of zero cells, and an empty source gives a
// 0x0 matrix. The first row fixes the column count. Nothing is returned on
// failure.
func Parse[T core.Number](r io.Reader) (*core.Matrix[T], error) {
	var (
		data []T
		rows int
		cols int
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		cells := 0
		for _, tok := range strings.Fields(scanner.Text()) {
			v, err := parseCell[T](tok)
			if err != nil {
				return nil, &InvalidCellError{Token: tok, Row: rows, Col: cells, Err: err}
			}
			data = append(data, v)
			cells++
		}
		if rows == 0 {
			cols = cells
		} else if cells != cols {
			return nil, errors.Wrapf(ErrRaggedMatrix, "row %d has %d cells, want %d", rows, cells, cols)
		}
		rows++
	}
	if err := scanner.Err(); err != nil {
		return nil, &IOError{Err: err}
	}

	if data == nil {
		data = []T{}
	}
	return &core.Matrix[T]{R: rows, C: cols, Data: data}, nil
}

// Load opens path and parses it with Parse.
func Load[T core.Number](path string) (*core.Matrix[T], error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	defer file.Close()

	m, err := Parse[T](file)
	if err != nil {
		var ioErr *IOError
		if errors.As(err, &ioErr) {
			ioErr.Path = path
			return nil, ioErr
		}
		return nil, errors.Wrap(err, path)
	}
	logrus.WithFields(logrus.Fields{"path": path, "rows": m.R, "cols": m.C}).Trace("Loaded matrix")
	return m, nil
}

// parseCell converts a single token into the element type T.
func parseCell[T core.Number](tok string) (T, error) {
	var zero T
	t := reflect.TypeOf(zero)
	switch t.Kind() {
	case reflect.Float32, reflect.Float64:
		v, err := strconv.ParseFloat(tok, t.Bits())
		if err != nil {
			return zero, err
		}
		return T(v), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := strconv.ParseInt(tok, 10, t.Bits())
		if err != nil {
			return zero, err
		}
		return T(v), nil
	default:
		v, err := strconv.ParseUint(tok, 10, t.Bits())
		if err != nil {
			return zero, err
		}
		return T(v), nil
	}
}
