package data

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/axelmagn/simple-nbclf/pkg/core"
)

// Write serializes m as tab-separated rows, one per line, in a form Parse
// reads back unchanged. Floats use the shortest exact representation.
func Write[T core.Number](w io.Writer, m *core.Matrix[T]) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < m.R; i++ {
		for j, v := range m.RawRow(i) {
			if j > 0 {
				bw.WriteByte('\t')
			}
			fmt.Fprint(bw, v)
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return &IOError{Err: err}
	}
	return nil
}

// Save writes m to path with Write, creating or truncating the file.
func Save[T core.Number](path string, m *core.Matrix[T]) error {
	file, err := os.Create(path)
	if err != nil {
		return &IOError{Path: path, Err: err}
	}
	if err := Write(file, m); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return &IOError{Path: path, Err: err}
	}
	return nil
}

// WriteTSV prints m as rows of tab-separated decimals with a fixed number of
// fractional digits. Each row ends with a newline and carries no trailing
// separator. Non-finite values print as NaN, +Inf or -Inf.
func WriteTSV(w io.Writer, m *core.Matrix[float64], precision int) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 32)
	for i := 0; i < m.R; i++ {
		for j, v := range m.RawRow(i) {
			if j > 0 {
				bw.WriteByte('\t')
			}
			buf = strconv.AppendFloat(buf[:0], v, 'f', precision, 64)
			bw.Write(buf)
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return &IOError{Err: err}
	}
	return nil
}
