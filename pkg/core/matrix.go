package core

import (
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/mat"
)

// Number is the set of element types a Matrix can hold.
type Number interface {
	constraints.Integer | constraints.Float
}

// Matrix is a dense, owned, row-major table of R rows and C columns.
// len(Data) is always R*C.
type Matrix[T Number] struct {
	R, C int
	Data []T
}

// NewMatrix allocates a zero matrix.
func NewMatrix[T Number](r, c int) *Matrix[T] {
	if r < 0 || c < 0 {
		panic(fmt.Sprintf("core: negative dimensions %dx%d", r, c))
	}
	return &Matrix[T]{R: r, C: c, Data: make([]T, r*c)}
}

// FromSlice creates a Matrix from a nested slice (copies the values).
// It panics if the rows are not all the same length.
func FromSlice[T Number](a [][]T) *Matrix[T] {
	r := len(a)
	if r == 0 {
		return &Matrix[T]{}
	}

	c := len(a[0])
	m := NewMatrix[T](r, c)
	for i := 0; i < r; i++ {
		if len(a[i]) != c {
			panic(fmt.Sprintf("core: row %d has %d columns, want %d", i, len(a[i]), c))
		}
		copy(m.Data[i*c:(i+1)*c], a[i])
	}
	return m
}

// Dims returns the number of rows and columns.
func (m *Matrix[T]) Dims() (r, c int) { return m.R, m.C }

// At returns element (i, j)
func (m *Matrix[T]) At(i, j int) T { return m.Data[i*m.C+j] }

// Set sets element (i, j)
func (m *Matrix[T]) Set(i, j int, v T) { m.Data[i*m.C+j] = v }

// Row returns a copy of row i.
func (m *Matrix[T]) Row(i int) []T {
	row := make([]T, m.C)
	copy(row, m.Data[i*m.C:(i+1)*m.C])
	return row
}

// RawRow returns row i backed by the matrix storage.
func (m *Matrix[T]) RawRow(i int) []T { return m.Data[i*m.C : (i+1)*m.C] }

// Rows returns a nested copy of the matrix.
func (m *Matrix[T]) Rows() [][]T {
	out := make([][]T, m.R)
	for i := range out {
		out[i] = m.Row(i)
	}
	return out
}

// Clone deep copies the matrix.
func (m *Matrix[T]) Clone() *Matrix[T] {
	n := &Matrix[T]{R: m.R, C: m.C, Data: make([]T, len(m.Data))}
	copy(n.Data, m.Data)
	return n
}

func (m *Matrix[T]) Transpose() *Matrix[T] {
	t := NewMatrix[T](m.C, m.R)
	for i := 0; i < m.R; i++ {
		for j := 0; j < m.C; j++ {
			t.Data[j*t.C+i] = m.Data[i*m.C+j]
		}
	}
	return t
}

// SelectRows gathers the given rows, in order, into a new matrix.
func (m *Matrix[T]) SelectRows(idx []int) *Matrix[T] {
	out := NewMatrix[T](len(idx), m.C)
	for k, i := range idx {
		copy(out.Data[k*m.C:(k+1)*m.C], m.Data[i*m.C:(i+1)*m.C])
	}
	return out
}

// Equal reports whether m and n have the same shape and elements.
// NaN elements never compare equal.
func (m *Matrix[T]) Equal(n *Matrix[T]) bool {
	if m.R != n.R || m.C != n.C {
		return false
	}
	for i := range m.Data {
		if m.Data[i] != n.Data[i] {
			return false
		}
	}
	return true
}

// ToDense converts m to a gonum dense matrix of float64. An empty matrix
// converts to an empty *mat.Dense.
func ToDense[T Number](m *Matrix[T]) *mat.Dense {
	if m.R == 0 || m.C == 0 {
		return &mat.Dense{}
	}
	data := make([]float64, len(m.Data))
	for i, v := range m.Data {
		data[i] = float64(v)
	}
	return mat.NewDense(m.R, m.C, data)
}

// ParallelRows splits [0, n) into contiguous chunks and runs fn on each one
// from its own goroutine. workers <= 0 uses GOMAXPROCS. With a single worker
// fn runs on the calling goroutine.
func ParallelRows(n, workers int, fn func(start, end int)) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers == 1 || n <= 1 {
		fn(0, n)
		return
	}

	var wg sync.WaitGroup
	rowsPerWorker := (n + workers - 1) / workers
	for w := 0; w < workers; w++ {
		start := w * rowsPerWorker
		end := min(start+rowsPerWorker, n)
		if start >= end {
			continue
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}
