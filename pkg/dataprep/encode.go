package dataprep

import (
	"fmt"

	"github.com/axelmagn/simple-nbclf/pkg/core"
)

// LabelEncode encodes categories as integers in order of first appearance.
func LabelEncode(data []string) ([]int, []string) {
	unique := map[string]int{}
	var names []string
	out := make([]int, len(data))
	for i, v := range data {
		if _, ok := unique[v]; !ok {
			unique[v] = len(unique)
			names = append(names, v)
		}
		out[i] = unique[v]
	}
	return out, names
}

// OneHot builds a len(labels) x nClasses indicator matrix. It panics if a
// label falls outside [0, nClasses).
func OneHot(labels []int, nClasses int) *core.Matrix[int] {
	m := core.NewMatrix[int](len(labels), nClasses)
	for i, l := range labels {
		if l < 0 || l >= nClasses {
			panic(fmt.Sprintf("dataprep: label %d out of range [0, %d)", l, nClasses))
		}
		m.Set(i, l, 1)
	}
	return m
}

// FromOneHot returns the first set column of every row, or -1 for a row with
// no class set.
func FromOneHot(Y *core.Matrix[int]) []int {
	out := make([]int, Y.R)
	for i := range out {
		out[i] = -1
		for j, v := range Y.RawRow(i) {
			if v == 1 {
				out[i] = j
				break
			}
		}
	}
	return out
}
