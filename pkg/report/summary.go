package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"gonum.org/v1/gonum/mat"

	"github.com/axelmagn/simple-nbclf/pkg/core"
	"github.com/axelmagn/simple-nbclf/pkg/stats"
)

// ClassSummary aggregates one class column of a posterior matrix.
type ClassSummary struct {
	Name string
	// Mean posterior over records with a finite value.
	Mean float64
	// Wins is how many records rank this class first.
	Wins int
	// Finite is how many records had a finite posterior for this class.
	Finite int
}

// Summarize aggregates P (records x classes) per class. Classes are named by
// index unless classNames has exactly one name per column.
func Summarize(P *core.Matrix[float64], classNames []string) []ClassSummary {
	if len(classNames) != P.C {
		classNames = DefaultClassNames(P.C)
	}
	out := make([]ClassSummary, P.C)
	for j := range out {
		out[j].Name = classNames[j]
	}
	if P.R == 0 || P.C == 0 {
		return out
	}

	dense := core.ToDense(P)
	col := make([]float64, P.R)
	for j := range out {
		mat.Col(col, j, dense)
		out[j].Mean, out[j].Finite = stats.MeanFinite(col)
	}
	for i := 0; i < P.R; i++ {
		if best := stats.ArgMax(dense.RawRowView(i)); best >= 0 {
			out[best].Wins++
		}
	}
	return out
}

// WriteSummary prints the summaries as an aligned table.
func WriteSummary(w io.Writer, summaries []ClassSummary) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Class", "Mean posterior", "Wins", "Finite"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, s := range summaries {
		table.Append([]string{
			s.Name,
			fmt.Sprintf("%.6f", s.Mean),
			strconv.Itoa(s.Wins),
			strconv.Itoa(s.Finite),
		})
	}
	table.Render()
}
