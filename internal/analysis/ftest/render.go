package ftest

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"nestedlm/domain/lm"
	"nestedlm/internal/algebra"
)

var tableHeaders = []string{"", "Res.DOF", "DOF", "ΔDOF", "SSR", "ΔSSR", "R²", "ΔR²", "F*", "p(>F)"}

// RenderTable formats a comparison result as an aligned text table: one
// header row and one data row per model. The first row leaves the five
// comparison cells blank since there is no predecessor. Column widths adapt
// to the longest cell; cells are right-aligned with one extra space between
// columns. Output is byte-identical for identical results.
func RenderTable(res *lm.FTestResult) string {
	n := res.NumModels()

	deltaDOF := algebra.SuccessiveIncreasingDiff(res.DOF)
	deltaSSR := algebra.SuccessiveDecreasingDiff(res.SSR)
	deltaR2 := algebra.SuccessiveDecreasingDiff(res.R2)

	rows := make([][]string, n)
	for i := 0; i < n; i++ {
		row := make([]string, len(tableHeaders))
		row[0] = fmt.Sprintf("[%d]", i+1)
		row[1] = strconv.Itoa(res.ResidualDOF[i])
		row[2] = strconv.Itoa(res.DOF[i])
		row[4] = fmt.Sprintf("%.4f", res.SSR[i])
		row[6] = fmt.Sprintf("%.4f", res.R2[i])
		if i > 0 {
			row[3] = strconv.Itoa(deltaDOF[i-1])
			row[5] = fmt.Sprintf("%.4f", deltaSSR[i-1])
			row[7] = fmt.Sprintf("%.4f", deltaR2[i-1])
			row[8] = fmt.Sprintf("%.4f", res.FStat[i-1])
			row[9] = formatPValue(res.PValue[i-1])
		}
		rows[i] = row
	}

	widths := make([]int, len(tableHeaders))
	for c, h := range tableHeaders {
		widths[c] = utf8.RuneCountInString(h)
	}
	for _, row := range rows {
		for c, cell := range row {
			if w := utf8.RuneCountInString(cell); w > widths[c] {
				widths[c] = w
			}
		}
	}

	var b strings.Builder
	writeRow(&b, tableHeaders, widths)
	for _, row := range rows {
		writeRow(&b, row, widths)
	}
	return b.String()
}

func writeRow(b *strings.Builder, cells []string, widths []int) {
	for c, cell := range cells {
		if c > 0 {
			b.WriteByte(' ')
		}
		pad := widths[c] - utf8.RuneCountInString(cell)
		b.WriteString(strings.Repeat(" ", pad))
		b.WriteString(cell)
	}
	b.WriteByte('\n')
}

// formatPValue follows the usual p-value display convention: four decimals
// down to 1e-4, then a "<1e-XX" upper bound.
func formatPValue(p float64) string {
	switch {
	case math.IsNaN(p):
		return "NaN"
	case p >= 1e-4:
		return fmt.Sprintf("%.4f", p)
	case p > 0:
		return fmt.Sprintf("<1e%03d", int(math.Ceil(math.Log10(p))))
	default:
		return "0.0000"
	}
}
