package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/pterm/pterm"

	"github.com/katalvlaran/knapsack/bench"
)

func init() {
	pterm.DisableColor()
}

// printTable renders headers and rows as an aligned table on w.
func printTable(w io.Writer, headers []string, rows [][]string) error {
	data := make([][]string, 0, len(rows)+1)
	data = append(data, headers)
	data = append(data, rows...)

	output, err := pterm.DefaultTable.WithHasHeader().WithData(data).WithSeparator("  ").Srender()
	if err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}
	if _, err := fmt.Fprintf(w, "%s\n", output); err != nil {
		return fmt.Errorf("printing table: %w", err)
	}

	return nil
}

func measurementRows(ms []bench.Measurement, withInstance bool) [][]string {
	rows := make([][]string, 0, len(ms))
	for _, m := range ms {
		var row []string
		if withInstance {
			row = append(row, m.Instance, strconv.Itoa(m.Items), strconv.Itoa(m.Capacity))
		}
		row = append(row, m.Algorithm.String(), formatValue(m), formatElapsed(m), status(m))
		rows = append(rows, row)
	}

	return rows
}

func summaryRows(ss []bench.Summary) [][]string {
	rows := make([][]string, 0, len(ss))
	for _, s := range ss {
		rows = append(rows, []string{
			s.Algorithm.String(),
			strconv.Itoa(s.Runs),
			strconv.Itoa(s.Skipped),
			strconv.Itoa(s.Failed),
			s.Mean().Round(time.Microsecond).String(),
			s.Max.Round(time.Microsecond).String(),
		})
	}

	return rows
}

func formatValue(m bench.Measurement) string {
	if m.Skipped || m.Err != nil {
		return "-"
	}

	return strconv.FormatFloat(m.Value, 'f', -1, 64)
}

func formatElapsed(m bench.Measurement) string {
	if m.Skipped || m.Err != nil {
		return "-"
	}

	return m.Elapsed.Round(time.Microsecond).String()
}

func status(m bench.Measurement) string {
	switch {
	case m.Skipped:
		return "skipped"
	case m.Err != nil:
		return m.Err.Error()
	default:
		return "ok"
	}
}
