package iostreams

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// TablePrinter renders tabular data to IOStreams.Out.
// When the output is a TTY with colors enabled, it renders a bordered table
// with styled headers. When piped or in non-TTY mode, it uses plain tabwriter
// for machine-friendly output.
type TablePrinter struct {
	ios     *IOStreams
	headers []string
	rows    [][]string
}

// NewTablePrinter creates a new table printer with the given column headers.
// The table writes to ios.Out when Render() is called.
func (s *IOStreams) NewTablePrinter(headers ...string) *TablePrinter {
	return &TablePrinter{
		ios:     s,
		headers: headers,
	}
}

// AddRow adds a data row to the table. If fewer columns are provided than
// headers, missing columns are treated as empty strings.
func (tp *TablePrinter) AddRow(cols ...string) {
	tp.rows = append(tp.rows, tp.normalizeRow(cols))
}

// Len returns the number of data rows (not including headers).
func (tp *TablePrinter) Len() int {
	return len(tp.rows)
}

// Render writes the table to the IOStreams output.
func (tp *TablePrinter) Render() error {
	if len(tp.headers) == 0 {
		return nil
	}

	if tp.ios.IsOutputTTY() && tp.ios.ColorEnabled() {
		return tp.renderStyled()
	}
	return tp.renderPlain()
}

func (tp *TablePrinter) renderPlain() error {
	w := tabwriter.NewWriter(tp.ios.Out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, strings.Join(tp.headers, "\t"))
	for _, row := range tp.rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}

	return w.Flush()
}

func (tp *TablePrinter) renderStyled() error {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(ColorInfo).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(mutedStyle).
		Headers(tp.headers...).
		Rows(tp.rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	_, err := fmt.Fprintln(tp.ios.Out, t.Render())
	return err
}

// normalizeRow pads or truncates a row to match the number of headers.
func (tp *TablePrinter) normalizeRow(row []string) []string {
	cols := make([]string, len(tp.headers))
	copy(cols, row)
	return cols
}
