// Package display renders listings for the console.
package display

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// Table is a titled listing. Empty is printed instead of the grid when
// there are no rows.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Empty   string
}

func (t Table) IsEmpty() bool {
	return len(t.Rows) == 0
}

// Renderer writes tables and plain messages to an output stream.
type Renderer struct {
	w io.Writer
}

func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// Render prints the title followed by a bordered grid, one line per row.
func (r *Renderer) Render(t Table) error {
	if t.IsEmpty() {
		_, err := fmt.Fprintln(r.w, t.Empty)
		return err
	}

	if t.Title != "" {
		if _, err := fmt.Fprintf(r.w, "\n%s:\n", t.Title); err != nil {
			return err
		}
	}

	tw := tablewriter.NewWriter(r.w)
	tw.SetHeader(t.Headers)
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	tw.SetRowLine(true)
	tw.AppendBulk(t.Rows)
	tw.Render()
	return nil
}

// Println writes one line of text.
func (r *Renderer) Println(a ...any) {
	fmt.Fprintln(r.w, a...)
}

// Printf writes formatted text.
func (r *Renderer) Printf(format string, a ...any) {
	fmt.Fprintf(r.w, format, a...)
}
