// Package output renders statement results for the terminal.
package output

import (
	"fmt"
	"io"

	"colDB/internal/config"
	"colDB/internal/engine"
	"colDB/internal/storage"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Supported lists the statements shown in the banner.
const Supported = "CREATE TABLE, INSERT INTO, SELECT * FROM, SAVE, LOAD"

// Renderer writes results to out and errors to errOut.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   string
	styles *Styles
	errSty *Styles
}

// NewRenderer creates a renderer. mode is config.OutputPlain or
// config.OutputTable.
func NewRenderer(out, errOut io.Writer, mode string) *Renderer {
	return &Renderer{
		out:    out,
		errOut: errOut,
		mode:   mode,
		styles: NewStyles(out),
		errSty: NewStyles(errOut),
	}
}

// Banner prints the start-up banner.
func (r *Renderer) Banner() {
	_, _ = fmt.Fprintln(r.out, r.styles.Title.Render("Simple SQL-like Database"))
	_, _ = fmt.Fprintln(r.out, r.styles.Muted.Render("Supported commands: "+Supported))
}

// Result prints a statement result. EXIT results print nothing.
func (r *Renderer) Result(res *engine.Result) {
	switch {
	case res == nil || res.Exit:
		return
	case res.HasRows() && res.Text != "" && r.mode != config.OutputTable:
		_, _ = io.WriteString(r.out, res.Text)
	case res.HasRows():
		r.Rows(res.Columns, res.Rows)
	default:
		_, _ = fmt.Fprintln(r.out, r.styles.Success.Render(res.Message))
	}
}

// Rows prints a header and rows in the configured mode.
func (r *Renderer) Rows(cols []string, rows [][]string) {
	if r.mode == config.OutputTable {
		r.renderTable(cols, rows)
		return
	}
	_, _ = io.WriteString(r.out, storage.RenderTSV(cols, rows))
}

func (r *Renderer) renderTable(cols []string, rows [][]string) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)

	header := make(table.Row, len(cols))
	for i, c := range cols {
		header[i] = c
	}
	t.AppendHeader(header)

	for _, row := range rows {
		tr := make(table.Row, len(row))
		for i, v := range row {
			tr[i] = v
		}
		t.AppendRow(tr)
	}

	t.Render()
	_, _ = fmt.Fprintf(r.out, "(%d rows)\n", len(rows))
}

// Error prints err as "Error: <message>".
func (r *Renderer) Error(err error) {
	_, _ = fmt.Fprintln(r.errOut, r.errSty.Error.Render("Error: "+err.Error()))
}

// Title prints a heading line, used by inspect.
func (r *Renderer) Title(s string) {
	_, _ = fmt.Fprintln(r.out, r.styles.Header.Render(s))
}
