package render

import (
	"github.com/jedib0t/go-pretty/v6/table"
)

// newTable returns a borderless light table
func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Options.SeparateRows = false
	return t
}
