package ui

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
)

// PrintTable renders rows as a boxed table whose first row is the header.
// Rendering errors are reported and nothing is written.
func PrintTable(rows [][]string, w io.Writer) {
	table := pterm.DefaultTable
	table.Boxed = true

	str, err := table.WithHasHeader().WithData(rows).Srender()
	if err != nil {
		pterm.Error.Printfln("unable to render table: %s", err.Error())
		return
	}

	fmt.Fprintln(w, str)
}
