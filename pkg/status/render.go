package status

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
)

// Styler renders text in a named style
type Styler func(style, text string) string

// Render writes report as a table. style may be nil for plain output.
func Render(w io.Writer, report Report, style Styler) error {
	if style == nil {
		style = func(_, text string) string { return text }
	}

	data := pterm.TableData{{
		style("TableHeader", "Check"),
		style("TableHeader", "State"),
		style("TableHeader", "Detail"),
	}}
	for _, c := range report.Checks {
		state := style("Present", "✓ "+string(c.State))
		if c.State == StateMissing {
			state = style("Missing", "✗ "+string(c.State))
		}
		data = append(data, []string{c.Name, state, c.Detail})
	}

	table, err := pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle()).
		WithSeparatorStyle(pterm.NewStyle()).
		WithData(data).
		Srender()
	if err != nil {
		return fmt.Errorf("failed to render status table: %w", err)
	}

	_, err = fmt.Fprintln(w, table)
	return err
}
