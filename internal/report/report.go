// Package report prints the textual equilibrium analysis: a summary
// table of positions, energies, and stability labels, plus the physical
// interpretation prose.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"equilib/internal/analysis"
	"equilib/internal/potential"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	ruleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	stableStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	unstableStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	neutralStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245"))
)

func styleFor(s analysis.Stability) lipgloss.Style {
	switch s {
	case analysis.Stable:
		return stableStyle
	case analysis.Unstable:
		return unstableStyle
	default:
		return neutralStyle
	}
}

// Write prints the full analysis report for a field and its equilibria.
func Write(w io.Writer, field potential.Field, points []analysis.Point) error {
	rule := ruleStyle.Render(strings.Repeat("─", 70))

	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, titleStyle.Render("EQUILIBRIUM ANALYSIS"))
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "potential: %s\n", field.Name())
	if tunable, ok := field.(potential.Configurable); ok {
		fmt.Fprintf(w, "params:    %s\n", formatParams(tunable.GetParams()))
	}
	fmt.Fprintln(w)

	if len(points) == 0 {
		fmt.Fprintln(w, "no equilibrium points found")
		fmt.Fprintln(w, rule)
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "POSITION\tU(x)\tSTABILITY\td²U/dx²")
	for _, p := range points {
		fmt.Fprintf(tw, "%.4f\t%.4f\t%s\t%.4f\n",
			p.Position, p.Energy,
			styleFor(p.Stability).Render(strings.ToUpper(string(p.Stability))),
			p.Curvature)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	writeInterpretation(w, points)
	fmt.Fprintln(w, rule)
	return nil
}

func formatParams(params map[string]float64) string {
	// Deterministic order keeps the report diffable.
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%g", k, params[k]))
	}
	return strings.Join(parts, " ")
}

func writeInterpretation(w io.Writer, points []analysis.Point) {
	var hasStable, hasUnstable bool
	for _, p := range points {
		switch p.Stability {
		case analysis.Stable:
			hasStable = true
		case analysis.Unstable:
			hasUnstable = true
		}
	}

	fmt.Fprintln(w, "physical interpretation:")
	if hasStable {
		fmt.Fprintln(w, "  • STABLE (d²U/dx² > 0): local minimum of U; small displacements")
		fmt.Fprintln(w, "    produce restoring forces, like a ball in a valley")
	}
	if hasUnstable {
		fmt.Fprintln(w, "  • UNSTABLE (d²U/dx² < 0): local maximum of U; small displacements")
		fmt.Fprintln(w, "    push the system away, like a ball on a hilltop")
	}
}
