package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/geopar/deduce"
	"github.com/katalvlaran/geopar/figure"
	"github.com/katalvlaran/geopar/solve"
	"github.com/katalvlaran/geopar/validate"
)

var (
	colorAccent  = lipgloss.Color("#20B9B4")
	colorBorder  = lipgloss.Color("#16858E")
	colorSuccess = lipgloss.Color("#2CD7C7")
	colorWarning = lipgloss.Color("#F4D03F")
	colorError   = lipgloss.Color("#E74C3C")
	colorMuted   = lipgloss.Color("#2C4A54")
)

var styles = struct {
	Title   lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Box     lipgloss.Style
}{
	Title:   lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
	Muted:   lipgloss.NewStyle().Foreground(colorMuted),
	Success: lipgloss.NewStyle().Bold(true).Foreground(colorSuccess),
	Warning: lipgloss.NewStyle().Bold(true).Foreground(colorWarning),
	Error:   lipgloss.NewStyle().Foreground(colorError),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1),
}

// renderFigure draws the triangles of m in a titled box.
func renderFigure(title string, m *figure.Mesh) string {
	body := strings.TrimRight(m.String(), "\n")
	if body == "" {
		body = styles.Muted.Render("(no triangles)")
	}

	return styles.Box.Render(styles.Title.Render(title) + "\n" + body)
}

// verdict returns the classic verdict line for rep.
func verdict(rep *solve.Report) string {
	switch {
	case rep.Outcome == solve.OutcomeUnique:
		return "1B. UNIQUE ALL-ANGLE CONSEQUENCE OF THE PREMISES."
	case rep.Outcome == solve.OutcomeConsequence:
		return "2. A CONSEQUENCE OF THE PREMISES."
	case rep.Reason == solve.ReasonDeclined:
		return "1A. INCONCLUSIVE"
	default:
		return fmt.Sprintf("%s: %s", rep.Label(), rep.Reason)
	}
}

func renderVerdict(rep *solve.Report) string {
	if rep.Outcome == solve.OutcomeInconclusive {
		return styles.Warning.Render(verdict(rep))
	}

	return styles.Success.Render(verdict(rep))
}

// renderStats summarises the deductions of both engine runs.
func renderStats(rep *solve.Report) string {
	applied := map[deduce.Rule]int{}
	passes := 0
	for _, r := range []*deduce.Result{rep.Rules, rep.Pairing} {
		if r == nil {
			continue
		}
		passes += r.Passes
		for rule, n := range r.Applied {
			applied[rule] += n
		}
	}

	return styles.Muted.Render(fmt.Sprintf(
		"deduced %d angles in %d passes (180: %d, 360: %d, pairing: %d), %d unknown left",
		rep.Deduced(), passes,
		applied[deduce.RuleTriangleSum], applied[deduce.RuleVertexSum], applied[deduce.RulePairing],
		rep.Remaining))
}

// renderCheck lists the three rules with a mark each.
func renderCheck(r validate.Report) string {
	mark := func(name string, ok bool) string {
		if ok {
			return styles.Success.Render("✓") + " " + name
		}
		return styles.Error.Render("✗") + " " + name
	}

	return strings.Join([]string{
		mark("180° rule", r.TriangleSum),
		mark("360° rule", r.VertexSum),
		mark("pairing rule", r.Pairing),
	}, "\n")
}
