package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Harshal279/chatbot/internal/summary"
	"github.com/Harshal279/chatbot/internal/tui"
)

// RenderSummary draws the side panel: every answered phase, with the
// current phase expanded and the others collapsed to a count.
func RenderSummary(groups []summary.PhaseGroup, currentPhase, width int) string {
	inner := max(width-4, 16)
	wrap := lipgloss.NewStyle().Width(inner)

	var b strings.Builder
	b.WriteString(tui.TitleStyle.Render("📋 Summary"))
	b.WriteString("\n\n")

	if len(groups) == 0 {
		b.WriteString(tui.DimStyle.Render("Answers will appear here."))
		return tui.PanelStyle.Width(width - 2).Render(b.String())
	}

	for _, g := range groups {
		if g.Phase != currentPhase {
			b.WriteString(tui.NormalStyle.Render(fmt.Sprintf("▸ Phase %d: %s (%d)", g.Phase, g.Name, len(g.Items))))
			b.WriteString("\n")
			continue
		}
		b.WriteString(tui.SelectedStyle.Render(fmt.Sprintf("▾ Phase %d: %s", g.Phase, g.Name)))
		b.WriteString("\n")
		for _, it := range g.Items {
			b.WriteString(wrap.Render("  " + lipgloss.NewStyle().Bold(true).Render(it.Label+":") + " " + it.Value.String()))
			b.WriteString("\n")
		}
	}
	return tui.PanelStyle.Width(width - 2).Render(strings.TrimRight(b.String(), "\n"))
}
