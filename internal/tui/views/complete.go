package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/dustin/go-humanize"

	"github.com/Harshal279/chatbot/internal/export"
	"github.com/Harshal279/chatbot/internal/summary"
	"github.com/Harshal279/chatbot/internal/tui"
)

// CompleteModel previews the finished proposal and reports the export.
type CompleteModel struct {
	doc      summary.Document
	target   string
	viewport viewport.Model
	written  *export.Written
	err      error
	saving   bool
	width    int
}

// NewCompleteModel renders doc as Markdown inside a scrollable viewport.
// target is the file name the export will be written to.
func NewCompleteModel(doc summary.Document, target string, width, height int) CompleteModel {
	w := boxWidth(width)
	vp := viewport.New(w-6, max(height-12, 5))
	vp.SetContent(RenderPreview(doc, w-6))
	return CompleteModel{doc: doc, target: target, viewport: vp, width: width}
}

// RenderPreview formats doc for the terminal. If glamour fails the plain
// Markdown is returned.
func RenderPreview(doc summary.Document, width int) string {
	md, err := export.Render(doc, &export.MarkdownExporter{})
	if err != nil {
		return strings.Join(doc.Lines(), "\n")
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return string(md)
	}
	out, err := r.Render(string(md))
	if err != nil {
		return string(md)
	}
	return out
}

// Init returns the initial command for the complete view.
func (m CompleteModel) Init() tea.Cmd { return nil }

// Document returns the previewed document.
func (m CompleteModel) Document() summary.Document { return m.doc }

// SetSaving marks an export in flight.
func (m *CompleteModel) SetSaving() {
	m.saving = true
	m.err = nil
}

// SetResult records the outcome of an export.
func (m *CompleteModel) SetResult(w export.Written, err error) {
	m.saving = false
	if err != nil {
		m.err = err
		return
	}
	m.written = &w
	m.err = nil
}

// Update handles messages for the complete view.
func (m CompleteModel) Update(msg tea.Msg) (CompleteModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, tui.DefaultKeyMap.Export) {
		if m.saving {
			return m, nil
		}
		return m, func() tea.Msg { return tui.ExportRequestMsg{} }
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the complete view.
func (m CompleteModel) View() string {
	var b strings.Builder
	b.WriteString(tui.SuccessStyle.Bold(true).Render("🎉 Complete!"))
	b.WriteString(" All information gathered.\n\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n\n")

	switch {
	case m.saving:
		b.WriteString(tui.DimStyle.Render("Saving..."))
	case m.err != nil:
		b.WriteString(tui.ErrorStyle.Render("Could not save summary: " + m.err.Error()))
	case m.written != nil:
		b.WriteString(tui.SuccessStyle.Render(fmt.Sprintf("📥 Saved %s (%s)", m.written.Path, humanize.Bytes(uint64(m.written.Size)))))
	default:
		b.WriteString(tui.DimStyle.Render("Press Enter to save " + m.target))
	}
	b.WriteString("\n\n")
	b.WriteString(tui.DimStyle.Render("Enter save · ↑↓ scroll · ctrl+r start over · ctrl+c exit"))

	return tui.BoxStyle.Width(boxWidth(m.width)).Render(b.String())
}
