package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Harshal279/chatbot/internal/tui"
	"github.com/Harshal279/chatbot/internal/wizard"
)

// TranscriptModel shows the conversation so far in a scrollable viewport.
type TranscriptModel struct {
	viewport viewport.Model
	entries  []wizard.Entry
}

// NewTranscriptModel creates a transcript of the given size.
func NewTranscriptModel(width, height int) TranscriptModel {
	vp := viewport.New(max(width, 20), max(height, 3))
	// The question view owns the arrow keys; only paging scrolls.
	vp.KeyMap.Up.SetEnabled(false)
	vp.KeyMap.Down.SetEnabled(false)
	return TranscriptModel{viewport: vp}
}

// SetEntries replaces the transcript content and scrolls to the newest entry.
func (m *TranscriptModel) SetEntries(entries []wizard.Entry) {
	m.entries = entries
	m.viewport.SetContent(FormatEntries(entries, m.viewport.Width))
	m.viewport.GotoBottom()
}

// SetSize resizes the viewport.
func (m *TranscriptModel) SetSize(width, height int) {
	m.viewport.Width = max(width, 20)
	m.viewport.Height = max(height, 3)
	m.SetEntries(m.entries)
}

// Update forwards paging keys and mouse wheel events to the viewport.
func (m TranscriptModel) Update(msg tea.Msg) (TranscriptModel, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the transcript.
func (m TranscriptModel) View() string {
	if len(m.entries) == 0 {
		return tui.DimStyle.Render("Your answers will appear here.")
	}
	return m.viewport.View()
}

// FormatEntries renders transcript entries wrapped to width.
func FormatEntries(entries []wizard.Entry, width int) string {
	wrap := lipgloss.NewStyle().Width(max(width, 20))
	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteString("\n")
		}
		speaker := tui.UserStyle.Render("You: ")
		if e.Role == wizard.RoleAssistant {
			speaker = tui.AssistantStyle.Render("Assistant: ")
		}
		b.WriteString(wrap.Render(speaker + e.Text))
		b.WriteString("\n")
	}
	return b.String()
}
