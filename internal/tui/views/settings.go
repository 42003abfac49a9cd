package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Harshal279/chatbot/internal/credential"
	"github.com/Harshal279/chatbot/internal/tui"
)

// SettingsModel edits the AI summary toggle and the API key.
type SettingsModel struct {
	enabled bool
	input   textinput.Model
	onInput bool
	loaded  string // masked key the panel was opened with
	err     string
	width   int
}

// NewSettingsModel opens the settings panel with the session's current values.
func NewSettingsModel(enabled bool, secret string, width int) SettingsModel {
	ti := textinput.New()
	ti.Placeholder = "gsk_... (free at console.groq.com)"
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'
	ti.CharLimit = 200
	ti.Width = boxWidth(width) - 12
	ti.SetValue(secret)

	return SettingsModel{enabled: enabled, input: ti, loaded: credential.Mask(secret), width: width}
}

// Init returns the initial command for the settings view.
func (m SettingsModel) Init() tea.Cmd { return nil }

// Enabled reports the toggle state shown in the panel.
func (m SettingsModel) Enabled() bool { return m.enabled }

// Update handles messages for the settings view.
func (m SettingsModel) Update(msg tea.Msg) (SettingsModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.onInput {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	keys := tui.DefaultKeyMap
	switch {
	case key.Matches(keyMsg, keys.Escape):
		return m, func() tea.Msg { return tui.SettingsCancelledMsg{} }
	case key.Matches(keyMsg, keys.Submit):
		secret := strings.TrimSpace(m.input.Value())
		if m.enabled && secret == "" {
			m.err = "Enter a Groq API key to enable summaries."
			return m, nil
		}
		enabled := m.enabled
		return m, func() tea.Msg { return tui.SettingsSavedMsg{AIEnabled: enabled, Credential: secret} }
	case key.Matches(keyMsg, keys.Settings), keyMsg.String() == tui.KeyUp, keyMsg.String() == tui.KeyDown:
		return m.switchFocus()
	case !m.onInput && key.Matches(keyMsg, keys.Toggle):
		m.enabled = !m.enabled
		m.err = ""
		if m.enabled && strings.TrimSpace(m.input.Value()) == "" {
			return m.switchFocus()
		}
		return m, nil
	}

	if m.onInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.err = ""
		return m, cmd
	}
	return m, nil
}

func (m SettingsModel) switchFocus() (SettingsModel, tea.Cmd) {
	m.onInput = !m.onInput
	if m.onInput {
		cmd := m.input.Focus()
		return m, cmd
	}
	m.input.Blur()
	return m, nil
}

// View renders the settings view.
func (m SettingsModel) View() string {
	var b strings.Builder
	b.WriteString(tui.TitleStyle.Render("⚙️  AI Settings"))
	b.WriteString("\n\n")

	box := "[ ]"
	if m.enabled {
		box = "[" + tui.Checked + "]"
	}
	line := box + " Enable AI Summaries"
	if !m.onInput {
		line = tui.Cursor + " " + tui.SelectedStyle.Render(line)
	} else {
		line = "  " + line
	}
	b.WriteString(line)
	b.WriteString("\n\n")

	label := "  Groq API Key"
	if m.onInput {
		label = tui.Cursor + " " + tui.SelectedStyle.Render("Groq API Key")
	}
	b.WriteString(label)
	b.WriteString("\n  ")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.loaded != "" {
		b.WriteString(tui.DimStyle.Render("  Loaded key: " + m.loaded))
		b.WriteString("\n")
	}

	if m.err != "" {
		b.WriteString("\n")
		b.WriteString(tui.ErrorStyle.Render(m.err))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(tui.DimStyle.Render("Space to toggle · tab to switch field · Enter to save · Esc to cancel"))
	return tui.BoxStyle.Width(boxWidth(m.width)).Render(b.String())
}
