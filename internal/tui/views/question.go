// Package views provides TUI view components for the proposal assistant.
package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Harshal279/chatbot/internal/questions"
	"github.com/Harshal279/chatbot/internal/tui"
	"github.com/Harshal279/chatbot/internal/wizard"
)

// maxQuestionWidth is the maximum width for the question box.
const maxQuestionWidth = 90

// QuestionModel renders the current question and turns key presses into
// wizard actions. It never changes the session itself.
type QuestionModel struct {
	question questions.Question
	index    int
	total    int
	cursor   int
	pending  []string
	textarea textarea.Model
	hint     string
	width    int
}

// NewQuestionModel creates a QuestionModel for q, the index-th of total questions.
func NewQuestionModel(q questions.Question, index, total, width int) QuestionModel {
	ta := textarea.New()
	ta.Placeholder = "Your answer... (Enter to send)"
	ta.CharLimit = 5000
	ta.ShowLineNumbers = false
	ta.SetHeight(4)
	ta.SetWidth(boxWidth(width) - 6)

	// Enter sends; ctrl+j inserts a line break.
	keyMap := ta.KeyMap
	keyMap.InsertNewline = tui.DefaultKeyMap.NewLine
	ta.KeyMap = keyMap

	if q.Kind == questions.FreeText {
		ta.Focus()
	}

	return QuestionModel{
		question: q,
		index:    index,
		total:    total,
		textarea: ta,
		width:    width,
	}
}

// Init returns the initial command for the question view.
func (m QuestionModel) Init() tea.Cmd {
	if m.question.Kind == questions.FreeText {
		return textarea.Blink
	}
	return nil
}

// Question returns the question being asked.
func (m QuestionModel) Question() questions.Question { return m.question }

// Cursor returns the highlighted option index.
func (m QuestionModel) Cursor() int { return m.cursor }

// SetPending updates the options shown as checked.
func (m *QuestionModel) SetPending(p []string) { m.pending = p }

// SetHint shows a validation hint under the input.
func (m *QuestionModel) SetHint(h string) { m.hint = h }

// SetWidth resizes the view.
func (m *QuestionModel) SetWidth(w int) {
	m.width = w
	m.textarea.SetWidth(boxWidth(w) - 6)
}

func action(a wizard.Action) tea.Cmd {
	return func() tea.Msg { return tui.ActionMsg{Action: a} }
}

// Update handles messages for the question view.
func (m QuestionModel) Update(msg tea.Msg) (QuestionModel, tea.Cmd) {
	if m.question.Kind == questions.FreeText {
		return m.updateText(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	keys := tui.DefaultKeyMap
	opts := m.question.Options

	switch {
	case key.Matches(keyMsg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, keys.Down):
		if m.cursor < len(opts)-1 {
			m.cursor++
		}
	case m.question.Kind == questions.MultiSelect && key.Matches(keyMsg, keys.Toggle):
		m.hint = ""
		return m, action(wizard.ToggleAction{Option: opts[m.cursor]})
	case m.question.Kind == questions.MultiSelect && key.Matches(keyMsg, keys.Confirm):
		return m, action(wizard.ConfirmAction{})
	case key.Matches(keyMsg, keys.Submit):
		return m, action(wizard.SelectAction{Option: opts[m.cursor]})
	default:
		// Quick navigate by number (Enter or space still confirms).
		if n, ok := tui.OptionNumber(keyMsg.String()); ok && n < len(opts) {
			m.cursor = n
		}
	}
	return m, nil
}

func (m QuestionModel) updateText(msg tea.Msg) (QuestionModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, tui.DefaultKeyMap.Submit) {
		return m, action(wizard.SubmitAction{Text: m.textarea.Value()})
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	if _, ok := msg.(tea.KeyMsg); ok {
		m.hint = ""
	}
	return m, cmd
}

func (m QuestionModel) isPending(opt string) bool {
	for _, p := range m.pending {
		if p == opt {
			return true
		}
	}
	return false
}

// View renders the question view.
func (m QuestionModel) View() string {
	var b strings.Builder

	b.WriteString(tui.DimStyle.Render(fmt.Sprintf("Question %d of %d", m.index+1, m.total)))
	b.WriteString("\n\n")
	b.WriteString(tui.AssistantStyle.Render("Assistant: "))
	b.WriteString(tui.QuestionStyle.Render(m.question.Prompt))
	b.WriteString("\n\n")

	switch m.question.Kind {
	case questions.FreeText:
		b.WriteString(m.textarea.View())
		b.WriteString("\n")
	default:
		for i, opt := range m.question.Options {
			prefix := "  "
			if i == m.cursor {
				prefix = tui.Cursor + " "
			}
			marker := ""
			if m.question.Kind == questions.MultiSelect {
				marker = tui.Unchecked + " "
				if m.isPending(opt) {
					marker = tui.Checked + " "
				}
			}
			label := tui.NormalStyle.Render(opt)
			if i == m.cursor {
				label = tui.SelectedStyle.Render(opt)
			}
			fmt.Fprintf(&b, "%s%d. %s%s\n", prefix, i+1, marker, label)
		}
		if m.question.Kind == questions.MultiSelect && len(m.pending) > 0 {
			b.WriteString("\n")
			b.WriteString(tui.SuccessStyle.Render("Selected: " + strings.Join(m.pending, questions.ValueSeparator)))
			b.WriteString("\n")
		}
	}

	if m.hint != "" {
		b.WriteString("\n")
		b.WriteString(tui.WarningStyle.Render(m.hint))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(tui.DimStyle.Render(m.footer()))

	return tui.BoxStyle.Width(boxWidth(m.width)).Render(b.String())
}

func (m QuestionModel) footer() string {
	switch m.question.Kind {
	case questions.FreeText:
		return "Enter to send · ctrl+j new line · tab AI settings · ctrl+r start over"
	case questions.MultiSelect:
		return "Space to toggle · Enter when done · ↑↓ to navigate · ctrl+r start over"
	default:
		return "Enter to select · ↑↓ to navigate · tab AI settings · ctrl+r start over"
	}
}

func boxWidth(width int) int {
	w := maxQuestionWidth
	if width-4 < w {
		w = width - 4
	}
	if w < 30 {
		w = 30
	}
	return w
}
