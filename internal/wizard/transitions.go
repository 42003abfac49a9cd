package wizard

import (
	"strings"

	"github.com/Harshal279/chatbot/internal/ai"
	"github.com/Harshal279/chatbot/internal/questions"
)

// Outcome describes the effect of an accepted transition.
type Outcome struct {
	// Committed is true when an answer was stored and the position advanced.
	Committed bool
	// Question is the question the action applied to.
	Question questions.Question
	// Summary is set when the committed question asks for a phase summary
	// and AI summaries are enabled.
	Summary *ai.Request
}

// SubmitText commits a free-text answer. Whitespace-only input is rejected.
// The raw text, not the trimmed one, is stored.
func (s *Session) SubmitText(text string) (Outcome, error) {
	q, err := s.expect(questions.FreeText)
	if err != nil {
		return Outcome{}, err
	}
	if strings.TrimSpace(text) == "" {
		return Outcome{}, reject(q.Key, ErrEmptyAnswer)
	}
	return s.commit(q, questions.Text(text), text), nil
}

// Select commits one option of a single-select question.
func (s *Session) Select(option string) (Outcome, error) {
	q, err := s.expect(questions.SingleSelect)
	if err != nil {
		return Outcome{}, err
	}
	if !q.HasOption(option) {
		return Outcome{}, reject(q.Key, ErrUnknownOption)
	}
	return s.commit(q, questions.Text(option), option), nil
}

// Toggle adds option to the pending multi-select choices, or removes it if
// already present. It never advances the position.
func (s *Session) Toggle(option string) (Outcome, error) {
	q, err := s.expect(questions.MultiSelect)
	if err != nil {
		return Outcome{}, err
	}
	if !q.HasOption(option) {
		return Outcome{}, reject(q.Key, ErrUnknownOption)
	}

	if i := indexOf(s.pending, option); i >= 0 {
		s.pending = append(s.pending[:i:i], s.pending[i+1:]...)
	} else {
		s.pending = append(s.pending, option)
	}
	return Outcome{Question: q}, nil
}

// Confirm commits the pending multi-select choices in toggle order. An empty
// selection is rejected and left untouched.
func (s *Session) Confirm() (Outcome, error) {
	q, err := s.expect(questions.MultiSelect)
	if err != nil {
		return Outcome{}, err
	}
	if len(s.pending) == 0 {
		return Outcome{}, reject(q.Key, ErrEmptySelection)
	}

	answer := questions.Multi(s.pending)
	s.pending = nil
	return s.commit(q, answer, answer.String()), nil
}

// Reset discards all progress. The AI toggle and credential are kept.
func (s *Session) Reset() {
	fresh := NewSession(s.reg)
	fresh.aiEnabled = s.aiEnabled
	fresh.credential = s.credential
	*s = *fresh
}

// SetAI turns phase summaries on or off.
func (s *Session) SetAI(enabled bool) {
	s.aiEnabled = enabled
}

func (s *Session) expect(kind questions.Kind) (questions.Question, error) {
	q, ok := s.Current()
	if !ok {
		return questions.Question{}, reject("", ErrComplete)
	}
	if q.Kind != kind {
		return questions.Question{}, reject(q.Key, ErrWrongKind)
	}
	return q, nil
}

func (s *Session) commit(q questions.Question, answer questions.Answer, shown string) Outcome {
	s.transcript = append(s.transcript, Entry{Role: RoleUser, Text: shown})
	s.answers[q.Key] = answer
	s.position++

	out := Outcome{Committed: true, Question: q}
	if q.Summarize && s.aiEnabled {
		req := s.PhaseRequest(q.Phase)
		out.Summary = &req
	}
	return out
}
