// Package wizard implements the interview state machine: a session that walks
// the question registry in order and commits one validated answer per step.
package wizard

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/Harshal279/chatbot/internal/ai"
	"github.com/Harshal279/chatbot/internal/questions"
)

// SummaryPrefix marks transcript entries produced by the AI summarizer.
const SummaryPrefix = "✅ "

// Role identifies the speaker of a transcript entry.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Entry is one line of the display transcript.
type Entry struct {
	Role Role
	Text string
}

// Session is the mutable state of one interview. It is owned by a single
// caller and is not safe for concurrent use.
type Session struct {
	id         string
	reg        *questions.Registry
	position   int
	answers    map[string]questions.Answer
	transcript []Entry
	pending    []string
	aiEnabled  bool
	credential string
}

// NewSession returns an empty session positioned at the first question.
func NewSession(reg *questions.Registry) *Session {
	return &Session{
		id:      uuid.NewString(),
		reg:     reg,
		answers: make(map[string]questions.Answer),
	}
}

// ID identifies the current run for log correlation. Reset issues a new one.
func (s *Session) ID() string { return s.id }

// Registry returns the question registry the session walks.
func (s *Session) Registry() *questions.Registry { return s.reg }

// Position returns the index of the current question.
func (s *Session) Position() int { return s.position }

// Complete reports whether every question has been answered.
func (s *Session) Complete() bool { return s.position >= s.reg.Len() }

// Current returns the question awaiting an answer.
func (s *Session) Current() (questions.Question, bool) {
	if s.Complete() {
		return questions.Question{}, false
	}
	return s.reg.At(s.position), true
}

// CurrentPhase returns the phase of the current question, or the last phase
// once the session is complete.
func (s *Session) CurrentPhase() int {
	if q, ok := s.Current(); ok {
		return q.Phase
	}
	return questions.NumPhases
}

// Progress returns the answered fraction in [0, 1].
func (s *Session) Progress() float64 {
	if s.reg.Len() == 0 {
		return 1
	}
	return float64(s.position) / float64(s.reg.Len())
}

// Answer returns the committed answer for key.
func (s *Session) Answer(key string) (questions.Answer, bool) {
	a, ok := s.answers[key]
	return a, ok
}

// Answers returns a copy of all committed answers.
func (s *Session) Answers() map[string]questions.Answer {
	out := make(map[string]questions.Answer, len(s.answers))
	for k, v := range s.answers {
		out[k] = v
	}
	return out
}

// Transcript returns a copy of the transcript.
func (s *Session) Transcript() []Entry {
	return append([]Entry(nil), s.transcript...)
}

// Pending returns a copy of the in-progress multi-select choices.
func (s *Session) Pending() []string {
	return append([]string(nil), s.pending...)
}

// IsPending reports whether opt is currently toggled on.
func (s *Session) IsPending(opt string) bool {
	return indexOf(s.pending, opt) >= 0
}

// AIEnabled reports whether phase summaries are requested.
func (s *Session) AIEnabled() bool { return s.aiEnabled }

// Credential returns the AI credential. Callers must not log or persist it.
func (s *Session) Credential() string { return s.credential }

// HasCredential reports whether a credential is set.
func (s *Session) HasCredential() bool { return s.credential != "" }

// SetCredential replaces the AI credential.
func (s *Session) SetCredential(secret string) { s.credential = secret }

// LogValue implements slog.LogValuer. The credential is never included.
func (s *Session) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("id", s.id),
		slog.Int("position", s.position),
		slog.Int("total", s.reg.Len()),
		slog.Bool("ai", s.aiEnabled),
	)
}

// PhaseRequest collects the answers of one phase in registry order.
func (s *Session) PhaseRequest(phase int) ai.Request {
	req := ai.Request{Phase: phase}
	for _, q := range s.reg.InPhase(phase) {
		if a, ok := s.answers[q.Key]; ok {
			req.Items = append(req.Items, ai.Item{Key: q.Key, Value: a})
		}
	}
	return req
}

// AddSummary appends a present summary result to the transcript. It reports
// whether an entry was added.
func (s *Session) AddSummary(res ai.Result) bool {
	if !res.OK || res.Text == "" {
		return false
	}
	s.transcript = append(s.transcript, Entry{Role: RoleAssistant, Text: SummaryPrefix + res.Text})
	return true
}

func indexOf(list []string, v string) int {
	for i, s := range list {
		if s == v {
			return i
		}
	}
	return -1
}
