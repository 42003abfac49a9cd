package wizard

import (
	"context"
	"log/slog"

	"github.com/Harshal279/chatbot/internal/ai"
	applog "github.com/Harshal279/chatbot/internal/log"
)

// Action is one discrete user action applied to a Session.
type Action interface {
	apply(s *Session) (Outcome, error)
}

// SubmitAction submits free text.
type SubmitAction struct{ Text string }

// SelectAction picks a single-select option.
type SelectAction struct{ Option string }

// ToggleAction flips a multi-select option.
type ToggleAction struct{ Option string }

// ConfirmAction commits the pending multi-select choices.
type ConfirmAction struct{}

// ResetAction starts the interview over.
type ResetAction struct{}

// AIAction turns AI summaries on or off.
type AIAction struct{ Enabled bool }

func (a SubmitAction) apply(s *Session) (Outcome, error) { return s.SubmitText(a.Text) }
func (a SelectAction) apply(s *Session) (Outcome, error) { return s.Select(a.Option) }
func (a ToggleAction) apply(s *Session) (Outcome, error) { return s.Toggle(a.Option) }
func (ConfirmAction) apply(s *Session) (Outcome, error)  { return s.Confirm() }

func (ResetAction) apply(s *Session) (Outcome, error) {
	s.Reset()
	return Outcome{}, nil
}

func (a AIAction) apply(s *Session) (Outcome, error) {
	s.SetAI(a.Enabled)
	return Outcome{}, nil
}

// Apply performs a on the session.
func (s *Session) Apply(a Action) (Outcome, error) {
	return a.apply(s)
}

// Collector ties a Session to a Summarizer and logs each transition.
type Collector struct {
	session    *Session
	summarizer ai.Summarizer
	logger     *slog.Logger
}

// NewCollector returns a Collector. A nil summarizer disables summaries and a
// nil logger discards log output.
func NewCollector(s *Session, summarizer ai.Summarizer, logger *slog.Logger) *Collector {
	if summarizer == nil {
		summarizer = ai.Disabled{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	c := &Collector{session: s, summarizer: summarizer, logger: logger}
	c.logger.Info(applog.EventSessionStarted, "session", s)
	return c
}

// Session returns the collector's session.
func (c *Collector) Session() *Session { return c.session }

// Commit applies a without running any summary request the outcome carries.
// Callers that summarize asynchronously use RunSummary and Session.AddSummary.
func (c *Collector) Commit(a Action) (Outcome, error) {
	out, err := c.session.Apply(a)
	if err != nil {
		c.logger.Debug(applog.EventAnswerRejected, "session", c.session, "error", err)
		return out, err
	}

	switch a.(type) {
	case ResetAction:
		c.logger.Info(applog.EventSessionReset, "session", c.session)
	case AIAction:
		c.logger.Info(applog.EventAIToggled, "session", c.session)
	}
	if out.Committed {
		c.logger.Info(applog.EventAnswerCommitted,
			"session", c.session,
			"key", out.Question.Key,
			"phase", out.Question.Phase,
			"kind", out.Question.Kind.String(),
		)
		if c.session.Complete() {
			c.logger.Info(applog.EventSessionComplete, "session", c.session)
		}
	}
	return out, nil
}

// Apply commits a and, when the outcome asks for one, runs the phase summary
// synchronously and records it. The summary never affects progression.
func (c *Collector) Apply(ctx context.Context, a Action) (Outcome, error) {
	out, err := c.Commit(a)
	if err != nil || out.Summary == nil {
		return out, err
	}

	res := c.RunSummary(ctx, *out.Summary, c.session.Credential())
	c.session.AddSummary(res)
	return out, nil
}

// RunSummary calls the summarizer for req. It does not touch the session, so
// it may run off the goroutine that owns it.
func (c *Collector) RunSummary(ctx context.Context, req ai.Request, credential string) ai.Result {
	res := c.summarizer.Summarize(ctx, req, credential)
	if res.OK {
		c.logger.Info(applog.EventSummaryGenerated, "phase", req.Phase, "items", len(req.Items))
	} else {
		c.logger.Info(applog.EventSummaryUnavailable, "phase", req.Phase)
	}
	return res
}
