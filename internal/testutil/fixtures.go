// Package testutil provides test helper utilities for proposal tests.
package testutil

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/Harshal279/chatbot/internal/ai"
	"github.com/Harshal279/chatbot/internal/questions"
)

// SmallRegistry returns the three-question registry used across tests:
// free-text "name", single-select "color" [Red, Blue], multi-select "tags" [A, B, C].
func SmallRegistry(t *testing.T) *questions.Registry {
	t.Helper()
	reg, err := questions.New([]questions.Question{
		{Phase: 1, Key: "name", Kind: questions.FreeText, Prompt: "Name?"},
		{Phase: 1, Key: "color", Kind: questions.SingleSelect, Prompt: "Color?", Options: []string{"Red", "Blue"}, Summarize: true},
		{Phase: 2, Key: "tags", Kind: questions.MultiSelect, Prompt: "Tags?", Options: []string{"A", "B", "C"}, Final: true},
	})
	if err != nil {
		t.Fatalf("building small registry: %v", err)
	}
	return reg
}

// ProposalAnswers returns a full set of answers for the default registry,
// keyed in registry order, using the first option of every select question.
func ProposalAnswers() map[string]questions.Answer {
	answers := make(map[string]questions.Answer)
	for _, q := range questions.Default().All() {
		switch q.Kind {
		case questions.FreeText:
			answers[q.Key] = questions.Text("answer for " + q.Key)
		case questions.SingleSelect:
			answers[q.Key] = questions.Text(q.Options[0])
		case questions.MultiSelect:
			answers[q.Key] = questions.Multi(q.Options[:2])
		}
	}
	answers[questions.CompanyKey] = questions.Text("Acme Corp")
	return answers
}

// ErrForcedTransport is returned by FailingTransport.
var ErrForcedTransport = errors.New("forced transport failure")

// FailingTransport is an http.RoundTripper whose requests always fail.
type FailingTransport struct{}

// RoundTrip returns ErrForcedTransport.
func (FailingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, ErrForcedTransport
}

// StubSummarizer records summarizer calls and returns a canned result.
type StubSummarizer struct {
	mu       sync.Mutex
	Result   ai.Result
	Requests []ai.Request
	Creds    []string
}

// Summarize records the call and returns s.Result.
func (s *StubSummarizer) Summarize(_ context.Context, req ai.Request, credential string) ai.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Requests = append(s.Requests, req)
	s.Creds = append(s.Creds, credential)
	return s.Result
}

// Calls returns the number of recorded calls.
func (s *StubSummarizer) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Requests)
}
