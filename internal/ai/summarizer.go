// Package ai produces best-effort natural-language summaries of one interview
// phase through an OpenAI-compatible chat-completion endpoint.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/Harshal279/chatbot/internal/questions"
)

// Item is one answered question handed to the summarizer.
type Item struct {
	Key   string
	Value questions.Answer
}

// Request carries the answers of a single phase in registry order.
type Request struct {
	Phase int
	Items []Item
}

// JSON encodes the request items as a compact JSON object, preserving order.
func (r Request) JSON() (string, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, it := range r.Items {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(it.Key)
		if err != nil {
			return "", fmt.Errorf("encode key %q: %w", it.Key, err)
		}
		v, err := json.Marshal(it.Value)
		if err != nil {
			return "", fmt.Errorf("encode value for %q: %w", it.Key, err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.String(), nil
}

// Result is either a summary text or the absence of one.
type Result struct {
	Text string
	OK   bool
}

// Present wraps a summary text.
func Present(text string) Result {
	return Result{Text: text, OK: true}
}

// Absent is the result returned when no summary is available.
func Absent() Result {
	return Result{}
}

// Summarizer generates a phase summary. Implementations never return errors:
// any failure is reported as Absent.
type Summarizer interface {
	Summarize(ctx context.Context, req Request, credential string) Result
}

// Disabled is a Summarizer that never produces a summary.
type Disabled struct{}

// Summarize always returns Absent.
func (Disabled) Summarize(context.Context, Request, string) Result {
	return Absent()
}

// Func adapts a plain function to the Summarizer interface.
type Func func(ctx context.Context, req Request, credential string) Result

// Summarize calls f.
func (f Func) Summarize(ctx context.Context, req Request, credential string) Result {
	return f(ctx, req, credential)
}
