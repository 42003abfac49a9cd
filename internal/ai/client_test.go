package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Harshal279/chatbot/internal/questions"
)

func phaseRequest() Request {
	return Request{
		Phase: 1,
		Items: []Item{
			{Key: "company_name", Value: questions.Text("Acme")},
			{Key: "modules", Value: questions.Multi([]string{"Deals", "Tasks"})},
		},
	}
}

func newTestClient(t *testing.T, url string) *Client {
	t.Helper()
	c, err := NewClient(Config{BaseURL: url, Timeout: 2 * time.Second}, nil)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c
}

func TestRequestJSONKeepsOrder(t *testing.T) {
	got, err := phaseRequest().JSON()
	if err != nil {
		t.Fatal(err)
	}
	want := `{"company_name":"Acme","modules":["Deals","Tasks"]}`
	if got != want {
		t.Errorf("JSON() = %s, want %s", got, want)
	}
}

func TestSummarizeSuccess(t *testing.T) {
	var captured struct {
		Model     string `json:"model"`
		MaxTokens int    `json:"max_tokens"`
		Messages  []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	var auth, path string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		path = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "  Acme needs deals and tasks.  "}, "finish_reason": "stop"}]
		}`))
	}))
	defer srv.Close()

	res := newTestClient(t, srv.URL).Summarize(context.Background(), phaseRequest(), "secret-key")

	if !res.OK || res.Text != "Acme needs deals and tasks." {
		t.Fatalf("Summarize() = %+v, want present trimmed text", res)
	}
	if path != "/chat/completions" {
		t.Errorf("path = %q", path)
	}
	if auth != "Bearer secret-key" {
		t.Errorf("Authorization = %q", auth)
	}
	if captured.Model != DefaultModel {
		t.Errorf("model = %q, want %q", captured.Model, DefaultModel)
	}
	if captured.MaxTokens != DefaultMaxTokens {
		t.Errorf("max_tokens = %d, want %d", captured.MaxTokens, DefaultMaxTokens)
	}
	if len(captured.Messages) != 1 || captured.Messages[0].Role != "user" {
		t.Fatalf("messages = %+v", captured.Messages)
	}
	wantPrompt := `Summarize this CRM proposal data in 2-3 sentences: {"company_name":"Acme","modules":["Deals","Tasks"]}`
	if captured.Messages[0].Content != wantPrompt {
		t.Errorf("prompt = %q, want %q", captured.Messages[0].Content, wantPrompt)
	}
}

func TestSummarizeFailuresAreAbsent(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "unauthorized",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":{"message":"bad key","type":"invalid_request_error"}}`))
			},
		},
		{
			name: "rate limited",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"error":{"message":"slow down"}}`))
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`not json`))
			},
		},
		{
			name: "no choices",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"choices": []}`))
			},
		},
		{
			name: "blank content",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"choices": [{"message": {"role": "assistant", "content": "   "}}]}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				atomic.AddInt32(&calls, 1)
				tt.handler(w, r)
			}))
			defer srv.Close()

			res := newTestClient(t, srv.URL).Summarize(context.Background(), phaseRequest(), "key")
			if res.OK {
				t.Errorf("Summarize() = %+v, want absent", res)
			}
			if n := atomic.LoadInt32(&calls); n != 1 {
				t.Errorf("server called %d times, want exactly 1", n)
			}
		})
	}
}

func TestSummarizeTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	res := newTestClient(t, url).Summarize(context.Background(), phaseRequest(), "key")
	if res.OK {
		t.Errorf("Summarize() = %+v, want absent on transport error", res)
	}
}

func TestSummarizeTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	c, err := NewClient(Config{BaseURL: srv.URL, Timeout: 50 * time.Millisecond}, nil)
	if err != nil {
		t.Fatal(err)
	}

	start := time.Now()
	res := c.Summarize(context.Background(), phaseRequest(), "key")
	if res.OK {
		t.Errorf("Summarize() = %+v, want absent on timeout", res)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("Summarize() took %v, timeout not applied", elapsed)
	}
}

func TestSummarizeWithoutCredentialMakesNoCall(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer srv.Close()

	res := newTestClient(t, srv.URL).Summarize(context.Background(), phaseRequest(), "  ")
	if res.OK {
		t.Errorf("Summarize() = %+v, want absent", res)
	}
	if atomic.LoadInt32(&calls) != 0 {
		t.Error("request sent without a credential")
	}
}

func TestDisabled(t *testing.T) {
	if res := (Disabled{}).Summarize(context.Background(), phaseRequest(), "key"); res.OK {
		t.Errorf("Disabled.Summarize() = %+v", res)
	}
}
