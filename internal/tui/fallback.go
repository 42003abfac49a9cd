package tui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/sahilm/fuzzy"

	"github.com/Harshal279/chatbot/internal/credential"
	"github.com/Harshal279/chatbot/internal/export"
	"github.com/Harshal279/chatbot/internal/questions"
	"github.com/Harshal279/chatbot/internal/summary"
	"github.com/Harshal279/chatbot/internal/wizard"
)

// ErrInputClosed is returned when input ends before the questionnaire is complete.
var ErrInputClosed = errors.New("input closed before the questionnaire was complete")

// ErrQuit is returned when the user leaves with :quit.
var ErrQuit = errors.New("quit")

// Line mode commands.
const (
	CmdReset   = ":reset"
	CmdSummary = ":summary"
	CmdAIOn    = ":ai on"
	CmdAIOff   = ":ai off"
	CmdQuit    = ":quit"
	CmdHelp    = ":help"
	CmdDone    = "done"
)

// FallbackRunner drives the questionnaire over plain line-oriented I/O. It
// is used when no terminal is attached or line mode is forced.
type FallbackRunner struct {
	collector *wizard.Collector
	saver     export.Saver
	in        *bufio.Reader
	out       io.Writer

	// ReadSecret reads the API key when AI summaries are turned on without
	// one. When nil the key is read as a plain line from the input.
	ReadSecret func() (string, error)

	shown int // transcript entries already printed
}

// NewFallbackRunner creates a new FallbackRunner.
func NewFallbackRunner(c *wizard.Collector, saver export.Saver, in io.Reader, out io.Writer) *FallbackRunner {
	return &FallbackRunner{
		collector: c,
		saver:     saver,
		in:        bufio.NewReader(in),
		out:       out,
	}
}

// Run asks every remaining question, then writes the export and returns its
// location.
func (f *FallbackRunner) Run(ctx context.Context) (export.Written, error) {
	s := f.collector.Session()
	f.printf("Bigin CRM Proposal Assistant\n")
	f.printf("%s\n", DimStyle.Render("Type :help for commands."))

	lastPhase := 0
	for !s.Complete() {
		if err := ctx.Err(); err != nil {
			return export.Written{}, err
		}
		q, _ := s.Current()
		if q.Phase != lastPhase {
			f.printf("\nPhase %d/%d: %s\n", q.Phase, questions.NumPhases, questions.PhaseName(q.Phase))
			lastPhase = q.Phase
		}
		f.printQuestion(s, q)

		line, err := f.readLine()
		if err != nil {
			return export.Written{}, err
		}
		handled, err := f.command(ctx, line)
		if err != nil {
			return export.Written{}, err
		}
		if handled {
			if s.Position() == 0 {
				lastPhase = 0
			}
			continue
		}
		if q.Kind == questions.FreeText {
			if line, err = f.continueLines(line); err != nil {
				return export.Written{}, err
			}
		}
		f.answer(ctx, q, line)
		f.flushTranscript(s)
	}

	f.printf("\n🎉 Complete! All information gathered.\n\n")
	w, err := f.saver.Save(s.Registry(), s.Answers())
	if err != nil {
		return export.Written{}, fmt.Errorf("saving summary: %w", err)
	}
	f.printf("Summary saved to %s (%s)\n", w.Path, humanize.Bytes(uint64(w.Size)))
	return w, nil
}

func (f *FallbackRunner) printQuestion(s *wizard.Session, q questions.Question) {
	f.printf("\n[%d/%d] %s\n", s.Position()+1, s.Registry().Len(), q.Prompt)
	for i, opt := range q.Options {
		marker := ""
		if q.Kind == questions.MultiSelect {
			marker = "[ ] "
			if s.IsPending(opt) {
				marker = "[x] "
			}
		}
		f.printf("  [%d] %s%s\n", i+1, marker, opt)
	}
	switch q.Kind {
	case questions.MultiSelect:
		if p := s.Pending(); len(p) > 0 {
			f.printf("  Selected: %s\n", strings.Join(p, questions.ValueSeparator))
		}
		f.printf("%s\n", DimStyle.Render("  Numbers or names to toggle (comma separated), empty line when done."))
	case questions.SingleSelect:
		f.printf("%s\n", DimStyle.Render("  Pick a number or type part of an option."))
	case questions.FreeText:
		f.printf("%s\n", DimStyle.Render(`  End a line with \ to continue on the next one.`))
	}
	f.printf("  > ")
}

// command handles the colon commands. It reports whether line was one.
func (f *FallbackRunner) command(ctx context.Context, line string) (bool, error) {
	cmd := strings.ToLower(strings.Join(strings.Fields(line), " "))
	switch cmd {
	case CmdReset:
		_, _ = f.collector.Commit(wizard.ResetAction{})
		f.shown = 0
		f.printf("Starting over.\n")
	case CmdSummary:
		f.printSummary(f.collector.Session())
	case CmdAIOn:
		s := f.collector.Session()
		if !s.HasCredential() {
			secret, err := f.readSecret()
			if err != nil {
				f.printf("%s\n", WarningStyle.Render("AI summaries stay off: "+err.Error()))
				return true, nil
			}
			s.SetCredential(secret)
		}
		_, _ = f.collector.Commit(wizard.AIAction{Enabled: true})
		f.printf("AI summaries enabled.\n")
	case CmdAIOff:
		_, _ = f.collector.Commit(wizard.AIAction{Enabled: false})
		f.printf("AI summaries disabled.\n")
	case CmdQuit:
		return true, ErrQuit
	case CmdHelp:
		f.printf("Commands: %s, %s, %s, %s, %s\n", CmdSummary, CmdAIOn, CmdAIOff, CmdReset, CmdQuit)
	default:
		return false, nil
	}
	return true, nil
}

// answer turns one input line into actions for q. Rejections print a hint
// and leave the session unchanged.
func (f *FallbackRunner) answer(ctx context.Context, q questions.Question, line string) {
	var err error
	switch q.Kind {
	case questions.FreeText:
		_, err = f.collector.Apply(ctx, wizard.SubmitAction{Text: line})
	case questions.SingleSelect:
		opt, ok := MatchOption(strings.TrimSpace(line), q.Options)
		if !ok {
			f.hint("Please choose one of the listed options.")
			return
		}
		_, err = f.collector.Apply(ctx, wizard.SelectAction{Option: opt})
	case questions.MultiSelect:
		input := strings.TrimSpace(line)
		if input == "" || strings.EqualFold(input, CmdDone) {
			_, err = f.collector.Apply(ctx, wizard.ConfirmAction{})
			break
		}
		for _, tok := range strings.Split(input, ",") {
			tok = strings.TrimSpace(tok)
			if tok == "" {
				continue
			}
			opt, ok := MatchOption(tok, q.Options)
			if !ok {
				f.hint(fmt.Sprintf("No single option matches %q.", tok))
				continue
			}
			_, _ = f.collector.Apply(ctx, wizard.ToggleAction{Option: opt})
		}
	}
	if err != nil {
		f.hint(Hint(err))
	}
}

// continueLines joins a line ending in a backslash with the lines that
// follow it, keeping the line breaks.
func (f *FallbackRunner) continueLines(line string) (string, error) {
	var b strings.Builder
	for strings.HasSuffix(line, `\`) {
		b.WriteString(strings.TrimSuffix(line, `\`))
		b.WriteString("\n")
		f.printf("  . ")
		next, err := f.readLine()
		if err != nil {
			return "", err
		}
		line = next
	}
	b.WriteString(line)
	return b.String(), nil
}

func (f *FallbackRunner) flushTranscript(s *wizard.Session) {
	entries := s.Transcript()
	for _, e := range entries[f.shown:] {
		if e.Role == wizard.RoleAssistant {
			f.printf("Assistant: %s\n", e.Text)
		}
	}
	f.shown = len(entries)
}

func (f *FallbackRunner) printSummary(s *wizard.Session) {
	groups := summary.PhaseView(s.Registry(), s.Answers())
	if len(groups) == 0 {
		f.printf("No answers yet.\n")
		return
	}
	for _, g := range groups {
		f.printf("Phase %d: %s\n", g.Phase, g.Name)
		for _, it := range g.Items {
			f.printf("  %s\n", it.Line())
		}
	}
}

func (f *FallbackRunner) readSecret() (string, error) {
	if f.ReadSecret != nil {
		return f.ReadSecret()
	}
	f.printf("Groq API key: ")
	line, err := f.readLine()
	if err != nil {
		return "", err
	}
	return credential.Normalize(line)
}

func (f *FallbackRunner) readLine() (string, error) {
	line, err := f.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (f *FallbackRunner) hint(msg string) {
	f.printf("%s\n", WarningStyle.Render("  "+msg))
}

func (f *FallbackRunner) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(f.out, format, args...)
}

// MatchOption resolves user input to one of options: by 1-based number, by
// case-insensitive name, or by a fuzzy match that clearly beats the rest.
func MatchOption(input string, options []string) (string, bool) {
	if input == "" {
		return "", false
	}
	if n, ok := parseOptionNumber(input); ok {
		if n >= 1 && n <= len(options) {
			return options[n-1], true
		}
		return "", false
	}
	for _, opt := range options {
		if strings.EqualFold(opt, input) {
			return opt, true
		}
	}

	lowered := make([]string, len(options))
	for i, opt := range options {
		lowered[i] = strings.ToLower(opt)
	}
	matches := fuzzy.Find(strings.ToLower(input), lowered)
	switch {
	case len(matches) == 1:
		return options[matches[0].Index], true
	case len(matches) > 1 && matches[0].Score > matches[1].Score:
		return options[matches[0].Index], true
	}
	return "", false
}

// parseOptionNumber parses s as a positive decimal integer. Input too
// large for an int is not a number.
func parseOptionNumber(s string) (int, bool) {
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n == 0 {
		return 0, false
	}
	return n, true
}

// Hint returns the short user-facing message for a rejected action.
func Hint(err error) string {
	switch {
	case errors.Is(err, wizard.ErrEmptyAnswer):
		return "Please type an answer before sending."
	case errors.Is(err, wizard.ErrEmptySelection):
		return "Select at least one option before confirming."
	case errors.Is(err, wizard.ErrUnknownOption):
		return "That is not one of the options."
	case errors.Is(err, wizard.ErrComplete):
		return "All questions are answered."
	case errors.Is(err, wizard.ErrWrongKind):
		return "That input does not fit this question."
	default:
		return err.Error()
	}
}
