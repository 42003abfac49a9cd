// Package app provides the main TUI application that wires all views together.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Harshal279/chatbot/internal/ai"
	"github.com/Harshal279/chatbot/internal/export"
	applog "github.com/Harshal279/chatbot/internal/log"
	"github.com/Harshal279/chatbot/internal/questions"
	"github.com/Harshal279/chatbot/internal/summary"
	"github.com/Harshal279/chatbot/internal/tui"
	"github.com/Harshal279/chatbot/internal/tui/views"
	"github.com/Harshal279/chatbot/internal/wizard"
)

// Options configures an App.
type Options struct {
	Collector *wizard.Collector
	Saver     export.Saver
	Logger    *slog.Logger
	// Context bounds the summary calls started by the app.
	Context context.Context
}

// App is the main TUI application that wires all views together.
type App struct {
	collector *wizard.Collector
	saver     export.Saver
	logger    *slog.Logger
	ctx       context.Context

	state  tui.ViewState
	layout tui.Layout

	// View models
	question   views.QuestionModel
	transcript views.TranscriptModel
	settings   views.SettingsModel
	complete   views.CompleteModel

	spinner  spinner.Model
	progress progress.Model

	inflight     int // phase summaries not yet returned
	ctrlCPending bool
	notice       string
	written      *export.Written
}

// New creates a new App over the collector's session.
func New(opts Options) *App {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Saver.Exporter == nil {
		opts.Saver.Exporter = &export.TextExporter{}
	}

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(tui.SelectedStyle),
	)

	a := &App{
		collector: opts.Collector,
		saver:     opts.Saver,
		logger:    opts.Logger,
		ctx:       opts.Context,
		layout:    tui.DefaultLayout,
		spinner:   sp,
		progress:  progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
	}
	a.transcript = views.NewTranscriptModel(a.layout.MainWidth()-2, a.transcriptHeight())
	a.transcript.SetEntries(a.session().Transcript())
	a.enterCurrent()
	a.resize()
	return a
}

func (a *App) session() *wizard.Session { return a.collector.Session() }

// State returns the active view.
func (a *App) State() tui.ViewState { return a.state }

// Written returns the last export written, if any.
func (a *App) Written() (export.Written, bool) {
	if a.written == nil {
		return export.Written{}, false
	}
	return *a.written, true
}

// Init returns the initial command for the TUI.
func (a *App) Init() tea.Cmd {
	return a.question.Init()
}

// Update handles messages and updates the application state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.layout = tui.Layout{Width: msg.Width, Height: msg.Height}
		a.resize()
		return a, nil

	case tea.KeyMsg:
		keys := tui.DefaultKeyMap
		switch {
		case key.Matches(msg, keys.Quit):
			if a.ctrlCPending || a.state == tui.StateComplete {
				return a, tea.Quit
			}
			// First press - set pending and start timeout
			a.ctrlCPending = true
			return a, tea.Tick(time.Second, func(time.Time) tea.Msg {
				return tui.CtrlCResetMsg{}
			})
		case key.Matches(msg, keys.Reset) && a.state != tui.StateSettings:
			return a, a.reset()
		case key.Matches(msg, keys.Settings) && a.state == tui.StateQuestion:
			s := a.session()
			a.settings = views.NewSettingsModel(s.AIEnabled(), s.Credential(), a.layout.MainWidth())
			a.state = tui.StateSettings
			return a, nil
		case msg.String() == "pgup" || msg.String() == "pgdown":
			if a.state == tui.StateQuestion {
				var cmd tea.Cmd
				a.transcript, cmd = a.transcript.Update(msg)
				return a, cmd
			}
		}

	case tea.MouseMsg:
		if a.state == tui.StateQuestion {
			var cmd tea.Cmd
			a.transcript, cmd = a.transcript.Update(msg)
			return a, cmd
		}

	case tui.CtrlCResetMsg:
		a.ctrlCPending = false
		return a, nil

	case tui.ActionMsg:
		return a, a.apply(msg.Action)

	case tui.SummaryMsg:
		if a.inflight > 0 {
			a.inflight--
		}
		// A result for a session that has since been reset is dropped.
		if msg.SessionID == a.session().ID() && a.session().AddSummary(msg.Result) {
			a.transcript.SetEntries(a.session().Transcript())
		}
		return a, nil

	case tui.SettingsSavedMsg:
		s := a.session()
		s.SetCredential(msg.Credential)
		_, _ = a.collector.Commit(wizard.AIAction{Enabled: msg.AIEnabled})
		a.notice = "AI summaries off"
		if s.AIEnabled() {
			a.notice = "AI summaries on"
		}
		a.leaveSettings()
		return a, a.question.Init()

	case tui.SettingsCancelledMsg:
		a.leaveSettings()
		return a, a.question.Init()

	case tui.ExportRequestMsg:
		a.complete.SetSaving()
		return a, a.exportCmd()

	case tui.ExportDoneMsg:
		a.complete.SetResult(msg.Written, msg.Err)
		if msg.Err != nil {
			a.logger.Error("export failed", "session", a.session(), "error", msg.Err)
			return a, nil
		}
		w := msg.Written
		a.written = &w
		a.logger.Info(applog.EventExportWritten, "session", a.session(), "path", w.Path, "bytes", w.Size)
		return a, nil

	case spinner.TickMsg:
		if a.inflight == 0 {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	}

	// Route remaining messages to the active view.
	var cmd tea.Cmd
	switch a.state {
	case tui.StateQuestion:
		a.question, cmd = a.question.Update(msg)
	case tui.StateSettings:
		a.settings, cmd = a.settings.Update(msg)
	case tui.StateComplete:
		a.complete, cmd = a.complete.Update(msg)
	}
	return a, cmd
}

// apply commits one user action and schedules any follow-up work.
func (a *App) apply(act wizard.Action) tea.Cmd {
	s := a.session()
	out, err := a.collector.Commit(act)
	if err != nil {
		a.question.SetHint(tui.Hint(err))
		return nil
	}
	if _, ok := act.(wizard.ToggleAction); ok {
		a.question.SetPending(s.Pending())
		return nil
	}
	if !out.Committed {
		return nil
	}

	a.notice = ""
	a.transcript.SetEntries(s.Transcript())

	var cmds []tea.Cmd
	if out.Summary != nil {
		if a.inflight == 0 {
			cmds = append(cmds, a.spinner.Tick)
		}
		a.inflight++
		cmds = append(cmds, a.summarizeCmd(*out.Summary, s.Credential(), s.ID()))
	}
	a.enterCurrent()
	cmds = append(cmds, a.question.Init())
	return tea.Batch(cmds...)
}

// summarizeCmd runs the phase summary off the update loop. Only the
// summarizer is touched there; the session is updated when SummaryMsg arrives.
func (a *App) summarizeCmd(req ai.Request, credential, sessionID string) tea.Cmd {
	c, ctx := a.collector, a.ctx
	return func() tea.Msg {
		return tui.SummaryMsg{SessionID: sessionID, Phase: req.Phase, Result: c.RunSummary(ctx, req, credential)}
	}
}

func (a *App) exportCmd() tea.Cmd {
	s := a.session()
	saver, reg, answers := a.saver, s.Registry(), s.Answers()
	return func() tea.Msg {
		w, err := saver.Save(reg, answers)
		return tui.ExportDoneMsg{Written: w, Err: err}
	}
}

func (a *App) reset() tea.Cmd {
	if _, err := a.collector.Commit(wizard.ResetAction{}); err != nil {
		a.notice = err.Error()
		return nil
	}
	a.inflight = 0
	a.written = nil
	a.notice = "Started over"
	a.transcript.SetEntries(nil)
	a.enterCurrent()
	return a.question.Init()
}

// enterCurrent shows the view for the session's position: the next question,
// or the completion preview once every question is answered.
func (a *App) enterCurrent() {
	s := a.session()
	q, ok := s.Current()
	if ok {
		a.state = tui.StateQuestion
		a.question = views.NewQuestionModel(q, s.Position(), s.Registry().Len(), a.layout.MainWidth())
		a.question.SetPending(s.Pending())
		return
	}

	a.state = tui.StateComplete
	doc, err := a.saver.Document(s.Registry(), s.Answers())
	if err != nil {
		a.notice = err.Error()
		return
	}
	a.complete = views.NewCompleteModel(doc, doc.Filename(a.saver.Exporter.Extension()), a.layout.MainWidth(), a.layout.Height)
}

func (a *App) leaveSettings() {
	if a.session().Complete() {
		a.state = tui.StateComplete
		return
	}
	a.state = tui.StateQuestion
}

func (a *App) resize() {
	a.progress.Width = max(a.layout.Width-16, 10)
	a.transcript.SetSize(a.layout.MainWidth()-2, a.transcriptHeight())
	if a.state != tui.StateComplete {
		a.question.SetWidth(a.layout.MainWidth())
	}
}

func (a *App) transcriptHeight() int {
	return max(a.layout.Height-24, 3)
}

// View renders the current application state.
func (a *App) View() string {
	s := a.session()

	var main string
	switch a.state {
	case tui.StateSettings:
		main = a.settings.View()
	case tui.StateComplete:
		main = a.complete.View()
	default:
		var b strings.Builder
		b.WriteString(a.transcript.View())
		b.WriteString("\n")
		if a.inflight > 0 {
			b.WriteString(a.spinner.View() + tui.DimStyle.Render(" Summarizing phase..."))
		}
		b.WriteString("\n")
		b.WriteString(a.question.View())
		main = b.String()
	}

	body := main
	if w := a.layout.SideWidth(); w > 0 {
		side := views.RenderSummary(summary.PhaseView(s.Registry(), s.Answers()), s.CurrentPhase(), w)
		body = lipgloss.JoinHorizontal(lipgloss.Top, lipgloss.NewStyle().Width(a.layout.MainWidth()).Render(main), side)
	}

	return lipgloss.JoinVertical(lipgloss.Left, a.header(), body, a.statusBar())
}

func (a *App) header() string {
	s := a.session()
	phase := s.CurrentPhase()

	title := tui.TitleStyle.Render("💼 Bigin CRM Proposal Assistant")
	badge := tui.PhaseBadgeStyle.Render(fmt.Sprintf("Phase %d/%d: %s", phase, questions.NumPhases, questions.PhaseName(phase)))
	aiStatus := tui.DimStyle.Render("AI off")
	if s.AIEnabled() {
		aiStatus = tui.SuccessStyle.Render("AI on")
	}
	bar := a.progress.ViewAs(s.Progress()) + tui.DimStyle.Render(fmt.Sprintf(" %d/%d", s.Position(), s.Registry().Len()))

	return title + "  " + badge + "  " + aiStatus + "\n" + bar + "\n"
}

func (a *App) statusBar() string {
	switch {
	case a.ctrlCPending:
		return tui.WarningStyle.Render("Press Ctrl+C again to exit")
	case a.notice != "":
		return tui.StatusBarStyle.Render(a.notice)
	default:
		return tui.StatusBarStyle.Render("tab AI settings · ctrl+r start over · ctrl+c exit")
	}
}
