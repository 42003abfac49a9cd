// Package cli defines Cobra command definitions for the proposal CLI.
// This file contains the root command, which runs the interview.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Harshal279/chatbot/internal/ai"
	"github.com/Harshal279/chatbot/internal/config"
	"github.com/Harshal279/chatbot/internal/credential"
	"github.com/Harshal279/chatbot/internal/export"
	applog "github.com/Harshal279/chatbot/internal/log"
	"github.com/Harshal279/chatbot/internal/questions"
	"github.com/Harshal279/chatbot/internal/tui"
	"github.com/Harshal279/chatbot/internal/tui/app"
	"github.com/Harshal279/chatbot/internal/wizard"
)

var version = "dev" // set via ldflags at build time

// options holds the root command flags.
type options struct {
	configFile string
	format     string
	outDir     string
	logFile    string
	logLevel   string
	ai         bool
	line       bool
}

// env is everything the commands touch outside the process.
type env struct {
	fs       afero.Fs
	in       io.Reader
	out      io.Writer
	errOut   io.Writer
	isTTY    func() bool
	resolver credential.Resolver
	now      func() time.Time

	// readSecret reads the API key without echo; nil when stdin is not a terminal.
	readSecret func() (string, error)
}

func defaultEnv() *env {
	e := &env{
		fs:       afero.NewOsFs(),
		in:       os.Stdin,
		out:      os.Stdout,
		errOut:   os.Stderr,
		isTTY:    tui.IsTTY,
		resolver: credential.Default(),
		now:      time.Now,
	}
	if fd := int(os.Stdin.Fd()); term.IsTerminal(fd) {
		e.readSecret = func() (string, error) {
			return credential.ReadMasked(fd, os.Stdout, "Groq API key: ")
		}
	}
	return e
}

// NewRootCmd returns the proposal command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(defaultEnv())
}

func newRootCmd(e *env) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "proposal",
		Short: "Guided Bigin CRM proposal questionnaire",
		Long: `Proposal walks you through 22 questions in 7 phases about a client's
CRM needs and writes a proposal summary when every question is answered.

Phase summaries can be generated by an OpenAI-compatible chat endpoint
(Groq by default). The API key is read from GROQ_API_KEY, a .env file, or
the OS keyring entry proposal-assistant/groq, and can be entered in the
settings panel.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInterview(cmd, e, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configFile, "config", "", "config file (default ./"+config.DefaultFile+" if present)")
	flags.StringVarP(&opts.format, "format", "f", "", "export format: txt, md, json or yaml")
	flags.StringVarP(&opts.outDir, "out", "o", "", "directory to write the summary into")
	flags.BoolVar(&opts.ai, "ai", false, "enable AI phase summaries")
	flags.BoolVar(&opts.line, "line", false, "use plain line-by-line prompts instead of the full-screen UI")
	flags.StringVar(&opts.logFile, "log-file", "", "write JSON logs to this file (rotated)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")

	cmd.AddCommand(newQuestionsCmd(e), newInitCmd(e))
	return cmd
}

// loadConfig reads the config and applies the flags the user set.
func loadConfig(cmd *cobra.Command, e *env, opts *options) (*config.Config, error) {
	cfg, err := config.Load(e.fs, opts.configFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.ExportFormat = opts.format
	}
	if flags.Changed("out") {
		cfg.ExportDir = opts.outDir
	}
	if flags.Changed("ai") {
		cfg.AIEnabled = opts.ai
	}
	if flags.Changed("log-file") {
		cfg.LogFile = opts.logFile
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	return cfg, nil
}

func runInterview(cmd *cobra.Command, e *env, opts *options) error {
	cfg, err := loadConfig(cmd, e, opts)
	if err != nil {
		return err
	}
	exporter, err := export.NewExporter(cfg.ExportFormat)
	if err != nil {
		return err
	}
	level, err := applog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	lineMode := opts.line || !e.isTTY()

	// The full-screen UI owns the terminal, so without a log file its logs
	// are dropped. Line mode reports warnings on stderr.
	logOpts := applog.Options{File: cfg.LogFile, Level: level}
	if cfg.LogFile == "" && lineMode {
		logOpts.Fallback = e.errOut
		logOpts.Level = max(level, slog.LevelWarn)
	}
	logger, closer, err := applog.New(logOpts)
	if err != nil {
		return err
	}
	defer closer.Close()

	session := wizard.NewSession(questions.Default())
	session.SetAI(cfg.AIEnabled)

	secret, src, kerr := e.resolver.Resolve()
	if kerr != nil {
		logger.Debug("keyring lookup failed", "error", kerr)
	}
	if secret != "" {
		session.SetCredential(secret)
		logger.Info("credential resolved", "source", src.String())
	} else if cfg.AIEnabled {
		logger.Warn("AI summaries enabled without an API key; summaries will be skipped until one is entered")
	}

	client, err := ai.NewClient(cfg.AIConfig(), logger)
	if err != nil {
		return err
	}
	collector := wizard.NewCollector(session, client, logger)
	saver := export.Saver{Fs: e.fs, Dir: cfg.ExportDir, Exporter: exporter, Now: e.now}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if lineMode {
		runner := tui.NewFallbackRunner(collector, saver, e.in, e.out)
		runner.ReadSecret = e.readSecret
		if _, err := runner.Run(ctx); err != nil && !errors.Is(err, tui.ErrQuit) {
			return err
		}
		return nil
	}

	a := app.New(app.Options{Collector: collector, Saver: saver, Logger: logger, Context: ctx})
	if _, err := tui.Run(a); err != nil {
		return fmt.Errorf("running terminal UI: %w", err)
	}
	if w, ok := a.Written(); ok {
		fmt.Fprintf(e.out, "Summary saved to %s\n", w.Path)
	}
	return nil
}

// Execute runs the root command. Called from main.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
