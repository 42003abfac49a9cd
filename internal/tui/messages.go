package tui

import (
	"github.com/Harshal279/chatbot/internal/ai"
	"github.com/Harshal279/chatbot/internal/export"
	"github.com/Harshal279/chatbot/internal/wizard"
)

// ActionMsg carries a user action from a view to the app.
type ActionMsg struct {
	Action wizard.Action
}

// SummaryMsg delivers the result of an asynchronous phase summary.
// SessionID guards against results that arrive after a reset.
type SummaryMsg struct {
	SessionID string
	Phase     int
	Result    ai.Result
}

// SettingsSavedMsg closes the settings panel with the chosen values.
type SettingsSavedMsg struct {
	AIEnabled  bool
	Credential string
}

// SettingsCancelledMsg closes the settings panel without changes.
type SettingsCancelledMsg struct{}

// ExportRequestMsg asks the app to write the summary document.
type ExportRequestMsg struct{}

// ExportDoneMsg reports the outcome of an export.
type ExportDoneMsg struct {
	Written export.Written
	Err     error
}

// CtrlCResetMsg clears the pending quit confirmation.
type CtrlCResetMsg struct{}
