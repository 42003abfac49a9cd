package prompts

import _ "embed"

//go:embed summary/phase.md.tmpl
var PhaseSummaryTemplate string
