// Package summary derives the phase-grouped view and the export document from
// a set of committed answers. Everything here is a pure function of the
// registry and the answers; nothing is cached.
package summary

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/Harshal279/chatbot/internal/questions"
)

// Title is the fixed heading of the export document.
const Title = "BIGIN CRM PROPOSAL SUMMARY"

// FallbackCompany names the client in file names when company_name is unanswered.
const FallbackCompany = "Client"

// ErrIncomplete is returned when a document is requested before every
// question has been answered.
var ErrIncomplete = errors.New("questionnaire is not complete")

// Item is one answered question, labelled for display.
type Item struct {
	Key   string
	Label string
	Value questions.Answer
}

// Line renders the item as "Label: Value" on a single line. Line breaks
// inside free-text answers are folded into " / ".
func (it Item) Line() string {
	return it.Label + ": " + foldLines(it.Value.String())
}

func foldLines(s string) string {
	if !strings.ContainsAny(s, "\r\n") {
		return s
	}
	var parts []string
	for _, l := range strings.FieldsFunc(s, func(r rune) bool { return r == '\n' || r == '\r' }) {
		if l = strings.TrimSpace(l); l != "" {
			parts = append(parts, l)
		}
	}
	return strings.Join(parts, " / ")
}

// PhaseGroup holds the answered items of one phase.
type PhaseGroup struct {
	Phase int
	Name  string
	Items []Item
}

// PhaseView groups answers by phase in registry order. Phases without any
// answer are omitted.
func PhaseView(reg *questions.Registry, answers map[string]questions.Answer) []PhaseGroup {
	var groups []PhaseGroup
	for phase := 1; phase <= questions.NumPhases; phase++ {
		g := PhaseGroup{Phase: phase, Name: questions.PhaseName(phase)}
		for _, q := range reg.InPhase(phase) {
			if a, ok := answers[q.Key]; ok {
				g.Items = append(g.Items, Item{Key: q.Key, Label: Label(q.Key), Value: a})
			}
		}
		if len(g.Items) > 0 {
			groups = append(groups, g)
		}
	}
	return groups
}

// Label turns an answer key into a title-cased label: "company_name" becomes
// "Company Name".
func Label(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		words[i] = titleWord(w)
	}
	return strings.Join(words, " ")
}

// titleWord upper-cases the first letter of every letter run and lower-cases
// the rest, so "e-mail" becomes "E-Mail".
func titleWord(w string) string {
	var b strings.Builder
	prevLetter := false
	for _, r := range w {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
			continue
		}
		b.WriteRune(r)
		prevLetter = false
	}
	return b.String()
}

// Document is the flat export of a completed questionnaire.
type Document struct {
	Title     string
	Generated time.Time
	Company   string
	Items     []Item       // every answer in registry order
	Phases    []PhaseGroup // the same answers grouped by phase
}

// NewDocument builds the export document. It fails with ErrIncomplete unless
// every registry question has an answer.
func NewDocument(reg *questions.Registry, answers map[string]questions.Answer, now time.Time) (Document, error) {
	doc := Document{
		Title:     Title,
		Generated: now,
		Company:   company(answers),
	}

	for _, q := range reg.All() {
		a, ok := answers[q.Key]
		if !ok {
			return Document{}, fmt.Errorf("%w: %s unanswered", ErrIncomplete, q.Key)
		}
		doc.Items = append(doc.Items, Item{Key: q.Key, Label: Label(q.Key), Value: a})
	}
	doc.Phases = PhaseView(reg, answers)
	return doc, nil
}

// Lines returns one "Label: Value" line per answer.
func (d Document) Lines() []string {
	lines := make([]string, len(d.Items))
	for i, it := range d.Items {
		lines[i] = it.Line()
	}
	return lines
}

// Date returns the generation date as YYYY-MM-DD.
func (d Document) Date() string {
	return d.Generated.Format("2006-01-02")
}

// Filename returns the suggested export file name for the document.
func (d Document) Filename(ext string) string {
	return filename(d.Company, d.Generated, ext)
}

// Filename returns CRM_Proposal_<company>_<YYYYMMDD>.<ext>. The company is
// the company_name answer, or FallbackCompany.
func Filename(answers map[string]questions.Answer, now time.Time, ext string) string {
	return filename(company(answers), now, ext)
}

func filename(company string, now time.Time, ext string) string {
	return fmt.Sprintf("CRM_Proposal_%s_%s.%s", sanitize(company), now.Format("20060102"), ext)
}

func company(answers map[string]questions.Answer) string {
	if a, ok := answers[questions.CompanyKey]; ok {
		if name := strings.TrimSpace(a.String()); name != "" {
			return name
		}
	}
	return FallbackCompany
}

// sanitize replaces characters that cannot appear in a file name.
func sanitize(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '/' || r == '\\' || r == ':' || r == 0:
			return '_'
		case unicode.IsControl(r):
			return '_'
		}
		return r
	}, name)
}
