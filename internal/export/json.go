package export

import (
	"encoding/json"
	"io"

	"github.com/Harshal279/chatbot/internal/questions"
	"github.com/Harshal279/chatbot/internal/summary"
)

// record is the structured shape shared by the JSON and YAML exporters.
// Answers is a list so that registry order survives the encoding.
type record struct {
	Title     string        `json:"title" yaml:"title"`
	Company   string        `json:"company" yaml:"company"`
	Generated string        `json:"generated" yaml:"generated"`
	Answers   []answerEntry `json:"answers" yaml:"answers"`
}

type answerEntry struct {
	Phase int              `json:"phase" yaml:"phase"`
	Key   string           `json:"key" yaml:"key"`
	Label string           `json:"label" yaml:"label"`
	Value questions.Answer `json:"value" yaml:"value"`
}

func newRecord(doc summary.Document) record {
	r := record{
		Title:     doc.Title,
		Company:   doc.Company,
		Generated: doc.Date(),
		Answers:   []answerEntry{},
	}
	for _, g := range doc.Phases {
		for _, it := range g.Items {
			r.Answers = append(r.Answers, answerEntry{Phase: g.Phase, Key: it.Key, Label: it.Label, Value: it.Value})
		}
	}
	return r
}

// JSONExporter exports the document as indented JSON.
type JSONExporter struct{}

// Export writes doc as JSON.
func (e *JSONExporter) Export(doc summary.Document, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(newRecord(doc))
}

// Extension returns the file extension for this format.
func (e *JSONExporter) Extension() string { return "json" }

// MIMEType returns the media type of the output.
func (e *JSONExporter) MIMEType() string { return "application/json" }
