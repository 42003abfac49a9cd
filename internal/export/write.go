package export

import (
	"bytes"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	"github.com/Harshal279/chatbot/internal/questions"
	"github.com/Harshal279/chatbot/internal/summary"
)

// Written describes a file produced by Write.
type Written struct {
	Path string
	Size int64
}

// Render returns the exported bytes of doc.
func Render(doc summary.Document, e Exporter) ([]byte, error) {
	var buf bytes.Buffer
	if err := e.Export(doc, &buf); err != nil {
		return nil, fmt.Errorf("rendering %s export: %w", e.Extension(), err)
	}
	return buf.Bytes(), nil
}

// Write renders doc and stores it under dir with the document's file name.
// The directory is created when missing; an existing file is replaced.
func Write(fs afero.Fs, dir string, doc summary.Document, e Exporter) (Written, error) {
	data, err := Render(doc, e)
	if err != nil {
		return Written{}, err
	}
	if dir == "" {
		dir = "."
	}
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return Written{}, fmt.Errorf("creating export directory: %w", err)
	}

	path := filepath.Join(dir, doc.Filename(e.Extension()))
	if err := afero.WriteFile(fs, path, data, 0o644); err != nil {
		return Written{}, fmt.Errorf("writing export: %w", err)
	}
	return Written{Path: path, Size: int64(len(data))}, nil
}

// Saver writes completed questionnaires with a fixed exporter and location.
type Saver struct {
	Fs       afero.Fs
	Dir      string
	Exporter Exporter
	Now      func() time.Time
}

// Document builds the export document for answers.
func (s Saver) Document(reg *questions.Registry, answers map[string]questions.Answer) (summary.Document, error) {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return summary.NewDocument(reg, answers, now())
}

// Save builds the document and writes it. Incomplete answers fail with
// summary.ErrIncomplete and nothing is written.
func (s Saver) Save(reg *questions.Registry, answers map[string]questions.Answer) (Written, error) {
	doc, err := s.Document(reg, answers)
	if err != nil {
		return Written{}, err
	}
	fs := s.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	e := s.Exporter
	if e == nil {
		e = &TextExporter{}
	}
	return Write(fs, s.Dir, doc, e)
}
