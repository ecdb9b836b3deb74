// Package jsonl writes per-line gradient colors as JSON Lines.
package jsonl

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
)

// Record is the color assignment of one line of text. Colors holds one entry
// per glyph that is not whitespace, in order.
type Record struct {
	Line   int      `json:"line"`
	Glyphs []string `json:"glyphs"`
	Colors []string `json:"colors"`
}

// Writer encodes one Record per line.
type Writer struct {
	enc *json.Encoder
}

// NewWriter creates a Writer that writes to w.
func NewWriter(w io.Writer) *Writer {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &Writer{enc: enc}
}

// Write encodes r followed by a newline.
func (w *Writer) Write(r Record) error {
	if r.Glyphs == nil {
		r.Glyphs = []string{}
	}
	if r.Colors == nil {
		r.Colors = []string{}
	}
	return w.enc.Encode(r)
}

// Saver appends Records to JSONL files.
type Saver struct{}

// NewSaver creates a new Saver.
func NewSaver() *Saver {
	return &Saver{}
}

// Save appends records to a JSONL file, creating parent directories if needed.
func (s *Saver) Save(path string, records []Record) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	w := NewWriter(f)
	for _, r := range records {
		if err := w.Write(r); err != nil {
			return err
		}
	}
	return nil
}
