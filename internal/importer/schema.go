// Package importer reads and writes reading progress in the document shape
// of the reading_progress collection, so existing history can be migrated
// in and backed up.
package importer

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// ProgressDocument is one stored day.
type ProgressDocument struct {
	Date              string         `json:"date"`
	Year              int            `json:"year"`
	ChaptersAssigned  []ChapterDoc   `json:"chapters_assigned"`
	CompletedChapters []CompletedDoc `json:"completed_chapters"`
	IsFullyComplete   bool           `json:"is_fully_complete"`
	CompletedAt       *Timestamp     `json:"completed_at,omitempty"`
	CreatedAt         *Timestamp     `json:"created_at,omitempty"`
	UpdatedAt         *Timestamp     `json:"updated_at,omitempty"`
}

type ChapterDoc struct {
	Book    string `json:"book"`
	Chapter int    `json:"chapter"`
}

type CompletedDoc struct {
	Book        string    `json:"book"`
	Chapter     int       `json:"chapter"`
	CompletedAt Timestamp `json:"completed_at"`
}

// LoadFile reads documents from path. See Decode for accepted layouts.
func LoadFile(path string) ([]ProgressDocument, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	docs, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return docs, nil
}

// Decode accepts either a JSON array of documents or one document per
// line, the two layouts mongoexport produces.
func Decode(r io.Reader) ([]ProgressDocument, error) {
	br := bufio.NewReader(r)
	first, err := peekNonSpace(br)
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(br)
	if first == '[' {
		var docs []ProgressDocument
		if err := dec.Decode(&docs); err != nil {
			return nil, err
		}
		return docs, nil
	}

	var docs []ProgressDocument
	for {
		var doc ProgressDocument
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			return docs, nil
		}
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", len(docs)+1, err)
		}
		docs = append(docs, doc)
	}
}

// Encode writes docs as an indented JSON array.
func Encode(w io.Writer, docs []ProgressDocument) error {
	if docs == nil {
		docs = []ProgressDocument{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(docs)
}

func peekNonSpace(br *bufio.Reader) (byte, error) {
	for {
		b, err := br.Peek(1)
		if err != nil {
			return 0, err
		}
		if !bytes.ContainsAny(b, " \t\r\n") {
			return b[0], nil
		}
		if _, err := br.ReadByte(); err != nil {
			return 0, err
		}
	}
}
