// Package corpus holds the fixed, ordered catalogue of readable chapters.
package corpus

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/lectio/internal/domain"
)

// Book is a named book and its chapter count.
type Book struct {
	Name     string
	Chapters int
}

// Index is an immutable ordered sequence of chapters addressed by zero-based
// offset. It is safe for concurrent use.
type Index struct {
	chapters []domain.Chapter
	books    map[string]int
}

// NewIndex flattens books into a chapter index.
func NewIndex(books []Book) *Index {
	idx := &Index{books: make(map[string]int, len(books))}
	for _, b := range books {
		idx.books[b.Name] = b.Chapters
		for c := 1; c <= b.Chapters; c++ {
			idx.chapters = append(idx.chapters, domain.Chapter{Book: b.Name, Chapter: c})
		}
	}
	return idx
}

// Len returns the total number of chapters.
func (x *Index) Len() int {
	return len(x.chapters)
}

// Slice returns a copy of chapters in [start, end). Bounds are clamped, so
// slicing past the end of an exhausted index yields an empty list.
func (x *Index) Slice(start, end int) []domain.Chapter {
	if start < 0 {
		start = 0
	}
	if end > len(x.chapters) {
		end = len(x.chapters)
	}
	if start >= end {
		return []domain.Chapter{}
	}
	out := make([]domain.Chapter, end-start)
	copy(out, x.chapters[start:end])
	return out
}

// Contains reports whether ch names a chapter of a known book.
func (x *Index) Contains(ch domain.Chapter) bool {
	n, ok := x.books[ch.Book]
	return ok && ch.Chapter >= 1 && ch.Chapter <= n
}

// ParseChapter parses "Book N" (book names may contain spaces, e.g.
// "1 John 3") into a chapter of this index.
func (x *Index) ParseChapter(s string) (domain.Chapter, error) {
	s = strings.TrimSpace(s)
	i := strings.LastIndex(s, " ")
	if i <= 0 {
		return domain.Chapter{}, fmt.Errorf("chapter %q: expected \"Book N\"", s)
	}
	n, err := strconv.Atoi(s[i+1:])
	if err != nil {
		return domain.Chapter{}, fmt.Errorf("chapter %q: invalid chapter number", s)
	}
	ch := domain.Chapter{Book: strings.TrimSpace(s[:i]), Chapter: n}
	if !x.Contains(ch) {
		return domain.Chapter{}, fmt.Errorf("chapter %q: not in corpus", s)
	}
	return ch, nil
}
