package domain

import "time"

// Chapter identifies a single unit of the reading corpus.
type Chapter struct {
	Book    string `json:"book"`
	Chapter int    `json:"chapter"`
}

// Key returns the identity used for completion matching.
func (c Chapter) Key() ChapterKey {
	return ChapterKey{Book: c.Book, Chapter: c.Chapter}
}

// ChapterKey is the comparable identity of a chapter (book + chapter number).
type ChapterKey struct {
	Book    string
	Chapter int
}

// CompletedChapter is a chapter reported as read, stamped with the time it
// was first reported.
type CompletedChapter struct {
	Book        string    `json:"book"`
	Chapter     int       `json:"chapter"`
	CompletedAt time.Time `json:"completed_at"`
}

// Key returns the identity used for completion matching.
func (c CompletedChapter) Key() ChapterKey {
	return ChapterKey{Book: c.Book, Chapter: c.Chapter}
}

// AsChapter drops the completion timestamp.
func (c CompletedChapter) AsChapter() Chapter {
	return Chapter{Book: c.Book, Chapter: c.Chapter}
}
