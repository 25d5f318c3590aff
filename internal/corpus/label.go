package corpus

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/lectio/internal/domain"
)

// Label renders a compact human-readable description of a day's chapters:
//
//	Genesis 1
//	Genesis 1–3
//	Genesis 1, 3
//	Genesis 50 → Exodus 1
func Label(chapters []domain.Chapter) string {
	switch len(chapters) {
	case 0:
		return ""
	case 1:
		return fmt.Sprintf("%s %d", chapters[0].Book, chapters[0].Chapter)
	}

	first, last := chapters[0], chapters[len(chapters)-1]
	for _, c := range chapters[1:] {
		if c.Book != first.Book {
			return fmt.Sprintf("%s %d → %s %d", first.Book, first.Chapter, last.Book, last.Chapter)
		}
	}

	contiguous := true
	for i, c := range chapters {
		if c.Chapter != first.Chapter+i {
			contiguous = false
			break
		}
	}
	if contiguous {
		return fmt.Sprintf("%s %d–%d", first.Book, first.Chapter, last.Chapter)
	}

	nums := make([]string, len(chapters))
	for i, c := range chapters {
		nums[i] = strconv.Itoa(c.Chapter)
	}
	return first.Book + " " + strings.Join(nums, ", ")
}
