package app

// ImportResult holds the outcome of a progress import.
type ImportResult struct {
	Imported int
	Replaced int
	Skipped  int
	// Years whose history was recomputed, ascending.
	Years []int
}
