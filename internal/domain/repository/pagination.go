package repository

// Page selects a window of a listing. Offset is derived from a 1-based page number.
type Page struct {
	Number int
	Limit  int
}

// Offset returns the row offset of the page.
func (p Page) Offset() int {
	if p.Number < 1 {
		return 0
	}

	return (p.Number - 1) * p.Limit
}
