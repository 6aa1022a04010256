package repositories

import "strconv"

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Page is a sanitized listing window. Build one with ParsePage.
type Page struct {
	Number int
	Limit  int
}

// ParsePage turns raw query values into a Page. Non-integer or < 1
// values fall back to the defaults instead of erroring.
func ParsePage(rawPage, rawLimit string) Page {
	page, err := strconv.Atoi(rawPage)
	if err != nil || page < 1 {
		page = DefaultPage
	}
	limit, err := strconv.Atoi(rawLimit)
	if err != nil || limit < 1 {
		limit = DefaultLimit
	}
	return Page{Number: page, Limit: limit}
}

// Offset returns the number of rows to skip for this page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Limit
}
