package incident

import (
	"errors"
	"fmt"
	"time"
)

// MinYear is the earliest year the upstream source serves in its
// current page format.
const MinYear = 2011

// DefaultURLTemplate addresses the public crime log. The two verbs are
// filled with month and year.
const DefaultURLTemplate = "https://police.gatech.edu/crimelog?month=%d&year=%d"

// ErrInvalidMonth is returned for months outside 1 through 12.
var ErrInvalidMonth = errors.New("month must be between 1 and 12")

// Query identifies one month of the incident log.
//
// Example:
//
//	query, err := incident.NewQuery(8, 2026)
//	if err != nil {
//	    // usage error, nothing fetched
//	}
//	html, err := client.GetString(ctx, query.URL())
type Query struct {
	Month int
	Year  int

	// URLTemplate overrides DefaultURLTemplate when non-empty. It must
	// contain two integer verbs, month first.
	URLTemplate string
}

// NewQuery validates month and year and builds a Query.
//
// Rejected values never reach the network: month outside 1..12 and year
// outside MinYear..current are usage errors.
func NewQuery(month, year int) (*Query, error) {
	if month < 1 || month > 12 {
		return nil, ErrInvalidMonth
	}
	current := time.Now().Year()
	if year < MinYear || year > current {
		return nil, fmt.Errorf("year must be between %d and %d", MinYear, current)
	}
	return &Query{Month: month, Year: year}, nil
}

// URL returns the page address for this query.
func (q *Query) URL() string {
	template := q.URLTemplate
	if template == "" {
		template = DefaultURLTemplate
	}
	return fmt.Sprintf(template, q.Month, q.Year)
}

// OutputFile returns the conventional output name, <month>-<year>.json,
// with no zero padding.
func (q *Query) OutputFile() string {
	return fmt.Sprintf("%d-%d.json", q.Month, q.Year)
}
