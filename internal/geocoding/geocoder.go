// Package geocoding resolves free-form addresses to coordinates.
package geocoding

import (
	"context"
	"errors"
	"strings"
)

// ErrNoMatch is returned by Resolve when no candidate query produced a result.
var ErrNoMatch = errors.New("geocoding: no match")

// Place is a single geocoder result
type Place struct {
	Latitude    float64
	Longitude   float64
	DisplayName string
}

// Geocoder looks up candidate places for an address. An empty slice with a
// nil error means the address was understood but nothing matched.
type Geocoder interface {
	Search(ctx context.Context, query string) ([]Place, error)
}

// Result is the place chosen by Resolve together with the query that found it.
type Result struct {
	Place Place
	Query string
	// Attempt is the zero-based index of the winning query; anything above
	// zero means a fallback query matched.
	Attempt int
}

// Fallback reports whether a query other than the first one matched.
func (r *Result) Fallback() bool {
	return r.Attempt > 0
}

// Resolve tries each query in order and returns the first result of the
// first query that matches. A lookup error stops the pipeline immediately.
func Resolve(ctx context.Context, g Geocoder, queries ...string) (*Result, error) {
	for i, q := range queries {
		if strings.TrimSpace(q) == "" {
			continue
		}

		places, err := g.Search(ctx, q)
		if err != nil {
			return nil, err
		}
		if len(places) > 0 {
			return &Result{Place: places[0], Query: q, Attempt: i}, nil
		}
	}
	return nil, ErrNoMatch
}

// JoinAddress joins address parts with ", " keeping empty parts in place,
// so "Main St", "", "Springfield" becomes "Main St, , Springfield".
func JoinAddress(parts ...string) string {
	return strings.Join(parts, ", ")
}
