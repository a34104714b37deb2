// Package analytics turns a flat slice of application records into
// chart-ready view models: time-bucketed counts, categorical
// distributions and derived rate metrics. Everything here is a pure
// function of the record slice plus an injected reference time, so the
// same inputs always produce the same output.
package analytics

import (
	"time"

	"github.com/pranshu911/jams/internal/models"
)

// Active returns the non-archived subset of records, preserving order.
func Active(records []models.Application) []models.Application {
	out := make([]models.Application, 0, len(records))
	for _, r := range records {
		if !r.IsArchive {
			out = append(out, r)
		}
	}
	return out
}

// dayOf truncates t to midnight in loc. All bucket boundary math runs at
// day granularity in the caller's timezone.
func dayOf(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
