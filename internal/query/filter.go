// Package query implements the table pipeline: conjunctive
// status/platform/date filters, free-text search, fixed-size pagination
// and a debounced view that recomputes after input settles.
package query

import (
	"strings"
	"time"

	"github.com/pranshu911/jams/internal/models"
)

// Date range selectors for Filter.Range.
const (
	RangeNone   = ""
	RangeToday  = "today"
	RangePast7  = "past-7-days"
	RangePast30 = "past-30-days"
	RangeCustom = "custom"
)

// Filter is one complete set of table parameters. Empty status or
// platform sets mean "no filter"; a custom range missing either
// endpoint is inert.
type Filter struct {
	Statuses  []string   `json:"statuses"`
	Platforms []string   `json:"platforms"`
	Range     string     `json:"range"`
	From      *time.Time `json:"from"`
	To        *time.Time `json:"to"`
	Search    string     `json:"search"`
}

// Apply returns the records satisfying every set filter, in input
// order. It never mutates the input slice.
func Apply(records []models.Application, f Filter, now time.Time) []models.Application {
	out := make([]models.Application, 0, len(records))
	for _, r := range records {
		if !matchSet(r.Status, f.Statuses) {
			continue
		}
		if !matchSet(r.Platform, f.Platforms) {
			continue
		}
		if !matchDate(r.DateApplied, f, now) {
			continue
		}
		if !matchSearch(r, f.Search) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matchSet(value string, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	value = strings.TrimSpace(value)
	for _, s := range selected {
		if strings.EqualFold(value, strings.TrimSpace(s)) {
			return true
		}
	}
	return false
}

func matchDate(applied *time.Time, f Filter, now time.Time) bool {
	loc := now.Location()
	today := truncateDay(now, loc)

	var from, to time.Time
	switch f.Range {
	case RangeToday:
		from, to = today, today
	case RangePast7:
		from, to = today.AddDate(0, 0, -6), today
	case RangePast30:
		from, to = today.AddDate(0, 0, -29), today
	case RangeCustom:
		if f.From == nil || f.To == nil {
			return true
		}
		from, to = truncateDay(*f.From, loc), truncateDay(*f.To, loc)
	default:
		return true
	}

	if applied == nil {
		return false
	}
	d := truncateDay(*applied, loc)
	return !d.Before(from) && !d.After(to)
}

// matchSearch is a case-insensitive substring match against title,
// company and location; any one field matching is enough.
func matchSearch(r models.Application, q string) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(r.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(r.Company), q) {
		return true
	}
	return r.Location != nil && strings.Contains(strings.ToLower(*r.Location), q)
}

func truncateDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
