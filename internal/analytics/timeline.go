package analytics

import (
	"fmt"
	"time"

	"github.com/pranshu911/jams/internal/models"
)

// TimeView selects the bucket granularity for Timeline.
type TimeView string

const (
	ViewDays   TimeView = "days"
	ViewWeeks  TimeView = "weeks"
	ViewMonths TimeView = "months"
)

// TimelineBuckets is the fixed number of buckets every view produces.
const TimelineBuckets = 8

// Bucket is one time interval and the number of applications whose
// date_applied falls inside it.
type Bucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Timeline partitions the records' date_applied values into the most
// recent 8 buckets of the requested granularity, oldest first. The last
// bucket always contains now. Records without a date are skipped.
// Unknown views fall back to weeks.
func Timeline(records []models.Application, view TimeView, now time.Time) []Bucket {
	loc := now.Location()
	today := dayOf(now, loc)

	switch view {
	case ViewDays:
		return dayBuckets(records, today, loc)
	case ViewMonths:
		return monthBuckets(records, today, loc)
	default:
		return weekBuckets(records, today, loc)
	}
}

func dayBuckets(records []models.Application, today time.Time, loc *time.Location) []Bucket {
	buckets := make([]Bucket, 0, TimelineBuckets)
	for i := TimelineBuckets - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		n := 0
		for _, r := range records {
			if r.DateApplied == nil {
				continue
			}
			if dayOf(*r.DateApplied, loc).Equal(day) {
				n++
			}
		}
		buckets = append(buckets, Bucket{Label: day.Format("Jan 2"), Count: n})
	}
	return buckets
}

func weekBuckets(records []models.Application, today time.Time, loc *time.Location) []Bucket {
	monday := startOfWeek(today)
	buckets := make([]Bucket, 0, TimelineBuckets)
	for i := TimelineBuckets - 1; i >= 0; i-- {
		start := monday.AddDate(0, 0, -7*i)
		end := start.AddDate(0, 0, 6)
		n := 0
		for _, r := range records {
			if r.DateApplied == nil {
				continue
			}
			d := dayOf(*r.DateApplied, loc)
			if !d.Before(start) && !d.After(end) {
				n++
			}
		}
		label := fmt.Sprintf("%s - %s", start.Format("Jan 2"), end.Format("Jan 2"))
		buckets = append(buckets, Bucket{Label: label, Count: n})
	}
	return buckets
}

func monthBuckets(records []models.Application, today time.Time, loc *time.Location) []Bucket {
	first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, loc)
	buckets := make([]Bucket, 0, TimelineBuckets)
	for i := TimelineBuckets - 1; i >= 0; i-- {
		month := first.AddDate(0, -i, 0)
		n := 0
		for _, r := range records {
			if r.DateApplied == nil {
				continue
			}
			d := r.DateApplied.In(loc)
			if d.Year() == month.Year() && d.Month() == month.Month() {
				n++
			}
		}
		buckets = append(buckets, Bucket{Label: month.Format("Jan 2006"), Count: n})
	}
	return buckets
}

// startOfWeek returns the Monday of the week containing day.
func startOfWeek(day time.Time) time.Time {
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}
