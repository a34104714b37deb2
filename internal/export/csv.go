// Package export serializes application views for download.
package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/pranshu911/jams/internal/models"
)

var header = []string{
	"Job Title",
	"Company",
	"Date Applied",
	"Status",
	"Platform",
	"Employment Type",
	"Remote",
	"Location",
	"Salary",
	"Referral",
	"HR Contact",
	"Follow Up",
	"Notes",
	"Archived",
}

// CSV writes records as delimited rows with a human-readable header.
// Absent optional fields are left blank. Pure formatting, no I/O beyond
// the writer.
func CSV(w io.Writer, records []models.Application) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			r.Title,
			r.Company,
			formatDate(r.DateApplied),
			r.Status,
			r.Platform,
			deref(r.EmploymentType),
			formatBool(r.IsRemote),
			deref(r.Location),
			formatSalary(r.Salary),
			deref(r.Referral),
			deref(r.HRContact),
			formatDate(r.FollowUp),
			deref(r.Notes),
			strconv.FormatBool(r.IsArchive),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func formatBool(b *bool) string {
	if b == nil {
		return ""
	}
	if *b {
		return "Yes"
	}
	return "No"
}

func formatSalary(s *float64) string {
	if s == nil {
		return ""
	}
	return strconv.FormatFloat(*s, 'f', -1, 64)
}
