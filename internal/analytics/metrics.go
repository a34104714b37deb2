package analytics

import (
	"math"
	"strings"

	"github.com/pranshu911/jams/internal/models"
)

// Metrics are the dashboard's derived numbers. Rates are percentages
// rounded to the nearest integer and zero whenever their denominator is.
type Metrics struct {
	TotalActive   int `json:"total_active"`
	Interviews    int `json:"interviews"`
	Offers        int `json:"offers"`
	Rejected      int `json:"rejected"`
	ResponseRate  int `json:"response_rate"`
	OfferRate     int `json:"offer_rate"`
	RejectionRate int `json:"rejection_rate"`

	// ArchivedCount is the one figure computed over the full record set.
	ArchivedCount int `json:"archived_count"`
}

// Summary computes Metrics from the full record set; rates use the
// active subset only.
func Summary(records []models.Application) Metrics {
	var m Metrics
	responded := 0
	for _, r := range records {
		if r.IsArchive {
			m.ArchivedCount++
			continue
		}
		m.TotalActive++
		if !strings.EqualFold(strings.TrimSpace(r.Status), models.StatusApplied) {
			responded++
		}
		switch {
		case strings.EqualFold(strings.TrimSpace(r.Status), models.StatusInterview):
			m.Interviews++
		case strings.EqualFold(strings.TrimSpace(r.Status), models.StatusOffer):
			m.Offers++
		case strings.EqualFold(strings.TrimSpace(r.Status), models.StatusRejected):
			m.Rejected++
		}
	}

	m.ResponseRate = percent(responded, m.TotalActive)
	m.OfferRate = percent(m.Offers, m.Offers+m.Interviews)
	m.RejectionRate = percent(m.Rejected, m.TotalActive)
	return m
}

func percent(num, den int) int {
	if den == 0 {
		return 0
	}
	return int(math.Round(float64(num) / float64(den) * 100))
}
