package analytics

import (
	"sort"
	"strings"

	"github.com/pranshu911/jams/internal/models"
)

// Field names a groupable record attribute.
type Field string

const (
	FieldStatus         Field = "status"
	FieldPlatform       Field = "platform"
	FieldCompany        Field = "company"
	FieldTitle          Field = "title"
	FieldLocation       Field = "location"
	FieldEmploymentType Field = "type"
)

// Synthetic category names.
const (
	CategoryOthers       = "Others"
	CategoryUnknown      = "Unknown"
	CategoryUnclassified = "Unclassified"
)

// CategoryCount is one slice of a distribution.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// DefaultTopK is the per-screen keep count for high-cardinality fields.
func DefaultTopK(field Field) int {
	if field == FieldPlatform {
		return 5
	}
	return 6
}

// StatusDistribution counts records per status. The five canonical
// statuses always appear, in canonical order, even at zero; matching is
// case-insensitive. Unrecognized literals are kept verbatim as their own
// categories, appended in alphabetical order.
func StatusDistribution(records []models.Application) []CategoryCount {
	canonical := make(map[string]int, len(models.CanonicalStatuses))
	unknown := map[string]int{}
	for _, r := range records {
		s := strings.TrimSpace(r.Status)
		if c, ok := canonicalStatus(s); ok {
			canonical[c]++
		} else {
			unknown[s]++
		}
	}

	out := make([]CategoryCount, 0, len(models.CanonicalStatuses)+len(unknown))
	for _, s := range models.CanonicalStatuses {
		out = append(out, CategoryCount{Category: s, Count: canonical[s]})
	}
	extras := make([]string, 0, len(unknown))
	for s := range unknown {
		extras = append(extras, s)
	}
	sort.Strings(extras)
	for _, s := range extras {
		out = append(out, CategoryCount{Category: s, Count: unknown[s]})
	}
	return out
}

// TypeDistribution counts records per employment type. The three known
// types always appear in order; records without a type fall under
// Unclassified, which is appended only when non-empty.
func TypeDistribution(records []models.Application) []CategoryCount {
	known := []string{models.EmploymentFullTime, models.EmploymentPartTime, models.EmploymentInternship}
	counts := map[string]int{}
	unclassified := 0
	for _, r := range records {
		if r.EmploymentType == nil || strings.TrimSpace(*r.EmploymentType) == "" {
			unclassified++
			continue
		}
		counts[strings.ToLower(strings.TrimSpace(*r.EmploymentType))]++
	}
	out := make([]CategoryCount, 0, len(known)+1)
	for _, t := range known {
		out = append(out, CategoryCount{Category: t, Count: counts[t]})
		delete(counts, t)
	}
	extras := make([]string, 0, len(counts))
	for t := range counts {
		extras = append(extras, t)
	}
	sort.Strings(extras)
	for _, t := range extras {
		out = append(out, CategoryCount{Category: t, Count: counts[t]})
	}
	if unclassified > 0 {
		out = append(out, CategoryCount{Category: CategoryUnclassified, Count: unclassified})
	}
	return out
}

// TopCategories groups records by the given high-cardinality field and
// returns the k highest-count categories, sorted by count descending
// with ties broken alphabetically. When more than k distinct values
// exist the remainder is collapsed into a trailing Others bucket.
// Empty or missing values count under Unknown. Pass k <= 0 for the
// field's default.
func TopCategories(records []models.Application, field Field, k int) []CategoryCount {
	if k <= 0 {
		k = DefaultTopK(field)
	}
	counts := map[string]int{}
	for _, r := range records {
		counts[categoryValue(r, field)]++
	}

	all := make([]CategoryCount, 0, len(counts))
	for c, n := range counts {
		all = append(all, CategoryCount{Category: c, Count: n})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Count != all[j].Count {
			return all[i].Count > all[j].Count
		}
		return all[i].Category < all[j].Category
	})

	if len(all) <= k {
		return all
	}
	kept := all[:k:k]
	rest := 0
	for _, c := range all[k:] {
		rest += c.Count
	}
	return append(kept, CategoryCount{Category: CategoryOthers, Count: rest})
}

func canonicalStatus(s string) (string, bool) {
	for _, c := range models.CanonicalStatuses {
		if strings.EqualFold(s, c) {
			return c, true
		}
	}
	return "", false
}

func categoryValue(r models.Application, field Field) string {
	var v string
	switch field {
	case FieldPlatform:
		v = r.Platform
	case FieldCompany:
		v = r.Company
	case FieldTitle:
		v = r.Title
	case FieldLocation:
		if r.Location != nil {
			// Only the city portion, before the first comma.
			v, _, _ = strings.Cut(*r.Location, ",")
		}
	case FieldEmploymentType:
		if r.EmploymentType != nil {
			v = *r.EmploymentType
		}
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return CategoryUnknown
	}
	return v
}
