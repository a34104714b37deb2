package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pranshu911/jams/internal/models"
)

func withStatus(statuses ...string) []models.Application {
	out := make([]models.Application, len(statuses))
	for i, s := range statuses {
		out[i] = models.Application{Status: s}
	}
	return out
}

func withPlatform(platforms ...string) []models.Application {
	out := make([]models.Application, len(platforms))
	for i, p := range platforms {
		out[i] = models.Application{Platform: p}
	}
	return out
}

func TestStatusDistributionCanonicalOrder(t *testing.T) {
	records := withStatus("Interview", "Applied", "Applied", "Offer")

	dist := StatusDistribution(records)
	require.Len(t, dist, 5)

	assert.Equal(t, []CategoryCount{
		{Category: "Applied", Count: 2},
		{Category: "Phone Screen", Count: 0},
		{Category: "Interview", Count: 1},
		{Category: "Offer", Count: 1},
		{Category: "Rejected", Count: 0},
	}, dist)
}

func TestStatusDistributionCaseInsensitive(t *testing.T) {
	dist := StatusDistribution(withStatus("applied", "APPLIED", "phone screen"))
	assert.Equal(t, 2, dist[0].Count)
	assert.Equal(t, 1, dist[1].Count)
}

func TestStatusDistributionKeepsUnknownLiterals(t *testing.T) {
	dist := StatusDistribution(withStatus("Applied", "Ghosted", "Withdrawn", "Ghosted"))
	require.Len(t, dist, 7)

	// Unknowns follow the canonical five, alphabetically.
	assert.Equal(t, CategoryCount{Category: "Ghosted", Count: 2}, dist[5])
	assert.Equal(t, CategoryCount{Category: "Withdrawn", Count: 1}, dist[6])
}

func TestStatusDistributionCountsEveryRecordOnce(t *testing.T) {
	records := withStatus("Applied", "ghosted", "Interview", "Interview", "???")
	total := 0
	for _, c := range StatusDistribution(records) {
		total += c.Count
	}
	assert.Equal(t, len(records), total)
}

func TestTopCategoriesKeepAndOthers(t *testing.T) {
	// 3 LinkedIn, 2 Indeed, then five singletons: top-5 keeps the two
	// leaders plus three singletons and collapses the rest into Others.
	records := withPlatform(
		"LinkedIn", "LinkedIn", "LinkedIn",
		"Indeed", "Indeed",
		"A", "B", "C", "D", "E",
	)

	counts := TopCategories(records, FieldPlatform, 0)
	require.Len(t, counts, 6)

	assert.Equal(t, CategoryCount{Category: "LinkedIn", Count: 3}, counts[0])
	assert.Equal(t, CategoryCount{Category: "Indeed", Count: 2}, counts[1])
	assert.Equal(t, CategoryCount{Category: "A", Count: 1}, counts[2])
	assert.Equal(t, CategoryCount{Category: "B", Count: 1}, counts[3])
	assert.Equal(t, CategoryCount{Category: "C", Count: 1}, counts[4])
	assert.Equal(t, CategoryCount{Category: "Others", Count: 2}, counts[5])

	total := 0
	for _, c := range counts {
		total += c.Count
	}
	assert.Equal(t, len(records), total)
}

func TestTopCategoriesNoOthersWhenUnderK(t *testing.T) {
	counts := TopCategories(withPlatform("LinkedIn", "Indeed", "LinkedIn"), FieldPlatform, 5)
	require.Len(t, counts, 2)
	for _, c := range counts {
		assert.NotEqual(t, CategoryOthers, c.Category)
	}
}

func TestTopCategoriesAlphabeticalTieBreak(t *testing.T) {
	counts := TopCategories(withPlatform("Zeta", "Alpha", "Mid", "Mid"), FieldPlatform, 5)
	assert.Equal(t, []CategoryCount{
		{Category: "Mid", Count: 2},
		{Category: "Alpha", Count: 1},
		{Category: "Zeta", Count: 1},
	}, counts)
}

func TestTopCategoriesUnknownForEmptyValues(t *testing.T) {
	counts := TopCategories(withPlatform("LinkedIn", "", "  "), FieldPlatform, 5)
	assert.Contains(t, counts, CategoryCount{Category: "Unknown", Count: 2})
}

func TestTopCategoriesLocationUsesCityBeforeComma(t *testing.T) {
	sf1 := "San Francisco, CA"
	sf2 := "San Francisco, California"
	ny := "New York, NY"
	records := []models.Application{
		{Location: &sf1},
		{Location: &sf2},
		{Location: &ny},
		{Location: nil},
	}

	counts := TopCategories(records, FieldLocation, 6)
	assert.Equal(t, CategoryCount{Category: "San Francisco", Count: 2}, counts[0])
	assert.Contains(t, counts, CategoryCount{Category: "New York", Count: 1})
	assert.Contains(t, counts, CategoryCount{Category: "Unknown", Count: 1})
}

func TestTopCategoriesIdempotent(t *testing.T) {
	records := withPlatform("LinkedIn", "Indeed", "Indeed", "Other", "Referral", "Glassdoor", "Dice", "Dice")
	first := TopCategories(records, FieldPlatform, 0)
	second := TopCategories(records, FieldPlatform, 0)
	assert.Equal(t, first, second)
}

func TestDefaultTopK(t *testing.T) {
	assert.Equal(t, 5, DefaultTopK(FieldPlatform))
	assert.Equal(t, 6, DefaultTopK(FieldCompany))
	assert.Equal(t, 6, DefaultTopK(FieldTitle))
	assert.Equal(t, 6, DefaultTopK(FieldLocation))
}

func TestTypeDistribution(t *testing.T) {
	ft := models.EmploymentFullTime
	intern := models.EmploymentInternship
	records := []models.Application{
		{EmploymentType: &ft},
		{EmploymentType: &ft},
		{EmploymentType: &intern},
		{EmploymentType: nil},
	}

	counts := TypeDistribution(records)
	assert.Equal(t, []CategoryCount{
		{Category: "full-time", Count: 2},
		{Category: "part-time", Count: 0},
		{Category: "internship", Count: 1},
		{Category: "Unclassified", Count: 1},
	}, counts)
}
