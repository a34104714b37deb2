package query

import "github.com/pranshu911/jams/internal/models"

// DefaultPageSize matches the table's fixed page length.
const DefaultPageSize = 20

// Page is one slice of a filtered result plus enough arithmetic for a
// caller to render pagination controls.
type Page struct {
	Items     []models.Application `json:"items"`
	Total     int                  `json:"total"`
	PageSize  int                  `json:"page_size"`
	PageCount int                  `json:"page_count"`
	Number    int                  `json:"page"`
}

// Paginate slices records into the requested 1-based page. Out-of-range
// page numbers clamp to the nearest valid page; an empty input yields
// page 1 of 0 with no items. size <= 0 falls back to DefaultPageSize.
func Paginate(records []models.Application, page, size int) Page {
	if size <= 0 {
		size = DefaultPageSize
	}
	total := len(records)
	pageCount := (total + size - 1) / size

	switch {
	case pageCount == 0:
		page = 1
	case page < 1:
		page = 1
	case page > pageCount:
		page = pageCount
	}

	start := (page - 1) * size
	end := start + size
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page{
		Items:     records[start:end],
		Total:     total,
		PageSize:  size,
		PageCount: pageCount,
		Number:    page,
	}
}
