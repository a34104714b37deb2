package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pranshu911/jams/internal/auth"
	"github.com/pranshu911/jams/internal/dtos"
	"github.com/pranshu911/jams/internal/export"
	"github.com/pranshu911/jams/internal/query"
	"github.com/pranshu911/jams/internal/services"
)

// ApplicationHandler serves the CRUD table endpoints.
type ApplicationHandler struct {
	Applications *services.ApplicationService
}

func NewApplicationHandler(apps *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{Applications: apps}
}

// List is GET /applications: the filtered, searched, paginated table
// view over the owner's active records.
func (h *ApplicationHandler) List(c *gin.Context) {
	owner, err := auth.OwnerFrom(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	filter, page, err := parseFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	records, err := h.Applications.ListActiveByOwner(owner)
	if err != nil {
		respondFetchError(c, err)
		return
	}
	filtered := query.Apply(records, filter, time.Now())
	c.JSON(http.StatusOK, query.Paginate(filtered, page, query.DefaultPageSize))
}

// ListArchived is GET /applications/archived.
func (h *ApplicationHandler) ListArchived(c *gin.Context) {
	owner, err := auth.OwnerFrom(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	records, err := h.Applications.ListArchivedByOwner(owner)
	if err != nil {
		respondFetchError(c, err)
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	c.JSON(http.StatusOK, query.Paginate(records, page, query.DefaultPageSize))
}

// Create is POST /applications.
func (h *ApplicationHandler) Create(c *gin.Context) {
	owner, err := auth.OwnerFrom(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	var req dtos.CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	app, err := h.Applications.Create(owner, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create application: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, app)
}

// BulkUpdate is PATCH /applications: one patch applied to one or many
// ids. Archive, unarchive and status bulk-changes all come through here.
func (h *ApplicationHandler) BulkUpdate(c *gin.Context) {
	owner, err := auth.OwnerFrom(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	var req dtos.BulkUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	if err := h.Applications.BulkUpdate(owner, req.IDs, req.Patch); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update applications: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": len(req.IDs)})
}

// BulkDelete is DELETE /applications.
func (h *ApplicationHandler) BulkDelete(c *gin.Context) {
	owner, err := auth.OwnerFrom(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	var req dtos.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	if err := h.Applications.BulkDelete(owner, req.IDs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete applications: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": len(req.IDs)})
}

// Export is GET /applications/export: the owner's full record set as a
// CSV attachment. The same filter params as List apply when present.
func (h *ApplicationHandler) Export(c *gin.Context) {
	owner, err := auth.OwnerFrom(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	filter, _, err := parseFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	records, err := h.Applications.ListByOwner(owner)
	if err != nil {
		respondFetchError(c, err)
		return
	}
	records = query.Apply(records, filter, time.Now())

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="applications.csv"`)
	if err := export.CSV(c.Writer, records); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Export failed: " + err.Error()})
	}
}

// parseFilter reads the table query params. Repeated values use commas:
// status=Applied,Interview&platform=LinkedIn&range=past-7-days&q=corp.
func parseFilter(c *gin.Context) (query.Filter, int, error) {
	f := query.Filter{
		Statuses:  splitParam(c.Query("status")),
		Platforms: splitParam(c.Query("platform")),
		Range:     c.Query("range"),
		Search:    c.Query("q"),
	}
	if from := c.Query("from"); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			return f, 0, errors.New("invalid from date, want YYYY-MM-DD")
		}
		f.From = &t
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			return f, 0, errors.New("invalid to date, want YYYY-MM-DD")
		}
		f.To = &t
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	return f, page, nil
}

func splitParam(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// respondFetchError keeps "load failed" distinct from an empty result.
func respondFetchError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrSourceUnavailable) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Could not load applications: " + err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
