package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pranshu911/jams/internal/analytics"
	"github.com/pranshu911/jams/internal/auth"
	"github.com/pranshu911/jams/internal/services"
)

// AnalyticsHandler serves the chart view models.
type AnalyticsHandler struct {
	Applications *services.ApplicationService
}

func NewAnalyticsHandler(apps *services.ApplicationService) *AnalyticsHandler {
	return &AnalyticsHandler{Applications: apps}
}

// Timeline is GET /analytics/timeline?view=days|weeks|months.
func (h *AnalyticsHandler) Timeline(c *gin.Context) {
	owner, err := auth.OwnerFrom(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	records, err := h.Applications.ListActiveByOwner(owner)
	if err != nil {
		respondFetchError(c, err)
		return
	}
	view := analytics.TimeView(c.DefaultQuery("view", string(analytics.ViewWeeks)))
	c.JSON(http.StatusOK, gin.H{
		"view":    view,
		"buckets": analytics.Timeline(records, view, time.Now()),
	})
}

// Breakdown is GET /analytics/breakdown?field=status|platform|company|title|location|type.
func (h *AnalyticsHandler) Breakdown(c *gin.Context) {
	owner, err := auth.OwnerFrom(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	records, err := h.Applications.ListActiveByOwner(owner)
	if err != nil {
		respondFetchError(c, err)
		return
	}

	field := analytics.Field(c.DefaultQuery("field", string(analytics.FieldStatus)))
	var counts []analytics.CategoryCount
	switch field {
	case analytics.FieldStatus:
		counts = analytics.StatusDistribution(records)
	case analytics.FieldEmploymentType:
		counts = analytics.TypeDistribution(records)
	case analytics.FieldPlatform, analytics.FieldCompany, analytics.FieldTitle, analytics.FieldLocation:
		k, _ := strconv.Atoi(c.Query("top"))
		counts = analytics.TopCategories(records, field, k)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown field: " + string(field)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"field": field, "counts": counts})
}

// Metrics is GET /analytics/metrics: the dashboard's rate cards.
func (h *AnalyticsHandler) Metrics(c *gin.Context) {
	owner, err := auth.OwnerFrom(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	records, err := h.Applications.ListByOwner(owner)
	if err != nil {
		respondFetchError(c, err)
		return
	}
	c.JSON(http.StatusOK, analytics.Summary(records))
}
