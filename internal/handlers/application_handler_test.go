package handlers

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ctxWithQuery(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/v1/applications?"+rawQuery, nil)
	return c
}

func TestParseFilter(t *testing.T) {
	c := ctxWithQuery(t, "status=Applied,Interview&platform=LinkedIn&range=custom&from=2024-01-01&to=2024-01-31&q=corp&page=3")

	f, page, err := parseFilter(c)
	require.NoError(t, err)

	assert.Equal(t, []string{"Applied", "Interview"}, f.Statuses)
	assert.Equal(t, []string{"LinkedIn"}, f.Platforms)
	assert.Equal(t, "custom", f.Range)
	assert.Equal(t, "corp", f.Search)
	assert.Equal(t, 3, page)
	require.NotNil(t, f.From)
	require.NotNil(t, f.To)
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), *f.From)
}

func TestParseFilterDefaults(t *testing.T) {
	f, page, err := parseFilter(ctxWithQuery(t, ""))
	require.NoError(t, err)

	assert.Empty(t, f.Statuses)
	assert.Empty(t, f.Platforms)
	assert.Empty(t, f.Range)
	assert.Nil(t, f.From)
	assert.Nil(t, f.To)
	assert.Equal(t, 1, page)
}

func TestParseFilterRejectsBadDates(t *testing.T) {
	_, _, err := parseFilter(ctxWithQuery(t, "from=01/15/2024"))
	assert.Error(t, err)
}

func TestSplitParam(t *testing.T) {
	assert.Nil(t, splitParam(""))
	assert.Equal(t, []string{"a", "b"}, splitParam("a, b,"))
}
