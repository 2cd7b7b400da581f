//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"arxiv_daily_service/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testReportSettings(t *testing.T) *config.ReportSettings {
	t.Helper()

	dir := t.TempDir()
	return &config.ReportSettings{
		JSONPath: filepath.Join(dir, "arxiv-daily.json"),
		HTMLPath: filepath.Join(dir, "index.html"),
		Title:    "Daily ArXiv Papers",
	}
}

func TestReportHandler_GetHTMLReport_Success(t *testing.T) {
	settings := testReportSettings(t)
	require.NoError(t, os.WriteFile(settings.HTMLPath, []byte("<html>report</html>"), 0600))

	handler := NewReportHandler(settings)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/index.html", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.GetHTMLReport(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "report")
}

func TestReportHandler_GetHTMLReport_NotGenerated(t *testing.T) {
	handler := NewReportHandler(testReportSettings(t))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/index.html", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.GetHTMLReport(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "report not generated yet")
}

func TestReportHandler_GetJSONArchive_Success(t *testing.T) {
	settings := testReportSettings(t)
	require.NoError(t, os.WriteFile(settings.JSONPath, []byte(`{"Survey": {}}`), 0600))

	handler := NewReportHandler(settings)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/arxiv-daily.json", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.GetJSONArchive(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Survey")
}
