package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bio-scraper/pkg/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func uploadCSV(t *testing.T, router *gin.Engine, csvBody string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "bio_urls.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte(csvBody))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/jobs", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func newTestServer() *Server {
	cfg := config.Default()
	cfg.TimeoutSeconds = 2
	cfg.Workers = 2
	return New(cfg, nil)
}

func TestJobLifecycle(t *testing.T) {
	page := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`<html><body><div>
			John Smith enjoys golf and hiking. He is admitted to the State Bar.
		</div></body></html>`))
	}))
	defer page.Close()

	srv := newTestServer()
	router := srv.Router()

	rec := uploadCSV(t, router, fmt.Sprintf("URL,Target Name\n%s,John Smith\n", page.URL))
	require.Equal(t, http.StatusAccepted, rec.Code)

	var created struct {
		ID    string `json:"id"`
		Total int    `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)
	assert.Equal(t, 1, created.Total)

	status := waitForJob(t, router, created.ID)
	assert.Equal(t, 1, status.Done)
	require.NotEmpty(t, status.Logs)
	assert.Contains(t, status.Logs[0], "John Smith")

	req := httptest.NewRequest(http.MethodGet, "/api/jobs/"+created.ID+"/results.csv", nil)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	require.Equal(t, http.StatusOK, res.Code)
	body := res.Body.String()
	assert.True(t, strings.HasPrefix(body, "Name,URL,"))
	assert.Contains(t, body, "John Smith")
	assert.Contains(t, body, "golf, hiking")

	req = httptest.NewRequest(http.MethodGet, "/api/jobs/"+created.ID+"/context", nil)
	res = httptest.NewRecorder()
	router.ServeHTTP(res, req)
	require.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, res.Body.String(), "<mark>")
}

func TestInvalidCSVRejectedBeforeAnyFetch(t *testing.T) {
	srv := newTestServer()
	router := srv.Router()

	rec := uploadCSV(t, router, "URL,Firm\nhttps://example.com,Friedman\n")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Target Name")
}

func TestUnknownJob(t *testing.T) {
	srv := newTestServer()
	router := srv.Router()

	req := httptest.NewRequest(http.MethodGet, "/api/jobs/nope", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

type jobStatus struct {
	Status string   `json:"status"`
	Done   int      `json:"done"`
	Total  int      `json:"total"`
	Logs   []string `json:"logs"`
}

func waitForJob(t *testing.T, router *gin.Engine, id string) jobStatus {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		req := httptest.NewRequest(http.MethodGet, "/api/jobs/"+id, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var status jobStatus
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
		if status.Status == "done" {
			return status
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatal("job did not finish in time")
	return jobStatus{}
}
