// Package server exposes the scrape pipeline over HTTP: upload a URL list,
// poll progress and logs, download the results. Jobs live in memory only;
// nothing survives a restart.
package server

import (
	"bytes"
	"context"
	"html"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bio-scraper/pkg/config"
	"bio-scraper/pkg/domain"
	"bio-scraper/pkg/parser"
	"bio-scraper/pkg/report"
	"bio-scraper/pkg/scraper"
	"bio-scraper/pkg/worker"
)

// Server wires the HTTP handlers to the scrape pipeline.
type Server struct {
	cfg     *config.Config
	logger  *zap.Logger
	scraper worker.BioScraper
	jobs    *jobStore
}

// New creates a server. logger may be nil.
func New(cfg *config.Config, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		cfg:     cfg,
		logger:  logger,
		scraper: scraper.New(cfg.Timeout()),
		jobs:    newJobStore(),
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	api := router.Group("/api")
	api.POST("/jobs", s.handleCreateJob)
	api.GET("/jobs/:id", s.handleGetJob)
	api.GET("/jobs/:id/results.csv", s.handleResults)
	api.GET("/jobs/:id/context", s.handleContext)

	return router
}

// handleCreateJob accepts a multipart CSV upload, validates it, and starts
// the batch in the background. Validation failures come back as 400 before
// any fetch is attempted.
func (s *Server) handleCreateJob(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing 'file' upload"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to open upload"})
		return
	}
	defer file.Close()

	rows, err := parser.NewCSVParser().Parse(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	j := s.jobs.create(len(rows))
	s.logger.Info("job started", zap.String("job", j.ID), zap.Int("rows", len(rows)))

	go s.run(j, rows)

	c.JSON(http.StatusAccepted, gin.H{"id": j.ID, "total": len(rows)})
}

func (s *Server) run(j *jobState, rows []domain.InputRow) {
	mgr := worker.NewManager(s.cfg.Workers, s.scraper, s.logger, func(done, total int) {
		j.setProgress(done)
	})
	results := mgr.Process(context.Background(), rows)
	worker.SortByIndex(results)
	for _, res := range results {
		j.appendLog(res.Log)
	}
	j.finish(worker.Records(results))
	s.logger.Info("job finished", zap.String("job", j.ID), zap.Int("rows", len(results)))
}

func (s *Server) handleGetJob(c *gin.Context) {
	j, ok := s.jobs.get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
		return
	}
	status, done, total, logs := j.snapshot()
	c.JSON(http.StatusOK, gin.H{
		"id":     j.ID,
		"status": status,
		"done":   done,
		"total":  total,
		"logs":   logs,
	})
}

func (s *Server) handleResults(c *gin.Context) {
	j, ok := s.jobs.get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
		return
	}
	records, done := j.results()
	if !done {
		c.JSON(http.StatusConflict, gin.H{"error": "job still running"})
		return
	}

	var buf bytes.Buffer
	if err := report.WriteCSV(&buf, records); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="attorney_bio_scrape_results.csv"`)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

func (s *Server) handleContext(c *gin.Context) {
	j, ok := s.jobs.get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
		return
	}
	records, done := j.results()
	if !done {
		c.JSON(http.StatusConflict, gin.H{"error": "job still running"})
		return
	}

	var buf bytes.Buffer
	buf.WriteString("<!DOCTYPE html>\n<html><body>\n")
	for _, rec := range records {
		buf.WriteString("<h2>" + html.EscapeString(rec.Name) + "</h2>\n")
		buf.WriteString(report.ContextHTML(rec))
	}
	buf.WriteString("</body></html>\n")
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}
