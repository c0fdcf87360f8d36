// Package server exposes the transcript-upload HTTP surface: a form at /
// and the processing endpoint at /process.
package server

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/momsync/momsync/internal/logging"
	"github.com/momsync/momsync/internal/pipeline"
	"github.com/momsync/momsync/pkg/models"
)

// RunFunc executes one pipeline run with request-scoped credentials. The
// server stays decoupled from client construction so tests can substitute
// the whole pipeline.
type RunFunc func(ctx context.Context, creds models.TrackerCredentials, projectName, transcript string) (*pipeline.Result, error)

// Server serves the upload form and the processing endpoint.
type Server struct {
	router *gin.Engine
	run    RunFunc
}

// New creates the HTTP server around a pipeline runner.
func New(run RunFunc) *Server {
	router := gin.Default()

	s := &Server{
		router: router,
		run:    run,
	}

	router.GET("/", s.handleIndex)
	router.POST("/process", s.handleProcess)

	return s
}

// Run starts the HTTP server on addr.
func (s *Server) Run(addr string) error {
	logging.Info("starting http server", "addr", addr)
	return s.router.Run(addr)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleIndex(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexHTML))
}

// handleProcess accepts the multipart form (credentials, project name,
// transcript file), runs the pipeline, and returns the aggregate result.
// The uploaded transcript is written to a request-scoped temporary path and
// removed when the request finishes, whatever the outcome.
func (s *Server) handleProcess(c *gin.Context) {
	requestID := uuid.NewString()

	creds := models.TrackerCredentials{
		Email:    c.PostForm("jira_email"),
		APIToken: c.PostForm("jira_api_token"),
		BaseURL:  strings.TrimRight(c.PostForm("jira_api_instance"), "/"),
	}
	projectName := c.PostForm("project_name")

	logging.Info("processing transcript upload",
		"request_id", requestID,
		"project", projectName,
		"email", creds.Email,
		"token", logging.MaskSensitive(creds.APIToken))

	file, err := c.FormFile("meeting_file")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "missing meeting_file: " + err.Error()})
		return
	}

	path := filepath.Join(os.TempDir(), "momsync-"+requestID+".txt")
	if err := c.SaveUploadedFile(file, path); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store transcript: " + err.Error()})
		return
	}
	defer os.Remove(path)

	data, err := os.ReadFile(path)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read transcript: " + err.Error()})
		return
	}

	transcript := string(data)
	if !utf8.ValidString(transcript) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "transcript is not valid UTF-8"})
		return
	}

	result, err := s.run(c.Request.Context(), creds, projectName, transcript)
	if err != nil {
		logging.Error("pipeline run failed",
			"request_id", requestID,
			"error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"mom":            result.Minutes,
		"account_ids":    result.AccountIDs,
		"created_issues": result.Outcomes,
	})
}
