// Package server exposes the generation pipeline over HTTP for the external
// UI. The corpus is loaded once at startup inside the app container; handlers
// only read it.
package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sahanperera/postgen/internal/app"
	"github.com/sahanperera/postgen/internal/generation"
)

// Server serves the generation API.
type Server struct {
	app    *app.App
	engine *gin.Engine
}

// GenerateRequest is the JSON body of POST /api/generate.
type GenerateRequest struct {
	Topic    string `json:"topic" binding:"required"`
	Length   string `json:"length" binding:"required"`
	Language string `json:"language" binding:"required"`
}

// GenerateResponse is the JSON body of a successful generation.
type GenerateResponse struct {
	Post         string `json:"post"`
	ExampleCount int    `json:"example_count"`
}

// New creates the server and registers its routes.
func New(a *app.App) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{app: a, engine: engine}

	engine.GET("/healthz", s.handleHealth)
	api := engine.Group("/api")
	{
		api.GET("/tags", s.handleTags)
		api.POST("/generate", s.handleGenerate)
	}

	return s
}

// Run blocks serving HTTP on addr.
func (s *Server) Run(addr string) error {
	slog.Info("starting HTTP server", "addr", addr)
	return s.engine.Run(addr)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"corpus": len(s.app.Corpus),
	})
}

func (s *Server) handleTags(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tags": s.app.Topics()})
}

func (s *Server) handleGenerate(c *gin.Context) {
	var body GenerateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req, err := s.app.NewRequest(body.Topic, body.Length, body.Language)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := s.app.Generate(c.Request.Context(), req)
	if err != nil {
		var genErr *generation.Error
		if errors.As(err, &genErr) {
			slog.Error("generation failed", "error", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "generation failed: " + genErr.Err.Error()})
			return
		}
		slog.Error("generate request failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, GenerateResponse{
		Post:         result.Post,
		ExampleCount: result.ExampleCount,
	})
}
