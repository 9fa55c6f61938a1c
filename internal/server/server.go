// Package server exposes the content-intelligence engine over a small JSON
// API for the rendering layer and ad-injection templates. The engine does
// the thinking; handlers only translate between HTTP and plain records.
package server

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sambulosenda/news-sub001/internal/domain"
	"github.com/sambulosenda/news-sub001/internal/engine"
	"github.com/sambulosenda/news-sub001/internal/infrastructure/storage"
	"github.com/sambulosenda/news-sub001/internal/ports"
	"github.com/sambulosenda/news-sub001/internal/segment"
	"github.com/sambulosenda/news-sub001/internal/usecase"
)

// Deps wires the engine and its collaborators into the HTTP layer. Store and
// RelatedFeed are optional; without them only the pool-in-request endpoints
// are served.
type Deps struct {
	Engine      *engine.Engine
	Store       ports.ArticleStore
	RelatedFeed *usecase.RelatedFeed
	Logger      *slog.Logger
}

// Server holds the handler state.
type Server struct {
	engine      *engine.Engine
	store       ports.ArticleStore
	relatedFeed *usecase.RelatedFeed
	logger      *slog.Logger
}

// New constructs the HTTP layer.
func New(deps Deps) *Server {
	return &Server{
		engine:      deps.Engine,
		store:       deps.Store,
		relatedFeed: deps.RelatedFeed,
		logger:      deps.Logger,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/related", s.rankRelated)
		api.GET("/articles/:id/related", s.relatedForArticle)
		api.POST("/classify", s.classifyLocation)
		api.POST("/placements", s.planPlacements)
	}

	return router
}

type rankRelatedRequest struct {
	Target     domain.Article   `json:"target"`
	Candidates []domain.Article `json:"candidates"`
	Limit      int              `json:"limit"`
}

func (s *Server) rankRelated(c *gin.Context) {
	var request rankRelatedRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	results := s.engine.RankRelated(request.Target, request.Candidates, request.Limit)
	c.JSON(http.StatusOK, gin.H{"results": results})
}

func (s *Server) relatedForArticle(c *gin.Context) {
	if s.store == nil || s.relatedFeed == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "content store not configured"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	target, err := s.store.Article(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
			return
		}
		s.error("load target article", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "store error"})
		return
	}

	results, err := s.relatedFeed.Related(c.Request.Context(), target, limit)
	if err != nil {
		s.error("gather candidate pool", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "candidate pool error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}

type classifyRequest struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

func (s *Server) classifyLocation(c *gin.Context) {
	var request classifyRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	tag := s.engine.ClassifyLocation(request.Title, request.Content, request.Category, request.Tags)
	c.JSON(http.StatusOK, tag)
}

type placementsRequest struct {
	Content string          `json:"content"`
	Config  *segment.Config `json:"config"`
}

func (s *Server) planPlacements(c *gin.Context) {
	var request placementsRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	placements := s.engine.PlanPlacements(request.Content, request.Config)
	c.JSON(http.StatusOK, gin.H{"placements": placements})
}

func (s *Server) error(msg string, err error) {
	if s.logger != nil {
		s.logger.Error(msg, "error", err)
	}
}
