// Package handlers implements the HTTP request handlers of the mapper API.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAbotsup/hindi-mapper/internal/config"
	"github.com/SAbotsup/hindi-mapper/internal/models"
	"github.com/SAbotsup/hindi-mapper/internal/services"
)

// Handler handles HTTP requests for the mapper API.
type Handler struct {
	services *services.Container
	config   *config.Config
}

// New creates a new Handler with the provided services and configuration.
func New(services *services.Container, config *config.Config) *Handler {
	return &Handler{
		services: services,
		config:   config,
	}
}

// RegisterRoutes registers all HTTP routes.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.handleHealth)
	r.GET("/mapper/:mapping", h.handleMapper)
}

func (h *Handler) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:  "ok",
		Message: "API is running",
	})
}
