package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Sessions  string    `json:"sessions,omitempty"`
}

type HealthHandler struct {
	serviceName string
	version     string
	sessions    *redis.Client
}

func NewHealthHandler(serviceName, version string, sessions *redis.Client) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		sessions:    sessions,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	sessionStatus := "disabled"
	if h.sessions != nil {
		pingCtx, cancel := context.WithTimeout(c.Request.Context(), 1*time.Second)
		defer cancel()

		if err := h.sessions.Ping(pingCtx).Err(); err != nil {
			sessionStatus = "down"
		} else {
			sessionStatus = "up"
		}
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   h.serviceName,
		Version:   h.version,
		Sessions:  sessionStatus,
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
