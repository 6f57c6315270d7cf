package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/folioforge/portfolio-backend/internal/projects/domain"
	"github.com/folioforge/portfolio-backend/internal/projects/service"
)

type Handler struct {
	svc *service.ProjectService
}

// Register wires the public read surface and the session-gated admin write
// surface onto their route groups.
func Register(public, admin *gin.RouterGroup, svc *service.ProjectService) {
	h := &Handler{svc: svc}

	public.GET("", h.list)

	admin.POST("", h.create)
	admin.PATCH("/:id", h.update)
	admin.DELETE("/:id", h.delete)
	admin.POST("/import", h.importProjects)
}

func (h *Handler) list(c *gin.Context) {
	projects, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": projects})
}

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	p, err := h.svc.Add(c.Request.Context(), req.Title, req.Description, req.Technologies, req.Keywords, req.ImageURL)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "project": p})
}

func (h *Handler) update(c *gin.Context) {
	id := c.Param("id")

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	p, err := h.svc.UpdateFields(c.Request.Context(), id, req.Title, req.Description, req.Technologies, req.Keywords, req.ImageURL)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) importProjects(c *gin.Context) {
	var req importReq
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Projects) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	for _, p := range req.Projects {
		if strings.TrimSpace(p.ID) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "every imported project needs an id"})
			return
		}
	}

	if err := h.svc.Import(c.Request.Context(), req.Projects); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "imported": len(req.Projects)})
}

func respondErr(c *gin.Context, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": verr.Message, "field": verr.Field})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
	case errors.Is(err, domain.ErrStorageUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "error": "storage unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
	}
}
