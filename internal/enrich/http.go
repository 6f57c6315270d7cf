package enrich

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type generateReq struct {
	Title        string `json:"title"`
	Technologies string `json:"technologies"`
}

type descriptionReq struct {
	Description string `json:"description"`
}

// Register wires the enrichment endpoints onto the session-gated admin group.
func Register(admin *gin.RouterGroup, svc *Service) {
	admin.POST("/generate-description", func(c *gin.Context) {
		var req generateReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
			return
		}
		out, err := svc.GenerateDescription(c.Request.Context(), req.Title, req.Technologies)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "description": out})
	})

	admin.POST("/improve-description", func(c *gin.Context) {
		var req descriptionReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
			return
		}
		out, err := svc.ImproveDescription(c.Request.Context(), req.Description)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "description": out})
	})

	admin.POST("/suggest-keywords", func(c *gin.Context) {
		var req descriptionReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
			return
		}
		out, err := svc.SuggestKeywords(c.Request.Context(), req.Description)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "keywords": out})
	})

	admin.POST("/suggest-technologies", func(c *gin.Context) {
		var req descriptionReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
			return
		}
		out, err := svc.SuggestTechnologies(c.Request.Context(), req.Description)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "technologies": out})
	})
}

func respondErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
	case errors.Is(err, ErrGeneration):
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
	}
}
