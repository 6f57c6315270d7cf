package session

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type loginReq struct {
	Password string `json:"password"`
}

// RegisterRoutes wires the login/logout endpoints and the login-page
// redirect rule.
func RegisterRoutes(r gin.IRouter, gate *Gate) {
	r.POST("/api/v1/login", func(c *gin.Context) {
		var req loginReq
		if err := c.ShouldBindJSON(&req); err != nil || req.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "password required"})
			return
		}

		token, err := gate.Login(c.Request.Context(), req.Password)
		if errors.Is(err, ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid password"})
			return
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "error": "session store unavailable"})
			return
		}

		gate.SetCookie(c, token)
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	r.POST("/api/v1/logout", func(c *gin.Context) {
		token, _ := c.Cookie(CookieName)
		if err := gate.Logout(c.Request.Context(), token); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "error": "session store unavailable"})
			return
		}
		gate.ClearCookie(c)
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	// Page route: logged-in visitors bounce straight back to the admin root.
	r.GET("/login", gate.RedirectIfAuthenticated(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "login": true})
	})
}
