package session

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const (
	CookieName = "portfolio_session"
	loginPath  = "/login"
	adminPath  = "/admin"
)

// Gate enforces the single-admin access rules: a bcrypt-checked shared
// secret on login, an opaque session cookie afterwards.
type Gate struct {
	store        *Store
	passwordHash []byte
	secureCookie bool
}

func NewGate(store *Store, passwordHash string, secureCookie bool) *Gate {
	return &Gate{
		store:        store,
		passwordHash: []byte(passwordHash),
		secureCookie: secureCookie,
	}
}

// Login verifies the shared secret and mints a session token.
// bcrypt's comparison is constant-time, so the historical plaintext equality
// check is not reproduced here.
func (g *Gate) Login(ctx context.Context, password string) (string, error) {
	if err := bcrypt.CompareHashAndPassword(g.passwordHash, []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return g.store.Create(ctx)
}

// Logout invalidates the token server-side.
func (g *Gate) Logout(ctx context.Context, token string) error {
	return g.store.Destroy(ctx, token)
}

// SetCookie issues the session cookie: httpOnly, site-wide path, TTL-bound,
// secure in production.
func (g *Gate) SetCookie(c *gin.Context, token string) {
	c.SetCookie(CookieName, token, int(g.store.TTL().Seconds()), "/", "", g.secureCookie, true)
}

// ClearCookie expires the session cookie immediately.
func (g *Gate) ClearCookie(c *gin.Context) {
	c.SetCookie(CookieName, "", -1, "/", "", g.secureCookie, true)
}

// RequireAdmin gates admin-prefixed routes. Requests without a valid session
// get a redirect to the login path when they look like page navigation, a
// 401 envelope otherwise.
func (g *Gate) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(CookieName)
		ok, err := g.store.Valid(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"ok": false, "error": "session store unavailable"})
			return
		}
		if !ok {
			if wantsHTML(c) {
				c.Redirect(http.StatusSeeOther, loginPath)
				c.Abort()
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "unauthorized"})
			return
		}
		c.Next()
	}
}

// RedirectIfAuthenticated sends an already-logged-in visitor of the login
// path back to the admin root, preventing re-login loops.
func (g *Gate) RedirectIfAuthenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(CookieName)
		if ok, err := g.store.Valid(c.Request.Context(), token); err == nil && ok {
			c.Redirect(http.StatusSeeOther, adminPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

func wantsHTML(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "text/html")
}
