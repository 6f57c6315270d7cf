package session

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const adminPassword = "correct horse battery staple"

func setupGate(t *testing.T) (*Gate, *gin.Engine) {
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.MinCost)
	require.NoError(t, err)

	gate := NewGate(NewStore(client, time.Hour), string(hash), false)

	r := gin.New()
	RegisterRoutes(r, gate)
	r.GET("/admin", gate.RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/api/v1/admin/projects", gate.RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return gate, r
}

func doLogin(t *testing.T, r *gin.Engine, password string) *httptest.ResponseRecorder {
	body := []byte(`{"password":"` + password + `"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == CookieName {
			return c
		}
	}
	return nil
}

func TestLoginSetsCookie(t *testing.T) {
	_, r := setupGate(t)

	w := doLogin(t, r, adminPassword)

	require.Equal(t, http.StatusOK, w.Code)
	cookie := sessionCookie(t, w)
	require.NotNil(t, cookie)
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/", cookie.Path)
}

func TestLoginWrongPassword(t *testing.T) {
	_, r := setupGate(t)

	w := doLogin(t, r, "wrong")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Nil(t, sessionCookie(t, w), "no cookie on failed login")

	// The gate still redirects admin navigation afterwards.
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Accept", "text/html")
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req)

	assert.Equal(t, http.StatusSeeOther, w2.Code)
	assert.Equal(t, "/login", w2.Header().Get("Location"))
}

func TestAuthorizeAdminPaths(t *testing.T) {
	_, r := setupGate(t)

	t.Run("no cookie redirects browser navigation", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Accept", "text/html")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
	})

	t.Run("no cookie gets 401 for api calls", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/projects", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid cookie permits", func(t *testing.T) {
		login := doLogin(t, r, adminPassword)
		cookie := sessionCookie(t, login)
		require.NotNil(t, cookie)

		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.AddCookie(cookie)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestLogoutInvalidatesCookie(t *testing.T) {
	_, r := setupGate(t)

	login := doLogin(t, r, adminPassword)
	cookie := sessionCookie(t, login)
	require.NotNil(t, cookie)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/logout", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	// The previously valid cookie no longer permits.
	req = httptest.NewRequest(http.MethodGet, "/api/v1/admin/projects", nil)
	req.AddCookie(cookie)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginPageRedirectsWhenAuthenticated(t *testing.T) {
	_, r := setupGate(t)

	login := doLogin(t, r, adminPassword)
	cookie := sessionCookie(t, login)
	require.NotNil(t, cookie)

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))
}
