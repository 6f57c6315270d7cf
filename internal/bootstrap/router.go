package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	httpapi "github.com/folioforge/portfolio-backend/internal/api/http"
	"github.com/folioforge/portfolio-backend/internal/api/http/middleware"
	"github.com/folioforge/portfolio-backend/internal/enrich"
	projecthttp "github.com/folioforge/portfolio-backend/internal/projects/http"
	"github.com/folioforge/portfolio-backend/internal/projects/service"
	"github.com/folioforge/portfolio-backend/internal/session"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	AllowedOrigins []string
	Projects       *service.ProjectService
	Gate           *session.Gate
	Enrich         *enrich.Service
	Sessions       *redis.Client
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     dep.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "X-Request-Id"},
		AllowCredentials: true,
	}))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Sessions)
	healthHandler.RegisterRoutes(r)

	session.RegisterRoutes(r, dep.Gate)

	api := r.Group("/api/v1")

	public := api.Group("/projects")

	admin := api.Group("/admin")
	admin.Use(dep.Gate.RequireAdmin())

	projecthttp.Register(public, admin.Group("/projects"), dep.Projects)
	enrich.Register(admin.Group("/ai"), dep.Enrich)

	return r
}
