package app

import (
	"github.com/gin-gonic/gin"
	"github.com/pentaview/core/internal/middleware"
	"github.com/pentaview/core/internal/modules/analysis"
	"github.com/pentaview/core/internal/modules/auth"
	pkgredis "github.com/pentaview/core/internal/pkg/redis"
	"github.com/pentaview/core/internal/pkg/response"
)

const apiPrefix = "/api/v1"

func (a *App) registerRoutes(rc *pkgredis.Client, gen analysis.Generator) {
	r := a.router
	db := a.db
	authMW := middleware.Auth(db)

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	r.GET("/healthz", func(c *gin.Context) {
		response.OK(c, gin.H{"status": "ok"})
	})

	// OptionalAuth must precede RateLimit so authenticated requests are
	// exempt from the per-IP limit.
	api := r.Group(apiPrefix)
	api.Use(middleware.OptionalAuth(db))
	api.Use(middleware.RateLimit(rc.Raw()))
	api.Use(middleware.Idempotence(rc.Raw()))
	api.Use(middleware.HTTPCache(rc.Raw(), middleware.HTTPCacheOptions{}))

	auth.NewHandler(auth.NewService(db)).RegisterRoutes(api, authMW)

	orch := analysis.NewOrchestrator(analysis.NewExecutor(gen))
	analysis.NewHandler(analysis.NewService(db, orch, a.logger)).RegisterRoutes(api, authMW)
}
