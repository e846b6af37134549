package route

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stagearchive/catalogue/api/middleware"
	"github.com/stagearchive/catalogue/api/route/route_catalogue"
	"github.com/stagearchive/catalogue/bootstrap"
	"github.com/stagearchive/catalogue/mongo"
)

func Setup(env *bootstrap.Env, timeout time.Duration, db mongo.Database, engine *gin.Engine) error {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := middleware.NewHTTPMetrics(registry)

	engine.Use(middleware.RequestLogger(), metrics.Middleware())

	engine.GET("/metrics", func(c *gin.Context) {
		promhttp.HandlerFor(registry, promhttp.HandlerOpts{}).ServeHTTP(c.Writer, c.Request)
	})
	engine.GET("/healthz", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()
		if err := db.Client().Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	maxFileBytes := int64(env.UploadMaxSizeMB) << 20
	uc, err := route_catalogue.NewCatalogueUsecases(timeout, db, route_catalogue.CatalogueOptions{
		PageSize:       env.PageSize,
		FeedPageSize:   env.FeedPageSize,
		BlobBucket:     env.BlobBucket,
		PublicBaseURL:  env.PublicBaseURL,
		UploadMaxBytes: maxFileBytes,
		UploadMaxFiles: env.UploadMaxFiles,
	})
	if err != nil {
		return err
	}

	enforcer, err := middleware.NewRoleEnforcer()
	if err != nil {
		return err
	}

	publicRouter := engine.Group("/api")

	api := engine.Group("/api")
	api.Use(middleware.AuthMiddleware(uc.Auth, env.IdentityJWTSecret, env.IdentityIssuer))

	viewerRouter := api.Group("")
	viewerRouter.Use(middleware.RequirePermission(enforcer, middleware.ResourceCatalogue, middleware.ActionRead))

	editorRouter := api.Group("/admin")
	editorRouter.Use(middleware.RequirePermission(enforcer, middleware.ResourceCatalogue, middleware.ActionWrite))

	userReaders := api.Group("/admin")
	userReaders.Use(middleware.RequirePermission(enforcer, middleware.ResourceUsers, middleware.ActionRead))

	userWriters := api.Group("/admin")
	userWriters.Use(middleware.RequirePermission(enforcer, middleware.ResourceUsers, middleware.ActionWrite))

	route_catalogue.NewRecordingRouter(uc, viewerRouter, editorRouter)
	route_catalogue.NewPersonRouter(uc, viewerRouter, editorRouter)
	route_catalogue.NewTheatreRouter(uc, viewerRouter, editorRouter)
	route_catalogue.NewUserRouter(uc, viewerRouter, userReaders, userWriters)
	route_catalogue.NewUploadRouter(uc, maxFileBytes, publicRouter, editorRouter)

	return nil
}
