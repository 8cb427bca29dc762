package server

import (
	"strings"
	"time"

	"creator-dashboard/infrastructure/metrics"
	httpHandler "creator-dashboard/interfaces/http"
	"creator-dashboard/interfaces/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// functionsPrefix hosts the edge-function style endpoints; they answer CORS themselves.
const functionsPrefix = "/functions/"

// Handlers groups the HTTP handlers the router mounts. A nil trending or
// content handler mounts a 503 fallback for its routes.
type Handlers struct {
	Trending       httpHandler.ITrendingHandler
	TrendingStream gin.HandlerFunc
	Content        httpHandler.IContentHandler
	Script         httpHandler.IScriptHandler
	Health         httpHandler.IHealthHandler
}

func InitiateRouter(h Handlers, secretKey string, allowOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLog())
	router.Use(metrics.GinMiddleware())
	router.Use(dashboardCORS(allowOrigins))

	router.GET("/healthz", h.Health.Healthz)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	functions := router.Group("/functions/v1")
	functions.OPTIONS("/generate-script", h.Script.Preflight)
	functions.POST("/generate-script", h.Script.GenerateScript)

	api := router.Group("api")
	api.Use(middleware.Auth(secretKey))

	if h.Trending != nil {
		api.GET("/trending/options", h.Trending.GetOptions)
		api.GET("/trending", h.Trending.GetTrending)
		api.GET("/trending/state", h.Trending.GetState)
		if h.TrendingStream != nil {
			api.GET("/trending/stream", h.TrendingStream)
		}
	} else {
		trending := api.Group("/trending")
		trending.GET("", httpHandler.CatalogUnavailable)
		trending.GET("/*any", httpHandler.CatalogUnavailable)
	}

	if h.Content != nil {
		api.GET("/content", h.Content.ListContent)
		api.DELETE("/content/:type/:id", h.Content.DeleteContent)
		api.POST("/scripts", h.Content.SaveScript)
	} else {
		api.GET("/content", httpHandler.ContentUnavailable)
		api.DELETE("/content/:type/:id", httpHandler.ContentUnavailable)
		api.POST("/scripts", httpHandler.ContentUnavailable)
	}

	return router
}

// dashboardCORS restricts the API to the dashboard origins and leaves the
// functions endpoints to their own permissive headers.
func dashboardCORS(allowOrigins []string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(allowOrigins))
	for _, o := range allowOrigins {
		allowed[strings.TrimSpace(o)] = struct{}{}
	}
	handler := cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		AllowOriginFunc: func(origin string) bool {
			_, ok := allowed[origin]
			return ok
		},
		MaxAge: 12 * time.Hour,
	})
	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, functionsPrefix) {
			c.Next()
			return
		}
		handler(c)
	}
}
