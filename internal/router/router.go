package router

import (
	"html/template"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/edupay/salaryboard/internal/config"
	"github.com/edupay/salaryboard/internal/handler"
	"github.com/edupay/salaryboard/internal/middleware"
	"github.com/edupay/salaryboard/internal/response"
	"github.com/edupay/salaryboard/web"
)

// chartCacheSeconds controls client caching of rendered chart PNGs. The
// dataset only changes when the generator reruns, so a short TTL is enough.
const chartCacheSeconds = 300

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Dashboard *handler.DashboardHandler
	District  *handler.DistrictHandler
	Meta      *handler.MetaHandler
	Chart     *handler.ChartHandler
	Export    *handler.ExportHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(handlers *Handlers, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Dashboard page, embedded at build time.
	router.SetHTMLTemplate(template.Must(template.ParseFS(web.Files, "dashboard.html")))
	router.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "dashboard.html", nil)
	})

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// ─── JSON API (brotli-compressed) ──────────────────────────────────
	api := router.Group("/api/v1")
	api.Use(middleware.Brotli())
	{
		api.GET("/meta/regions", handlers.Meta.ListRegions)
		api.GET("/meta/states", handlers.Meta.ListStates)
		api.GET("/dashboard", handlers.Dashboard.GetDashboard)
		api.GET("/districts", handlers.District.ListDistricts)
	}

	// ─── Binary endpoints (already-compressed payloads) ────────────────
	charts := router.Group("/api/v1/charts")
	charts.Use(middleware.CacheControl(chartCacheSeconds))
	{
		charts.GET("/:name", handlers.Chart.RenderChart)
	}

	router.GET("/api/v1/export", handlers.Export.ExportDistricts)

	return router
}
