package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"reservation-calendar/internal/handler/api"
	"reservation-calendar/internal/handler/middleware"
	"reservation-calendar/internal/pkg/config"
	"reservation-calendar/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	m *metrics.Metrics,
	gatherer prometheus.Gatherer,
	calendarHandler *api.CalendarHandler,
	editorHandler *api.EditorHandler,
) {
	setupMiddleware(engine, cfg, logger, m)
	setupRoutes(engine, gatherer, calendarHandler, editorHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, m *metrics.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.MetricsMiddleware(m))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, gatherer prometheus.Gatherer, calendarHandler *api.CalendarHandler, editorHandler *api.EditorHandler) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/calendar", Handler: calendarHandler.GetCalendar},
			{Method: http.MethodGet, Path: "/notices", Handler: calendarHandler.GetNotices},
		})

		editor := apiGroup.Group("/editor")
		{
			addRoutes(editor, []route{
				{Method: http.MethodPost, Path: "/create", Handler: editorHandler.OpenCreate},
				{Method: http.MethodPost, Path: "/edit/:id", Handler: editorHandler.OpenEdit},
				{Method: http.MethodPost, Path: "/cancel", Handler: editorHandler.Cancel},
				{Method: http.MethodPatch, Path: "/draft", Handler: editorHandler.UpdateDraft},
				{Method: http.MethodPost, Path: "/note/key", Handler: editorHandler.NoteKey},
				{Method: http.MethodPost, Path: "/submit", Handler: editorHandler.Submit},
				{Method: http.MethodPost, Path: "/delete", Handler: editorHandler.Delete},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}
