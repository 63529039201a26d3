package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"autoparts-pos/internal/handler/api"
	"autoparts-pos/internal/handler/middleware"
	"autoparts-pos/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Pricing       *api.PricingHandler
	Stock         *api.StockHandler
	Compatibility *api.CompatibilityHandler
}

func NewHandlers(pricing *api.PricingHandler, stock *api.StockHandler, compatibility *api.CompatibilityHandler) Handlers {
	return Handlers{Pricing: pricing, Stock: stock, Compatibility: compatibility}
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	slogger := logger.GetSlogLogger()
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(slogger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, slogger))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler(slogger))
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/pricing"), []route{
			{Method: http.MethodPost, Path: "/gross", Handler: h.Pricing.GrossFromNet},
			{Method: http.MethodPost, Path: "/net", Handler: h.Pricing.NetFromGross},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/purchases/totals", Handler: h.Pricing.PurchaseTotals},
			{Method: http.MethodPost, Path: "/counter-movements/totals", Handler: h.Pricing.CounterMovementTotal},
		})

		addRoutes(apiGroup.Group("/stock"), []route{
			{Method: http.MethodPost, Path: "/classify", Handler: h.Stock.Classify},
			{Method: http.MethodPost, Path: "/filter", Handler: h.Stock.Filter},
		})

		addRoutes(apiGroup.Group("/vehicle-models"), []route{
			{Method: http.MethodPost, Path: "/ranges", Handler: h.Compatibility.AddRange},
			{Method: http.MethodDelete, Path: "/selection", Handler: h.Compatibility.ClearSelection},
			{Method: http.MethodDelete, Path: "/selection/:id", Handler: h.Compatibility.RemoveFromSelection},
		})
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
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
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

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
