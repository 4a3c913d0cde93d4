package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"barberline/internal/handler/api"
	"barberline/internal/handler/middleware"
	"barberline/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	queueHandler *api.QueueHandler,
	barberHandler *api.BarberHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, queueHandler, barberHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	queueHandler *api.QueueHandler,
	barberHandler *api.BarberHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/customers/signup", Handler: authHandler.CustomerSignup},
				{Method: http.MethodPost, Path: "/customers/signin", Handler: authHandler.CustomerSignin},
				{Method: http.MethodPost, Path: "/barbers/signup", Handler: authHandler.BarberSignup},
				{Method: http.MethodPost, Path: "/barbers/signin", Handler: authHandler.BarberSignin},
			})
		}

		queue := apiGroup.Group("/queue")
		queue.Use(authMiddleware.RequireCustomer())
		{
			addRoutes(queue, []route{
				{Method: http.MethodPost, Path: "/join", Handler: queueHandler.Join},
				{Method: http.MethodPost, Path: "/leave", Handler: queueHandler.Leave},
				{Method: http.MethodGet, Path: "/status", Handler: queueHandler.Status},
			})
		}

		barbers := apiGroup.Group("/barbers")
		{
			customerSide := barbers.Group("")
			customerSide.Use(authMiddleware.RequireCustomer())
			addRoutes(customerSide, []route{
				{Method: http.MethodGet, Path: "/nearby", Handler: barberHandler.Nearby},
			})

			barberSide := barbers.Group("")
			barberSide.Use(authMiddleware.RequireBarber())
			addRoutes(barberSide, []route{
				{Method: http.MethodGet, Path: "/:id/queue", Handler: barberHandler.ListQueue},
				{Method: http.MethodDelete, Path: "/:id/queue/:customerID", Handler: barberHandler.Remove},
				{Method: http.MethodGet, Path: "/:id/history", Handler: barberHandler.History},
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
