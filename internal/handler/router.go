package handler

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"cellar-shop/internal/handler/api"
	"cellar-shop/internal/handler/middleware"
	"cellar-shop/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Products    *api.ProductHandler
	Cart        *api.CartHandler
	Orders      *api.OrderHandler
	AdminOrders *api.AdminOrderHandler
	Webhook     *api.CarrierWebhookHandler
}

// Telemetry records request metrics and serves the scrape endpoint.
type Telemetry interface {
	middleware.HTTPRecorder
	Handler() http.Handler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware, telemetry Telemetry) {
	setupMiddleware(engine, cfg, logger, telemetry)
	setupRoutes(engine, h, authMiddleware, telemetry)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, telemetry Telemetry) {
	// Recovery is outermost so panics in any later middleware are caught.
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.Metrics(telemetry))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, telemetry Telemetry) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(telemetry.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := authMiddleware.RequireAuth()
	optionalAuth := authMiddleware.OptionalAuth()

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/products"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Products.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Products.Get},
		})

		cart := apiGroup.Group("/cart")
		cart.Use(requireAuth)
		addRoutes(cart, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Cart.Get},
			{Method: http.MethodDelete, Path: "", Handler: h.Cart.Clear},
			{Method: http.MethodPost, Path: "/items", Handler: h.Cart.AddItem},
			{Method: http.MethodPatch, Path: "/items/:id", Handler: h.Cart.UpdateItem},
			{Method: http.MethodDelete, Path: "/items/:id", Handler: h.Cart.RemoveItem},
		})

		addRoutes(apiGroup.Group("/orders"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Orders.Checkout, Mw: []gin.HandlerFunc{optionalAuth}},
			{Method: http.MethodGet, Path: "/:orderId", Handler: h.Orders.Get, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodGet, Path: "/track/:code", Handler: h.Orders.Track, Mw: []gin.HandlerFunc{optionalAuth}},
			{Method: http.MethodPost, Path: "/track/:code/cancel", Handler: h.Orders.Cancel, Mw: []gin.HandlerFunc{requireAuth}},
		})

		addRoutes(apiGroup.Group("/carrier"), []route{
			{Method: http.MethodPost, Path: "/webhook", Handler: h.Webhook.Receive},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(requireAuth, authMiddleware.RequireAdmin())
		addRoutes(admin, []route{
			{Method: http.MethodPost, Path: "/products", Handler: h.Products.Create},
			{Method: http.MethodPut, Path: "/products/:id/stock", Handler: h.Products.ReplaceStock},
			{Method: http.MethodPatch, Path: "/products/:id/sizes", Handler: h.Products.AdjustSizes},
			{Method: http.MethodGet, Path: "/orders", Handler: h.AdminOrders.List},
			{Method: http.MethodPatch, Path: "/orders/:orderId/status", Handler: h.AdminOrders.UpdateStatus},
			{Method: http.MethodPost, Path: "/orders/:orderId/shipment", Handler: h.AdminOrders.CreateShipment},
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
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		chain := append(slices.Clone(r.Mw), r.Handler)
		g.Handle(r.Method, r.Path, chain...)
	}
}
