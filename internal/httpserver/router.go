package httpserver

import (
	"errors"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"nextgear/internal/domain"
	"nextgear/internal/store"
)

// IdentityResolver authenticates raw Telegram initData into an Identity.
type IdentityResolver interface {
	Resolve(initData string) (*domain.Identity, error)
}

// Deps carries everything the routes need.
type Deps struct {
	Store    *store.Store
	Resolver IdentityResolver
	// AdminUsername is the handle pre-order deep links point at.
	AdminUsername string
	// AllowedOrigins for the Mini App frontend; empty allows none beyond
	// same-origin requests.
	AllowedOrigins []string
}

// buildRouter wires routes for the storefront API.
func buildRouter(logger *log.Logger, deps Deps) (*gin.Engine, error) {
	if deps.Store == nil {
		return nil, errors.New("store required")
	}
	if deps.Resolver == nil {
		return nil, errors.New("identity resolver required")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	if len(deps.AllowedOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = deps.AllowedOrigins
		corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", "X-Telegram-Init-Data")
		router.Use(cors.New(corsCfg))
	}

	router.GET("/healthz", healthHandler)

	api := router.Group("/api")
	api.Use(sessionMiddleware(deps))

	api.GET("/products", listProductsHandler)
	api.GET("/categories", listCategoriesHandler)

	authed := api.Group("")
	authed.Use(requireIdentity())
	authed.GET("/me", meHandler)
	authed.GET("/me/orders", listMyOrdersHandler)
	authed.GET("/cart", getCartHandler)
	authed.POST("/cart/items", addToCartHandler)
	authed.DELETE("/cart/items/:productId", removeFromCartHandler)
	authed.DELETE("/cart", clearCartHandler)
	authed.POST("/orders", placeOrderHandler)
	authed.POST("/preorders", preOrderHandler(deps.AdminUsername))

	adminGroup := api.Group("/admin")
	adminGroup.Use(requireIdentity(), requireAdmin())
	adminGroup.POST("/products", addProductHandler)
	adminGroup.DELETE("/products/:id", removeProductHandler)
	adminGroup.GET("/orders", listPendingOrdersHandler)
	adminGroup.POST("/orders/:id/process", processOrderHandler)

	return router, nil
}
