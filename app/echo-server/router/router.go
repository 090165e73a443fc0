package router

import (
	"myMediasStore/internal/middleware"
	"myMediasStore/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupUserRoutes(api *echo.Group, handler *rest.UserHandler, authRequired echo.MiddlewareFunc) {
	users := api.Group("/users")

	users.POST("/register", handler.Register)
	users.POST("/login", handler.Login)

	users.POST("/logout", handler.Logout, authRequired)
	users.GET("/me/role", handler.GetMyRole, authRequired)
}

func SetupProductRoutes(api *echo.Group, handler *rest.ProductHandler, recoHandler *rest.RecommendationHandler) {
	products := api.Group("/products")

	products.GET("", handler.GetAllProducts)
	products.GET("/:code", handler.GetProductByCode)
	products.GET("/:code/recommendations", recoHandler.GetRecommendations, middleware.SessionMiddleware())
}

func SetRecommendationRoutes(api *echo.Group, handler *rest.RecommendationHandler) {
	reco := api.Group("/recommendations", middleware.SessionMiddleware())
	reco.POST("/click", handler.TrackClick)
}

func SetOrdersRoutes(api *echo.Group, ordersHandler *rest.OrdersHandler) {
	orders := api.Group("/orders")
	orders.POST("", ordersHandler.CreateOrder)
}

func SetAdminRoutes(api *echo.Group, ordersHandler *rest.OrdersHandler, productHandler *rest.ProductHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	admin := api.Group("/admin", authRequired, adminOnly)

	admin.GET("/orders", ordersHandler.GetAllOrders)
	admin.GET("/orders/:id", ordersHandler.GetOrderByID)
	admin.PATCH("/orders/:id/status", ordersHandler.UpdateOrderStatus)
	admin.GET("/products/stats", productHandler.GetProductStats)
}
