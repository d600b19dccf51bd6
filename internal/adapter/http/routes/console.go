package routes

import (
	"taller_moto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBikes  = "/bikes"
	PathOrders = "/orders"
)

func addConsoleRoutes(rg *gin.RouterGroup, consoleHandler *handlers.ConsoleHandler, bikeHandler *handlers.BikeHandler, orderHandler *handlers.OrderHandler) {
	rg.GET("/state", consoleHandler.GetState)
	rg.PUT("/view", consoleHandler.SetView)
	rg.POST("/refresh", consoleHandler.Refresh)
	rg.POST("/error/dismiss", consoleHandler.DismissError)
	rg.GET("/summary", orderHandler.Summary)

	bikes := rg.Group(PathBikes)
	{
		bikes.GET("", bikeHandler.ListBikes)
		bikes.POST("", bikeHandler.RegisterBike)
	}

	orders := rg.Group(PathOrders)
	{
		orders.GET("", orderHandler.ListOrders)
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.PATCH("/:id/status", orderHandler.ChangeStatus)
	}
}
