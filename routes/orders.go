package routes

import (
	"github.com/gin-gonic/gin"

	ordercontroller "github.com/sweetstore/sweetstore-api/controllers/order"
	"github.com/sweetstore/sweetstore-api/service"
)

func SetupOrderRoutes(r *gin.Engine, svc *service.Service) {
	orders := r.Group("/orders")
	{
		orders.GET("", ordercontroller.GetOrders(svc))
		orders.GET("/customer/:customerId", ordercontroller.GetCustomerOrders(svc))
		orders.GET("/ws", ordercontroller.OrderFeed)
		orders.GET("/:id", ordercontroller.GetOrderByID(svc))
		orders.POST("", ordercontroller.PlaceOrder(svc))
		orders.PUT("/:id/status", ordercontroller.UpdateOrderStatus(svc))
	}
}
