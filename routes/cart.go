package routes

import (
	"github.com/gin-gonic/gin"

	cartcontroller "github.com/sweetstore/sweetstore-api/controllers/cart"
	"github.com/sweetstore/sweetstore-api/service"
)

func SetupCartRoutes(r *gin.Engine, svc *service.Service) {
	cart := r.Group("/cart")
	{
		cart.POST("/add", cartcontroller.AddToCart(svc))
		cart.GET("/:customerId", cartcontroller.GetCart(svc))
		cart.DELETE("/:customerId/items/:productId", cartcontroller.RemoveFromCart(svc))
		cart.PUT("/:customerId/items/:productId/quantity/:quantity", cartcontroller.UpdateItemQuantity(svc))
	}
}
