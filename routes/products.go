package routes

import (
	"github.com/gin-gonic/gin"

	productcontroller "github.com/sweetstore/sweetstore-api/controllers/product"
	"github.com/sweetstore/sweetstore-api/service"
)

func SetupProductRoutes(r *gin.Engine, svc *service.Service) {
	products := r.Group("/products")
	{
		products.GET("", productcontroller.GetProducts(svc))
		products.GET("/category/:category", productcontroller.GetProductsByCategory(svc))
		products.GET("/export", productcontroller.ExportProductsToExcel(svc))
		products.GET("/:id", productcontroller.GetProductByID(svc))
		products.POST("", productcontroller.CreateProduct(svc))
		products.PUT("/:id", productcontroller.UpdateProduct(svc))
		products.DELETE("/:id", productcontroller.DeleteProduct(svc))
	}
}
