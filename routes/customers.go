package routes

import (
	"github.com/gin-gonic/gin"

	customercontroller "github.com/sweetstore/sweetstore-api/controllers/customer"
	"github.com/sweetstore/sweetstore-api/service"
)

func SetupCustomerRoutes(r *gin.Engine, svc *service.Service) {
	customers := r.Group("/customers")
	{
		customers.GET("", customercontroller.GetCustomers(svc))
		customers.GET("/:id", customercontroller.GetCustomerByID(svc))
		customers.POST("", customercontroller.CreateCustomer(svc))
	}
}
