package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sweetstore/sweetstore-api/service"
)

// SetupRoutes is the single entry-point that wires up all route groups.
func SetupRoutes(r *gin.Engine, svc *service.Service) {
	SetupProductRoutes(r, svc)
	SetupCustomerRoutes(r, svc)
	SetupCartRoutes(r, svc)
	SetupOrderRoutes(r, svc)
}
