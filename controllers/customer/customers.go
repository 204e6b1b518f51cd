package customercontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sweetstore/sweetstore-api/dto"
	"github.com/sweetstore/sweetstore-api/models"
	"github.com/sweetstore/sweetstore-api/service"
)

type CreateCustomerInput struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone"`
	Type  string `json:"type" binding:"required"`
}

// GET /customers
func GetCustomers(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		customers, err := svc.ListCustomers(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch customers"})
			return
		}
		c.JSON(http.StatusOK, dto.FromCustomers(customers))
	}
}

// GET /customers/:id
func GetCustomerByID(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer ID"})
			return
		}
		customer, err := svc.Customer(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, service.ErrCustomerNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve customer"})
			return
		}
		c.JSON(http.StatusOK, dto.FromCustomer(*customer))
	}
}

// POST /customers
func CreateCustomer(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateCustomerInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		tier, err := models.ParseTier(input.Type)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer tier"})
			return
		}
		customer, err := svc.RegisterCustomer(c.Request.Context(), input.Name, input.Email, input.Phone, tier)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create customer"})
			return
		}
		c.JSON(http.StatusCreated, dto.FromCustomer(*customer))
	}
}
