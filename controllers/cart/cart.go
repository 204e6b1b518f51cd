package cartcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sweetstore/sweetstore-api/dto"
	"github.com/sweetstore/sweetstore-api/service"
)

type AddToCartInput struct {
	CustomerID int `json:"customerId" binding:"required"`
	ProductID  int `json:"productId" binding:"required"`
	Quantity   int `json:"quantity" binding:"required,min=1"`
}

// GET /cart/:customerId
func GetCart(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID, err := strconv.Atoi(c.Param("customerId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer ID"})
			return
		}
		customer, err := svc.Customer(c.Request.Context(), customerID)
		if err != nil {
			if errors.Is(err, service.ErrCustomerNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		cart, err := svc.Cart(c.Request.Context(), customerID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, dto.FromCart(*cart, *customer))
	}
}

// POST /cart/add
func AddToCart(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddToCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		customer, err := svc.Customer(c.Request.Context(), input.CustomerID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Customer not found"})
			return
		}
		cart, err := svc.AddItem(c.Request.Context(), input.CustomerID, input.ProductID, input.Quantity)
		if err != nil {
			if errors.Is(err, service.ErrProductUnavailable) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}
		c.JSON(http.StatusOK, dto.FromCart(*cart, *customer))
	}
}

// DELETE /cart/:customerId/items/:productId
func RemoveFromCart(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID, productID, ok := cartItemParams(c)
		if !ok {
			return
		}
		customer, err := svc.Customer(c.Request.Context(), customerID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}
		cart, err := svc.RemoveItem(c.Request.Context(), customerID, productID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item"})
			return
		}
		c.JSON(http.StatusOK, dto.FromCart(*cart, *customer))
	}
}

// PUT /cart/:customerId/items/:productId/quantity/:quantity
func UpdateItemQuantity(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID, productID, ok := cartItemParams(c)
		if !ok {
			return
		}
		quantity, err := strconv.Atoi(c.Param("quantity"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quantity"})
			return
		}
		customer, err := svc.Customer(c.Request.Context(), customerID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}
		cart, err := svc.UpdateQuantity(c.Request.Context(), customerID, productID, quantity)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update quantity"})
			return
		}
		c.JSON(http.StatusOK, dto.FromCart(*cart, *customer))
	}
}

func cartItemParams(c *gin.Context) (customerID, productID int, ok bool) {
	customerID, err := strconv.Atoi(c.Param("customerId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer ID"})
		return 0, 0, false
	}
	productID, err = strconv.Atoi(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return 0, 0, false
	}
	return customerID, productID, true
}
