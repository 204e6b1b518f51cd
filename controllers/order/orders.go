package ordercontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sweetstore/sweetstore-api/dto"
	"github.com/sweetstore/sweetstore-api/metrics"
	"github.com/sweetstore/sweetstore-api/models"
	"github.com/sweetstore/sweetstore-api/service"
)

type PlaceOrderInput struct {
	CustomerID int `json:"customerId" binding:"required"`
}

type UpdateOrderStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// GET /orders
func GetOrders(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := svc.ListOrders(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, dto.FromOrders(orders))
	}
}

// GET /orders/customer/:customerId
func GetCustomerOrders(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID, err := strconv.Atoi(c.Param("customerId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer ID"})
			return
		}
		orders, err := svc.OrdersByCustomer(c.Request.Context(), customerID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, dto.FromOrders(orders))
	}
}

// GET /orders/:id
func GetOrderByID(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}
		order, err := svc.Order(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, service.ErrOrderNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve order"})
			return
		}
		c.JSON(http.StatusOK, dto.FromOrder(*order))
	}
}

// POST /orders
func PlaceOrder(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input PlaceOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		order, err := svc.PlaceOrder(c.Request.Context(), input.CustomerID)
		if err != nil {
			if errors.Is(err, service.ErrCustomerNotFound) || errors.Is(err, service.ErrEmptyCart) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			return
		}
		metrics.OrdersTotal.WithLabelValues(string(order.Status)).Inc()

		out := dto.FromOrder(*order)
		broadcastOrder(out)
		c.JSON(http.StatusCreated, out)
	}
}

// PUT /orders/:id/status
func UpdateOrderStatus(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}
		var input UpdateOrderStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		status, err := models.ParseOrderStatus(input.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order status"})
			return
		}
		order, err := svc.UpdateOrderStatus(c.Request.Context(), id, status)
		if err != nil {
			if errors.Is(err, service.ErrOrderNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			return
		}

		out := dto.FromOrder(*order)
		broadcastOrder(out)
		c.JSON(http.StatusOK, out)
	}
}
