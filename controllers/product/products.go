package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/sweetstore/sweetstore-api/dto"
	"github.com/sweetstore/sweetstore-api/models"
	"github.com/sweetstore/sweetstore-api/service"
)

type ProductInput struct {
	Name          string          `json:"name" binding:"required"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	Category      string          `json:"category" binding:"required"`
	ImageURL      string          `json:"imageUrl"`
	IsAvailable   bool            `json:"isAvailable"`
	StockQuantity int             `json:"stockQuantity" binding:"min=0"`
}

// GET /products
func GetProducts(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.ListProducts(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, dto.FromProducts(products))
	}
}

// GET /products/category/:category
func GetProductsByCategory(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		category, err := models.ParseCategory(c.Param("category"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
			return
		}
		products, err := svc.ProductsByCategory(c.Request.Context(), category)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, dto.FromProducts(products))
	}
}

// GET /products/:id
func GetProductByID(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}
		product, err := svc.Product(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, service.ErrProductNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			return
		}
		c.JSON(http.StatusOK, dto.FromProduct(*product))
	}
}

// POST /products
func CreateProduct(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		product, ok := productFromInput(c, input)
		if !ok {
			return
		}
		if err := svc.CreateProduct(c.Request.Context(), &product); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, dto.FromProduct(product))
	}
}

// PUT /products/:id
func UpdateProduct(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		product, ok := productFromInput(c, input)
		if !ok {
			return
		}
		product.ProductID = id
		if err := svc.UpdateProduct(c.Request.Context(), &product); err != nil {
			if errors.Is(err, service.ErrProductNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, dto.FromProduct(product))
	}
}

// DELETE /products/:id
func DeleteProduct(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}
		if err := svc.DeleteProduct(c.Request.Context(), id); err != nil {
			if errors.Is(err, service.ErrProductNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}

func productFromInput(c *gin.Context, input ProductInput) (models.Product, bool) {
	category, err := models.ParseCategory(input.Category)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
		return models.Product{}, false
	}
	if input.Price.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must not be negative"})
		return models.Product{}, false
	}
	return models.Product{
		Name:          input.Name,
		Description:   input.Description,
		Price:         input.Price,
		Category:      category,
		ImageURL:      input.ImageURL,
		IsAvailable:   input.IsAvailable,
		StockQuantity: input.StockQuantity,
	}, true
}
