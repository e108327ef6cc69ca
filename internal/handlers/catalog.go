package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront/internal/catalog"
	"storefront/internal/models"
)

/*
GET /products
- category OPTIONAL → without it, the full catalog in display order
*/
func GetProducts() gin.HandlerFunc {
	return func(c *gin.Context) {
		category := strings.TrimSpace(c.Query("category"))
		if category == "" {
			c.JSON(http.StatusOK, catalog.All())
			return
		}

		c.JSON(http.StatusOK, catalog.ByType(models.ProductType(category)))
	}
}

// GET /products/:id
func GetProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		product, ok := catalog.ByID(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
