package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the DecorHaven API ❤️. Enjoy seamless interaction with this API.

The following are the endpoints for this API:

AUTH
- POST "/api/auth/signup" - Create user account
- POST "/api/auth/login" - Access user account

PRODUCT
- GET "/api/products" - Get all products (use ?term= to search)
- GET "/api/products/featured" - Get featured products
- GET "/api/products/category/{category}" - Get products by category
- GET "/api/products/{id}" - Get product by ID
- POST "/api/products" - Create new product (admin)
- PUT "/api/products/{id}" - Update product (admin)
- DELETE "/api/products/{id}" - Delete product (admin)
- POST "/api/products/{id}/images" - Upload product images (admin)`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
