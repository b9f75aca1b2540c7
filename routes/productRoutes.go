package routes

import (
	"github.com/decorhaven/decorhaven-api/controllers"
	"github.com/decorhaven/decorhaven-api/middlewares"
	"github.com/gin-gonic/gin"
)

func ProductRoutes(server *gin.Engine, pc *controllers.ProductController) {
	products := server.Group("/api/products")

	products.GET("", pc.GetProducts)
	products.GET("/featured", pc.GetFeaturedProducts)
	products.GET("/category/:category", pc.GetProductsByCategory)
	products.GET("/:id", pc.GetProduct)

	admin := products.Group("", middlewares.RequireAuth(), middlewares.RequireAdmin())
	admin.POST("", pc.CreateProduct)
	admin.PUT("/:id", pc.UpdateProduct)
	admin.DELETE("/:id", pc.DeleteProduct)
	admin.POST("/:id/images", pc.UploadProductImages)
}
