package main

import (
	"time"

	"github.com/decorhaven/decorhaven-api/controllers"
	"github.com/decorhaven/decorhaven-api/initializers"
	"github.com/decorhaven/decorhaven-api/routes"
	"github.com/decorhaven/decorhaven-api/storage"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func init() {
	initializers.LoadEnv()
	initializers.ConnectToDB()
	initializers.SyncDatabase()
}

func main() {
	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "https://www.decorhaven.store"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	store := storage.FromEnv(initializers.DB)
	productController := controllers.NewProductController(store)

	routes.DefaultRoutes(server)
	routes.ProductRoutes(server, productController)
	if initializers.DB != nil {
		// The hosted deployment delegates accounts to the backend
		// service; auth endpoints only exist alongside the local
		// database.
		routes.AuthRoutes(server)
	}

	server.Run()
}
