package routes

import (
	"github.com/decorhaven/decorhaven-api/controllers"
	"github.com/gin-gonic/gin"
)

func AuthRoutes(server *gin.Engine) {
	auth := server.Group("/api/auth")
	auth.POST("/signup", controllers.Signup)
	auth.POST("/login", controllers.Login)
}
