package routes

import (
	"github.com/giftwish/api-go/controllers"
	"github.com/giftwish/api-go/middleware"
	"github.com/gin-gonic/gin"
)

func SetupUserRoutes(api *gin.RouterGroup, authController *controllers.AuthController) {
	users := api.Group("/users")
	{
		users.POST("/register", authController.Register)
		users.POST("/login", authController.Login)
		users.POST("/refresh-token", authController.RefreshToken)
	}

	protected := api.Group("/users")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/logout", authController.Logout)
		protected.GET("/me", authController.GetProfile)
		protected.PUT("/me", authController.UpdateProfile)
		protected.PUT("/change-password", authController.ChangePassword)
		protected.PUT("/change-email", authController.ChangeEmail)
		protected.DELETE("/me", authController.SoftDeleteUser)
	}
}
