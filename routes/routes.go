package routes

import (
	"github.com/giftwish/api-go/controllers"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Initialize controllers
	authController := controllers.NewAuthController(db)
	postController := controllers.NewPostController(db)
	commentController := controllers.NewCommentController(db)
	tagController := controllers.NewTagController(db)
	wishlistController := controllers.NewWishlistController(db)
	productController := controllers.NewProductController(db)
	uploadController := controllers.NewUploadController(db)

	api := r.Group("/api")

	SetupUserRoutes(api, authController)
	SetupBlogRoutes(api, postController, commentController, tagController, uploadController)
	SetupWishlistRoutes(api, wishlistController, productController, uploadController)
}
