package routes

import (
	"github.com/giftwish/api-go/controllers"
	"github.com/giftwish/api-go/middleware"
	"github.com/gin-gonic/gin"
)

func SetupBlogRoutes(api *gin.RouterGroup, postController *controllers.PostController, commentController *controllers.CommentController, tagController *controllers.TagController, uploadController *controllers.UploadController) {
	// The blog is world-readable; writes go through the protected groups.
	api.GET("/posts", postController.ListPosts)
	api.GET("/posts/:id", postController.GetPost)
	api.GET("/comments", commentController.ListComments)
	api.GET("/comments/:id", commentController.GetComment)
	api.GET("/tags", tagController.ListTags)
	api.GET("/tags/:id", tagController.GetTag)

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/posts", postController.CreatePost)
		protected.PUT("/posts/:id", postController.UpdatePost)
		protected.DELETE("/posts/:id", postController.DeletePost)
		protected.POST("/posts/:id/image-upload-url", uploadController.GetPostImageURL)
		protected.POST("/posts/:id/upload-image", uploadController.ConfirmPostImage)

		protected.POST("/comments", commentController.CreateComment)
		protected.PUT("/comments/:id", commentController.UpdateComment)
		protected.DELETE("/comments/:id", commentController.DeleteComment)

		protected.PUT("/tags/:id", tagController.UpdateTag)
		protected.DELETE("/tags/:id", tagController.DeleteTag)
	}
}
