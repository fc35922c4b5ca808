package routes

import (
	"github.com/giftwish/api-go/controllers"
	"github.com/giftwish/api-go/middleware"
	"github.com/gin-gonic/gin"
)

func SetupWishlistRoutes(api *gin.RouterGroup, wishlistController *controllers.WishlistController, productController *controllers.ProductController, uploadController *controllers.UploadController) {
	// Shared views and reservations are open to anonymous actors; reservation
	// still resolves the actor when a token is present so owners get rejected.
	api.GET("/wishlists/view/:userUuid/:wishlistIds", wishlistController.ViewShared)

	open := api.Group("/products")
	open.Use(middleware.OptionalAuthMiddleware())
	{
		open.POST("/:id/reserve", productController.ReserveProduct)
		open.POST("/:id/unreserve", productController.UnreserveProduct)
	}

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/wishlists", wishlistController.ListWishlists)
		protected.POST("/wishlists", wishlistController.CreateWishlist)
		protected.GET("/wishlists/:id", wishlistController.GetWishlist)
		protected.PUT("/wishlists/:id", wishlistController.UpdateWishlist)
		protected.DELETE("/wishlists/:id", wishlistController.DeleteWishlist)
		protected.POST("/wishlists/generate-shared-link", wishlistController.GenerateShareLink)

		protected.GET("/products", productController.ListProducts)
		protected.GET("/products/:id", productController.GetProduct)
		protected.PUT("/products/:id", productController.UpdateProduct)
		protected.DELETE("/products/:id", productController.DeleteProduct)
		protected.POST("/products/:id/image-upload-url", uploadController.GetProductImageURL)
		protected.POST("/products/:id/upload-image", uploadController.ConfirmProductImage)

		protected.POST("/merge-wishlist", wishlistController.MergeWishlists)
	}
}
