package controllers

import (
	"net/http"

	"github.com/giftwish/api-go/engine"
	"github.com/giftwish/api-go/models"
	"github.com/giftwish/api-go/store"
	"github.com/giftwish/api-go/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProductController struct {
	DB     *gorm.DB
	Engine *engine.WishlistEngine
}

func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{
		DB:     db,
		Engine: engine.NewWishlistEngine(store.NewGormStore(db)),
	}
}

type UpdateProductRequest struct {
	Name     *string `json:"name"`
	Priority *string `json:"priority"`
	Price    *string `json:"price"`
	Link     *string `json:"link"`
	Notes    *string `json:"notes"`
	Image    *string `json:"image"`
}

// ListProducts godoc
// @Summary List the authenticated user's products
// @Description assigned_only=1 keeps only products belonging to a wishlist
// @Tags products
// @Produce json
// @Param assigned_only query int false "Filter by wishlist assignment" Enums(0, 1)
// @Success 200 {array} models.Product
// @Router /products [get]
func (pc *ProductController) ListProducts(c *gin.Context) {
	actor := utils.GetActor(c)

	query := pc.DB.Where("user_id = ?", actor.ID)
	if c.Query("assigned_only") == "1" {
		query = query.Distinct().
			Joins("JOIN wishlist_products ON wishlist_products.product_id = products.id")
	}

	var products []models.Product
	if err := query.Order("name DESC").Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

func (pc *ProductController) GetProduct(c *gin.Context) {
	actor := utils.GetActor(c)

	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	var product models.Product
	if err := pc.DB.Where("user_id = ?", actor.ID).First(&product, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (pc *ProductController) UpdateProduct(c *gin.Context) {
	actor := utils.GetActor(c)

	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	var product models.Product
	if err := pc.DB.Where("user_id = ?", actor.ID).First(&product, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Priority != nil {
		if *req.Priority != models.PriorityHigh && *req.Priority != models.PriorityMedium && *req.Priority != models.PriorityLow {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Priority must be HIGH, MEDIUM or LOW"})
			return
		}
		updates["priority"] = *req.Priority
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Link != nil {
		updates["link"] = *req.Link
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}

	if len(updates) > 0 {
		if err := pc.DB.Model(&product).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
	}
	c.JSON(http.StatusOK, product)
}

func (pc *ProductController) DeleteProduct(c *gin.Context) {
	actor := utils.GetActor(c)

	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	result := pc.DB.Where("user_id = ?", actor.ID).Delete(&models.Product{}, id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

// ReserveProduct godoc
// @Summary Reserve a product as a gift
// @Description Open to anonymous actors; owners are rejected
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Product
// @Router /products/{id}/reserve [post]
func (pc *ProductController) ReserveProduct(c *gin.Context) {
	pc.setReserved(c, true)
}

// UnreserveProduct clears a reservation under the same rules as reserve.
func (pc *ProductController) UnreserveProduct(c *gin.Context) {
	pc.setReserved(c, false)
}

func (pc *ProductController) setReserved(c *gin.Context, reserved bool) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	actor := utils.GetActor(c)
	var product *models.Product
	if reserved {
		product, err = pc.Engine.Reserve(c.Request.Context(), actor, id)
	} else {
		product, err = pc.Engine.Unreserve(c.Request.Context(), actor, id)
	}
	if err != nil {
		c.JSON(engine.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, product)
}
