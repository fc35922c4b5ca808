package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/giftwish/api-go/engine"
	"github.com/giftwish/api-go/models"
	"github.com/giftwish/api-go/store"
	"github.com/giftwish/api-go/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type WishlistController struct {
	DB     *gorm.DB
	Store  *store.GormStore
	Engine *engine.WishlistEngine
}

func NewWishlistController(db *gorm.DB) *WishlistController {
	gormStore := store.NewGormStore(db)
	return &WishlistController{
		DB:     db,
		Store:  gormStore,
		Engine: engine.NewWishlistEngine(gormStore),
	}
}

type ProductInput struct {
	Name     string `json:"name" binding:"required"`
	Priority string `json:"priority"`
	Price    string `json:"price"`
	Link     string `json:"link"`
	Notes    string `json:"notes"`
}

type CreateWishlistRequest struct {
	Title        string         `json:"title" binding:"required"`
	Description  string         `json:"description"`
	Address      string         `json:"address"`
	OccasionDate *time.Time     `json:"occasion_date"`
	Products     []ProductInput `json:"products"`
}

type UpdateWishlistRequest struct {
	Title        *string         `json:"title"`
	Description  *string         `json:"description"`
	Address      *string         `json:"address"`
	OccasionDate *time.Time      `json:"occasion_date"`
	Products     *[]ProductInput `json:"products"`
}

type GenerateShareLinkRequest struct {
	Wishlists []uint `json:"wishlists" binding:"required,min=1"`
	BaseURL   string `json:"base_url"`
}

type MergeWishlistRequest struct {
	WishList []engine.MergeWishlist `json:"wishList" binding:"required"`
}

// listProjection hides the owner-only fields from a wishlist.
func listProjection(wishlist models.Wishlist) gin.H {
	products := wishlist.Products
	if products == nil {
		products = []models.Product{}
	}
	return gin.H{
		"id":            wishlist.ID,
		"title":         wishlist.Title,
		"occasion_date": wishlist.OccasionDate,
		"is_public":     wishlist.IsPublic,
		"products":      products,
	}
}

// ListWishlists godoc
// @Summary List the authenticated user's wishlists
// @Description Optionally filtered by comma separated product ids
// @Tags wishlists
// @Produce json
// @Param products query string false "Comma separated product IDs to filter"
// @Success 200 {array} map[string]interface{}
// @Router /wishlists [get]
func (wc *WishlistController) ListWishlists(c *gin.Context) {
	actor := utils.GetActor(c)

	query := wc.DB.Preload("Products").Where("user_id = ?", actor.ID)
	if raw := c.Query("products"); raw != "" {
		productIDs, err := parseIDList(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid products filter"})
			return
		}
		query = query.Distinct().
			Joins("JOIN wishlist_products ON wishlist_products.wishlist_id = wishlists.id").
			Where("wishlist_products.product_id IN ?", productIDs)
	}

	var wishlists []models.Wishlist
	if err := query.Order("id DESC").Find(&wishlists).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list wishlists"})
		return
	}

	result := make([]gin.H, 0, len(wishlists))
	for _, wishlist := range wishlists {
		result = append(result, listProjection(wishlist))
	}
	c.JSON(http.StatusOK, result)
}

// GetWishlist returns the detail projection, description and address included.
func (wc *WishlistController) GetWishlist(c *gin.Context) {
	actor := utils.GetActor(c)

	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid wishlist id"})
		return
	}

	var wishlist models.Wishlist
	if err := wc.DB.Preload("Products").Where("user_id = ?", actor.ID).First(&wishlist, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Wishlist not found"})
		return
	}
	c.JSON(http.StatusOK, wishlist)
}

func (wc *WishlistController) CreateWishlist(c *gin.Context) {
	actor := utils.GetActor(c)

	var req CreateWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	wishlist := models.Wishlist{
		UserID:       actor.ID,
		Title:        req.Title,
		Description:  req.Description,
		Address:      req.Address,
		OccasionDate: req.OccasionDate,
	}
	if err := wc.DB.Create(&wishlist).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create wishlist"})
		return
	}

	if err := wc.attachProducts(c, &wishlist, req.Products, actor.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to attach products"})
		return
	}
	c.JSON(http.StatusCreated, wishlist)
}

func (wc *WishlistController) UpdateWishlist(c *gin.Context) {
	actor := utils.GetActor(c)

	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid wishlist id"})
		return
	}

	var wishlist models.Wishlist
	if err := wc.DB.Where("user_id = ?", actor.ID).First(&wishlist, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Wishlist not found"})
		return
	}

	var req UpdateWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.OccasionDate != nil {
		updates["occasion_date"] = *req.OccasionDate
	}
	if len(updates) > 0 {
		if err := wc.DB.Model(&wishlist).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update wishlist"})
			return
		}
	}

	if req.Products != nil {
		if len(*req.Products) == 0 {
			if err := wc.DB.Model(&wishlist).Association("Products").Clear(); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update products"})
				return
			}
			wishlist.Products = nil
		}
		if err := wc.attachProducts(c, &wishlist, *req.Products, actor.ID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update products"})
			return
		}
	}
	c.JSON(http.StatusOK, wishlist)
}

func (wc *WishlistController) DeleteWishlist(c *gin.Context) {
	actor := utils.GetActor(c)

	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid wishlist id"})
		return
	}

	result := wc.DB.Where("user_id = ?", actor.ID).Delete(&models.Wishlist{}, id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete wishlist"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Wishlist not found"})
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

// GenerateShareLink godoc
// @Summary Publish wishlists and mint their share link
// @Description Marks the listed wishlists public and returns {uuid}/{ids}
// @Tags wishlists
// @Accept json
// @Produce json
// @Param request body GenerateShareLinkRequest true "Wishlist ids to share"
// @Success 200 {object} engine.ShareLink
// @Router /wishlists/generate-shared-link [post]
func (wc *WishlistController) GenerateShareLink(c *gin.Context) {
	var req GenerateShareLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	link, err := wc.Engine.GenerateShareLink(c.Request.Context(), utils.GetActor(c), req.Wishlists, req.BaseURL)
	if err != nil {
		c.JSON(engine.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, link)
}

// ViewShared godoc
// @Summary View shared wishlists
// @Description Public endpoint; rejects the whole batch if any list is private
// @Tags wishlists
// @Produce json
// @Param userUuid path string true "Owner public uuid"
// @Param wishlistIds path string true "Comma separated wishlist ids"
// @Success 200 {array} map[string]interface{}
// @Router /wishlists/view/{userUuid}/{wishlistIds} [get]
func (wc *WishlistController) ViewShared(c *gin.Context) {
	ownerUUID := c.Param("userUuid")
	ids, err := parseIDList(c.Param("wishlistIds"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid wishlist ids"})
		return
	}

	wishlists, err := wc.Engine.ViewShared(c.Request.Context(), ownerUUID, ids)
	if err != nil {
		c.JSON(engine.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	result := make([]gin.H, 0, len(wishlists))
	for _, wishlist := range wishlists {
		result = append(result, listProjection(wishlist))
	}
	c.JSON(http.StatusOK, result)
}

// MergeWishlists adopts wishlists built while the client was anonymous. Only
// the first created wishlist is echoed back.
func (wc *WishlistController) MergeWishlists(c *gin.Context) {
	var req MergeWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	wishlist, err := wc.Engine.MergeWishlists(c.Request.Context(), utils.GetActor(c), req.WishList)
	if err != nil {
		c.JSON(engine.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, wishlist)
}

func (wc *WishlistController) attachProducts(c *gin.Context, wishlist *models.Wishlist, products []ProductInput, userID uint) error {
	for _, input := range products {
		priority := input.Priority
		if priority == "" {
			priority = models.PriorityLow
		}
		product, err := wc.Store.GetOrCreateProduct(c.Request.Context(), &models.Product{
			UserID:   userID,
			Name:     input.Name,
			Priority: priority,
			Price:    input.Price,
			Link:     input.Link,
			Notes:    input.Notes,
		})
		if err != nil {
			return err
		}
		if err := wc.Store.AddProductToWishlist(c.Request.Context(), wishlist.ID, product.ID); err != nil {
			return err
		}
		wishlist.Products = append(wishlist.Products, *product)
	}
	return nil
}

func parseIDList(raw string) ([]uint, error) {
	parts := strings.Split(strings.Trim(raw, "/"), ",")
	ids := make([]uint, 0, len(parts))
	for _, part := range parts {
		parsed, err := strconv.ParseUint(strings.TrimSpace(part), 10, 32)
		if err != nil {
			return nil, err
		}
		ids = append(ids, uint(parsed))
	}
	return ids, nil
}
