package controllers

import (
	"net/http"

	"github.com/giftwish/api-go/engine"
	"github.com/giftwish/api-go/models"
	"github.com/giftwish/api-go/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PostController struct {
	DB *gorm.DB
}

type TagInput struct {
	Name string `json:"name" binding:"required"`
}

type CreatePostRequest struct {
	Title string     `json:"title"`
	Body  string     `json:"body"`
	Image string     `json:"image"`
	Tags  []TagInput `json:"tags"`
}

type UpdatePostRequest struct {
	Title *string     `json:"title"`
	Body  *string     `json:"body"`
	Image *string     `json:"image"`
	Tags  *[]TagInput `json:"tags"`
}

func NewPostController(db *gorm.DB) *PostController {
	return &PostController{DB: db}
}

// ListPosts godoc
// @Summary List blog posts
// @Description Returns all posts, newest first, with their tags
// @Tags posts
// @Produce json
// @Success 200 {array} models.Post
// @Router /posts [get]
func (pc *PostController) ListPosts(c *gin.Context) {
	var posts []models.Post
	if err := pc.DB.Preload("Tags").Order("created_at DESC").Find(&posts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list posts"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (pc *PostController) GetPost(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post id"})
		return
	}

	var post models.Post
	if err := pc.DB.Preload("Tags").First(&post, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	c.JSON(http.StatusOK, post)
}

// CreatePost godoc
// @Summary Create a blog post
// @Description Staff only; tags are get-or-created per user
// @Tags posts
// @Accept json
// @Produce json
// @Param post body CreatePostRequest true "Post creation request"
// @Success 201 {object} models.Post
// @Router /posts [post]
func (pc *PostController) CreatePost(c *gin.Context) {
	actor := utils.GetActor(c)
	if !engine.IsAdmin(actor) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only staff can create posts"})
		return
	}

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post := models.Post{
		Title:   req.Title,
		Body:    req.Body,
		Image:   req.Image,
		OwnerID: actor.ID,
	}

	tx := pc.DB.Begin()
	if err := tx.Create(&post).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}
	if err := pc.attachTags(tx, &post, req.Tags, actor.ID); err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create tags"})
		return
	}
	tx.Commit()

	c.JSON(http.StatusCreated, post)
}

func (pc *PostController) UpdatePost(c *gin.Context) {
	actor := utils.GetActor(c)
	if !engine.IsAdmin(actor) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only staff can update posts"})
		return
	}

	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post id"})
		return
	}

	var post models.Post
	if err := pc.DB.Preload("Tags").First(&post, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Body != nil {
		updates["body"] = *req.Body
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}

	tx := pc.DB.Begin()
	if len(updates) > 0 {
		if err := tx.Model(&post).Updates(updates).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post"})
			return
		}
	}
	if req.Tags != nil {
		if len(*req.Tags) == 0 {
			if err := tx.Model(&post).Association("Tags").Clear(); err != nil {
				tx.Rollback()
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update tags"})
				return
			}
			post.Tags = nil
		}
		if err := pc.attachTags(tx, &post, *req.Tags, actor.ID); err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update tags"})
			return
		}
	}
	tx.Commit()

	c.JSON(http.StatusOK, post)
}

func (pc *PostController) DeletePost(c *gin.Context) {
	actor := utils.GetActor(c)
	if !engine.IsAdmin(actor) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only staff can delete posts"})
		return
	}

	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post id"})
		return
	}

	result := pc.DB.Delete(&models.Post{}, id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

// attachTags get-or-creates tags per (name, user) and links them to the post.
func (pc *PostController) attachTags(tx *gorm.DB, post *models.Post, tags []TagInput, userID uint) error {
	for _, input := range tags {
		var tag models.Tag
		err := tx.Where("name = ? AND user_id = ?", input.Name, userID).First(&tag).Error
		if err == gorm.ErrRecordNotFound {
			tag = models.Tag{Name: input.Name, UserID: userID}
			if err := tx.Create(&tag).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
		if err := tx.Model(post).Association("Tags").Append(&tag); err != nil {
			return err
		}
		post.Tags = append(post.Tags, tag)
	}
	return nil
}
