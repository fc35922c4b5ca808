package controllers

import (
	"net/http"
	"strconv"

	"github.com/giftwish/api-go/engine"
	"github.com/giftwish/api-go/store"
	"github.com/giftwish/api-go/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CommentController struct {
	DB     *gorm.DB
	Engine *engine.CommentEngine
}

func NewCommentController(db *gorm.DB) *CommentController {
	return &CommentController{
		DB:     db,
		Engine: engine.NewCommentEngine(store.NewGormStore(db)),
	}
}

type CreateCommentRequest struct {
	Body          string `json:"body" binding:"required"`
	Post          uint   `json:"post" binding:"required"`
	ParentComment *uint  `json:"parent_comment"`
}

type UpdateCommentRequest struct {
	Body string `json:"body" binding:"required"`
}

// ListComments godoc
// @Summary List top-level comments
// @Description Returns top-level comments with their single nested reply
// @Tags comments
// @Produce json
// @Param post query int false "Filter by post ID"
// @Success 200 {array} engine.CommentNode
// @Router /comments [get]
func (cc *CommentController) ListComments(c *gin.Context) {
	var postID uint
	if raw := c.Query("post"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post id"})
			return
		}
		postID = uint(parsed)
	}

	comments, err := cc.Engine.ListTopLevel(c.Request.Context(), postID)
	if err != nil {
		c.JSON(engine.HTTPStatus(err), gin.H{"error": "Failed to list comments"})
		return
	}
	c.JSON(http.StatusOK, comments)
}

// CreateComment godoc
// @Summary Create a comment or a reply
// @Description Top-level comments need authentication; replies need staff
// @Tags comments
// @Accept json
// @Produce json
// @Param comment body CreateCommentRequest true "Comment creation request"
// @Success 201 {object} models.Comment
// @Router /comments [post]
func (cc *CommentController) CreateComment(c *gin.Context) {
	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := cc.Engine.SubmitComment(c.Request.Context(), utils.GetActor(c), engine.SubmitCommentInput{
		PostID:          req.Post,
		Body:            req.Body,
		ParentCommentID: req.ParentComment,
	})
	if err != nil {
		c.JSON(engine.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, comment)
}

func (cc *CommentController) GetComment(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comment id"})
		return
	}

	comment, err := cc.Engine.GetComment(c.Request.Context(), id)
	if err != nil {
		c.JSON(engine.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, comment)
}

// UpdateComment edits the body; only the owner may edit, and any attempt to
// change the owner field is ignored since only the body is written.
func (cc *CommentController) UpdateComment(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comment id"})
		return
	}

	var req UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := cc.Engine.UpdateComment(c.Request.Context(), utils.GetActor(c), id, req.Body)
	if err != nil {
		c.JSON(engine.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, comment)
}

func (cc *CommentController) DeleteComment(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comment id"})
		return
	}

	if err := cc.Engine.DeleteComment(c.Request.Context(), utils.GetActor(c), id); err != nil {
		c.JSON(engine.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

func parseID(raw string) (uint, error) {
	parsed, err := strconv.ParseUint(raw, 10, 32)
	return uint(parsed), err
}
