package controllers

import (
	"net/http"

	"github.com/giftwish/api-go/engine"
	"github.com/giftwish/api-go/models"
	"github.com/giftwish/api-go/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TagController struct {
	DB *gorm.DB
}

func NewTagController(db *gorm.DB) *TagController {
	return &TagController{DB: db}
}

func (tc *TagController) ListTags(c *gin.Context) {
	var tags []models.Tag
	if err := tc.DB.Find(&tags).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list tags"})
		return
	}
	c.JSON(http.StatusOK, tags)
}

func (tc *TagController) GetTag(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tag id"})
		return
	}

	var tag models.Tag
	if err := tc.DB.First(&tag, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tag not found"})
		return
	}
	c.JSON(http.StatusOK, tag)
}

// UpdateTag renames a tag; staff only.
func (tc *TagController) UpdateTag(c *gin.Context) {
	if !engine.IsAdmin(utils.GetActor(c)) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only staff can update tags"})
		return
	}

	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tag id"})
		return
	}

	var input TagInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var tag models.Tag
	if err := tc.DB.First(&tag, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tag not found"})
		return
	}

	if err := tc.DB.Model(&tag).Update("name", input.Name).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update tag"})
		return
	}
	c.JSON(http.StatusOK, tag)
}

func (tc *TagController) DeleteTag(c *gin.Context) {
	if !engine.IsAdmin(utils.GetActor(c)) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only staff can delete tags"})
		return
	}

	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tag id"})
		return
	}

	result := tc.DB.Delete(&models.Tag{}, id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete tag"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tag not found"})
		return
	}
	c.JSON(http.StatusNoContent, nil)
}
