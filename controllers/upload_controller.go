package controllers

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/giftwish/api-go/config"
	"github.com/giftwish/api-go/engine"
	"github.com/giftwish/api-go/models"
	"github.com/giftwish/api-go/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UploadController hands out presigned PUT URLs for product and blog images
// and records the resulting public URL on the row once the client confirms.
type UploadController struct {
	DB       *gorm.DB
	R2Client *s3.Client
	R2Config *config.R2Config
}

type ImageUploadRequest struct {
	FileName    string `json:"fileName" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
	FileSize    int64  `json:"fileSize" binding:"required"`
}

type ImageConfirmRequest struct {
	Key string `json:"key" binding:"required"`
}

type PresignedURLResponse struct {
	UploadURL string `json:"uploadUrl"`
	FileURL   string `json:"fileUrl"`
	Key       string `json:"key"`
	ExpiresIn int    `json:"expiresIn"`
}

func NewUploadController(db *gorm.DB) *UploadController {
	r2Config := config.GetR2Config()

	// Create R2 client
	r2Client := s3.New(s3.Options{
		BaseEndpoint: aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", r2Config.AccountID)),
		Credentials: credentials.NewStaticCredentialsProvider(
			r2Config.AccessKeyID,
			r2Config.SecretAccessKey,
			"",
		),
		Region: r2Config.Region,
	})

	return &UploadController{
		DB:       db,
		R2Client: r2Client,
		R2Config: r2Config,
	}
}

// GetProductImageURL godoc
// @Summary Presign a product image upload
// @Tags uploads
// @Accept json
// @Produce json
// @Param request body ImageUploadRequest true "Upload request"
// @Success 200 {object} StandardResponse
// @Router /products/{id}/image-upload-url [post]
func (uc *UploadController) GetProductImageURL(c *gin.Context) {
	uc.presignImage(c, "product")
}

// GetPostImageURL presigns a blog image upload; staff only since blog writes
// are staff gated.
func (uc *UploadController) GetPostImageURL(c *gin.Context) {
	if !engine.IsAdmin(utils.GetActor(c)) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only staff can upload blog images"})
		return
	}
	uc.presignImage(c, "blog")
}

func (uc *UploadController) presignImage(c *gin.Context, kind string) {
	var req ImageUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !uc.isValidImageType(req.ContentType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image type"})
		return
	}
	if !uc.isValidImageSize(req.FileSize) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File size exceeds limit"})
		return
	}

	key := uc.generateImageKey(kind, req.FileName)
	presignedURL, err := uc.createPresignedURL(key, req.ContentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload URL"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data: PresignedURLResponse{
			UploadURL: presignedURL,
			FileURL:   fmt.Sprintf("%s/%s", uc.R2Config.PublicURL, key),
			Key:       key,
			ExpiresIn: 3600, // 1 hour
		},
		Message: "Presigned URL generated successfully",
	})
}

// ConfirmProductImage verifies the object landed in storage and stores its
// public URL on the caller's product.
func (uc *UploadController) ConfirmProductImage(c *gin.Context) {
	actor := utils.GetActor(c)

	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	var product models.Product
	if err := uc.DB.Where("user_id = ?", actor.ID).First(&product, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	var req ImageConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	exists, err := uc.verifyFileExists(req.Key)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify file upload"})
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found in storage"})
		return
	}

	fileURL := fmt.Sprintf("%s/%s", uc.R2Config.PublicURL, req.Key)
	if err := uc.DB.Model(&product).Update("image", fileURL).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    gin.H{"id": product.ID, "image": fileURL},
		Message: "Image upload confirmed successfully",
	})
}

// ConfirmPostImage is the blog counterpart of ConfirmProductImage.
func (uc *UploadController) ConfirmPostImage(c *gin.Context) {
	if !engine.IsAdmin(utils.GetActor(c)) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only staff can upload blog images"})
		return
	}

	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post id"})
		return
	}

	var post models.Post
	if err := uc.DB.First(&post, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	var req ImageConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	exists, err := uc.verifyFileExists(req.Key)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify file upload"})
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found in storage"})
		return
	}

	fileURL := fmt.Sprintf("%s/%s", uc.R2Config.PublicURL, req.Key)
	if err := uc.DB.Model(&post).Update("image", fileURL).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    gin.H{"id": post.ID, "image": fileURL},
		Message: "Image upload confirmed successfully",
	})
}

// Helper functions
func (uc *UploadController) isValidImageType(contentType string) bool {
	validTypes := []string{
		"image/jpeg", "image/jpg", "image/png", "image/webp", "image/heic",
	}
	for _, validType := range validTypes {
		if contentType == validType {
			return true
		}
	}
	return false
}

func (uc *UploadController) isValidImageSize(fileSize int64) bool {
	const limit = 10 * 1024 * 1024 // 10MB
	return fileSize <= limit
}

func (uc *UploadController) generateImageKey(kind, fileName string) string {
	ext := filepath.Ext(fileName)
	return fmt.Sprintf("uploads/%s/%s%s", kind, uuid.New().String(), ext)
}

func (uc *UploadController) createPresignedURL(key, contentType string) (string, error) {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(uc.R2Config.BucketName),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}

	presigner := s3.NewPresignClient(uc.R2Client)
	req, err := presigner.PresignPutObject(context.TODO(), input, func(opts *s3.PresignOptions) {
		opts.Expires = time.Hour // 1 hour expiry
	})
	if err != nil {
		return "", err
	}

	return req.URL, nil
}

func (uc *UploadController) verifyFileExists(key string) (bool, error) {
	input := &s3.HeadObjectInput{
		Bucket: aws.String(uc.R2Config.BucketName),
		Key:    aws.String(key),
	}

	_, err := uc.R2Client.HeadObject(context.TODO(), input)
	if err != nil {
		return false, nil
	}
	return true, nil
}
