package store

import (
	"context"
	"errors"

	"github.com/giftwish/api-go/models"
	"gorm.io/gorm"
)

// GormStore implements CommentStore and WishlistStore on top of gorm.
type GormStore struct {
	DB *gorm.DB
}

var (
	_ CommentStore  = (*GormStore)(nil)
	_ WishlistStore = (*GormStore)(nil)
)

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) GetComment(ctx context.Context, id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := s.DB.WithContext(ctx).First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &comment, nil
}

func (s *GormStore) HasReply(ctx context.Context, parentID uint) (bool, error) {
	var count int64
	err := s.DB.WithContext(ctx).Model(&models.Comment{}).
		Where("parent_comment_id = ?", parentID).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *GormStore) CreateComment(ctx context.Context, comment *models.Comment) error {
	if err := s.DB.WithContext(ctx).Create(comment).Error; err != nil {
		// The unique index on parent_comment_id decides the reply race.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateReply
		}
		return err
	}
	return nil
}

func (s *GormStore) UpdateCommentBody(ctx context.Context, id uint, body string) (*models.Comment, error) {
	comment, err := s.GetComment(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.DB.WithContext(ctx).Model(comment).Update("body", body).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *GormStore) DeleteComment(ctx context.Context, id uint) error {
	result := s.DB.WithContext(ctx).Delete(&models.Comment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) ListTopLevelComments(ctx context.Context, postID uint) ([]models.Comment, error) {
	query := s.DB.WithContext(ctx).Where("parent_comment_id IS NULL")
	if postID != 0 {
		query = query.Where("post_id = ?", postID)
	}
	var comments []models.Comment
	if err := query.Order("created_at DESC").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *GormStore) ListReplies(ctx context.Context, parentIDs []uint) ([]models.Comment, error) {
	if len(parentIDs) == 0 {
		return nil, nil
	}
	var replies []models.Comment
	err := s.DB.WithContext(ctx).
		Where("parent_comment_id IN ?", parentIDs).Find(&replies).Error
	if err != nil {
		return nil, err
	}
	return replies, nil
}

func (s *GormStore) WishlistsOwnedBy(ctx context.Context, userID uint, ids []uint) ([]models.Wishlist, error) {
	var wishlists []models.Wishlist
	err := s.DB.WithContext(ctx).
		Where("user_id = ? AND id IN ?", userID, ids).Find(&wishlists).Error
	if err != nil {
		return nil, err
	}
	return wishlists, nil
}

func (s *GormStore) WishlistsForOwnerUUID(ctx context.Context, ownerUUID string, ids []uint) ([]models.Wishlist, error) {
	var owner models.User
	if err := s.DB.WithContext(ctx).Where("uuid = ?", ownerUUID).First(&owner).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	var wishlists []models.Wishlist
	err := s.DB.WithContext(ctx).Preload("Products").
		Where("user_id = ? AND id IN ?", owner.ID, ids).Find(&wishlists).Error
	if err != nil {
		return nil, err
	}
	return wishlists, nil
}

func (s *GormStore) MarkWishlistsPublic(ctx context.Context, ids []uint) error {
	return s.DB.WithContext(ctx).Model(&models.Wishlist{}).
		Where("id IN ?", ids).Update("is_public", true).Error
}

func (s *GormStore) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := s.DB.WithContext(ctx).First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (s *GormStore) SetProductReserved(ctx context.Context, id uint, reserved bool) error {
	return s.DB.WithContext(ctx).Model(&models.Product{}).
		Where("id = ?", id).Update("is_reserved", reserved).Error
}

func (s *GormStore) CreateWishlist(ctx context.Context, wishlist *models.Wishlist) error {
	return s.DB.WithContext(ctx).Create(wishlist).Error
}

func (s *GormStore) GetOrCreateProduct(ctx context.Context, product *models.Product) (*models.Product, error) {
	var existing models.Product
	err := s.DB.WithContext(ctx).
		Where("user_id = ? AND name = ? AND priority = ? AND price = ? AND link = ? AND notes = ?",
			product.UserID, product.Name, product.Priority, product.Price, product.Link, product.Notes).
		First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err := s.DB.WithContext(ctx).Create(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

func (s *GormStore) AddProductToWishlist(ctx context.Context, wishlistID, productID uint) error {
	wishlist := models.Wishlist{ID: wishlistID}
	product := models.Product{ID: productID}
	return s.DB.WithContext(ctx).Model(&wishlist).Association("Products").Append(&product)
}
