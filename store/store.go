package store

import (
	"context"
	"errors"

	"github.com/giftwish/api-go/models"
)

var (
	// ErrNotFound is returned when a referenced record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateReply is returned when an insert loses the race on the
	// one-reply-per-parent unique index.
	ErrDuplicateReply = errors.New("parent comment already has a reply")
)

// CommentStore is the persistence surface the comment threading engine needs.
type CommentStore interface {
	GetComment(ctx context.Context, id uint) (*models.Comment, error)
	HasReply(ctx context.Context, parentID uint) (bool, error)
	CreateComment(ctx context.Context, comment *models.Comment) error
	UpdateCommentBody(ctx context.Context, id uint, body string) (*models.Comment, error)
	DeleteComment(ctx context.Context, id uint) error
	// ListTopLevelComments returns comments with no parent, newest first.
	// postID 0 means all posts.
	ListTopLevelComments(ctx context.Context, postID uint) ([]models.Comment, error)
	// ListReplies returns the replies whose parent is in parentIDs.
	ListReplies(ctx context.Context, parentIDs []uint) ([]models.Comment, error)
}

// WishlistStore is the persistence surface the sharing/reservation engine needs.
type WishlistStore interface {
	// WishlistsOwnedBy resolves ids restricted to the given owner.
	WishlistsOwnedBy(ctx context.Context, userID uint, ids []uint) ([]models.Wishlist, error)
	// WishlistsForOwnerUUID resolves ids restricted to the owner's public uuid,
	// products preloaded.
	WishlistsForOwnerUUID(ctx context.Context, ownerUUID string, ids []uint) ([]models.Wishlist, error)
	MarkWishlistsPublic(ctx context.Context, ids []uint) error
	GetProduct(ctx context.Context, id uint) (*models.Product, error)
	SetProductReserved(ctx context.Context, id uint, reserved bool) error
	CreateWishlist(ctx context.Context, wishlist *models.Wishlist) error
	// GetOrCreateProduct matches an existing product of the same owner with
	// identical attributes, or creates one.
	GetOrCreateProduct(ctx context.Context, product *models.Product) (*models.Product, error)
	AddProductToWishlist(ctx context.Context, wishlistID, productID uint) error
}
