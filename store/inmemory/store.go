package inmemory

import (
	"context"
	"sync"
	"time"

	"github.com/giftwish/api-go/models"
	"github.com/giftwish/api-go/store"
)

// Store is a mutex-guarded in-memory implementation of the store interfaces,
// used by the engine tests. It mirrors the relational behavior the engines
// rely on, including the unique index on parent_comment_id.
type Store struct {
	mu sync.Mutex

	users     map[uint]*models.User
	comments  map[uint]*models.Comment
	wishlists map[uint]*models.Wishlist
	products  map[uint]*models.Product
	// wishlist id -> product ids
	assignments map[uint][]uint

	nextCommentID  uint
	nextWishlistID uint
	nextProductID  uint
}

var (
	_ store.CommentStore  = (*Store)(nil)
	_ store.WishlistStore = (*Store)(nil)
)

func New() *Store {
	return &Store{
		users:       make(map[uint]*models.User),
		comments:    make(map[uint]*models.Comment),
		wishlists:   make(map[uint]*models.Wishlist),
		products:    make(map[uint]*models.Product),
		assignments: make(map[uint][]uint),
	}
}

// AddUser seeds a user; the uuid is what share links resolve against.
func (s *Store) AddUser(user *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = user
}

// AddWishlist seeds a wishlist and its product assignments.
func (s *Store) AddWishlist(wishlist *models.Wishlist) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if wishlist.ID == 0 {
		s.nextWishlistID++
		wishlist.ID = s.nextWishlistID
	} else if wishlist.ID > s.nextWishlistID {
		s.nextWishlistID = wishlist.ID
	}
	s.wishlists[wishlist.ID] = wishlist
	for _, product := range wishlist.Products {
		s.assignments[wishlist.ID] = append(s.assignments[wishlist.ID], product.ID)
	}
}

// AddProduct seeds a product.
func (s *Store) AddProduct(product *models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if product.ID == 0 {
		s.nextProductID++
		product.ID = s.nextProductID
	} else if product.ID > s.nextProductID {
		s.nextProductID = product.ID
	}
	s.products[product.ID] = product
}

func (s *Store) GetComment(ctx context.Context, id uint) (*models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	comment, ok := s.comments[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	copied := *comment
	return &copied, nil
}

func (s *Store) HasReply(ctx context.Context, parentID uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hasReplyLocked(parentID), nil
}

func (s *Store) hasReplyLocked(parentID uint) bool {
	for _, comment := range s.comments {
		if comment.ParentCommentID != nil && *comment.ParentCommentID == parentID {
			return true
		}
	}
	return false
}

func (s *Store) CreateComment(ctx context.Context, comment *models.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if comment.ParentCommentID != nil && s.hasReplyLocked(*comment.ParentCommentID) {
		return store.ErrDuplicateReply
	}
	s.nextCommentID++
	comment.ID = s.nextCommentID
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}
	copied := *comment
	s.comments[comment.ID] = &copied
	return nil
}

func (s *Store) UpdateCommentBody(ctx context.Context, id uint, body string) (*models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	comment, ok := s.comments[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	comment.Body = body
	comment.UpdatedAt = time.Now()
	copied := *comment
	return &copied, nil
}

func (s *Store) DeleteComment(ctx context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.comments[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.comments, id)
	return nil
}

func (s *Store) ListTopLevelComments(ctx context.Context, postID uint) ([]models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []models.Comment
	for _, comment := range s.comments {
		if comment.ParentCommentID != nil {
			continue
		}
		if postID != 0 && comment.PostID != postID {
			continue
		}
		result = append(result, *comment)
	}
	// newest first
	for i := 0; i < len(result); i++ {
		for j := i + 1; j < len(result); j++ {
			if result[j].CreatedAt.After(result[i].CreatedAt) {
				result[i], result[j] = result[j], result[i]
			}
		}
	}
	return result, nil
}

func (s *Store) ListReplies(ctx context.Context, parentIDs []uint) ([]models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	wanted := make(map[uint]bool, len(parentIDs))
	for _, id := range parentIDs {
		wanted[id] = true
	}
	var replies []models.Comment
	for _, comment := range s.comments {
		if comment.ParentCommentID != nil && wanted[*comment.ParentCommentID] {
			replies = append(replies, *comment)
		}
	}
	return replies, nil
}

func (s *Store) WishlistsOwnedBy(ctx context.Context, userID uint, ids []uint) ([]models.Wishlist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []models.Wishlist
	for _, id := range ids {
		wishlist, ok := s.wishlists[id]
		if !ok || wishlist.UserID != userID {
			continue
		}
		result = append(result, *wishlist)
	}
	return result, nil
}

func (s *Store) WishlistsForOwnerUUID(ctx context.Context, ownerUUID string, ids []uint) ([]models.Wishlist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var owner *models.User
	for _, user := range s.users {
		if user.UUID == ownerUUID {
			owner = user
			break
		}
	}
	if owner == nil {
		return nil, nil
	}
	var result []models.Wishlist
	for _, id := range ids {
		wishlist, ok := s.wishlists[id]
		if !ok || wishlist.UserID != owner.ID {
			continue
		}
		copied := *wishlist
		copied.Products = nil
		for _, productID := range s.assignments[id] {
			if product, ok := s.products[productID]; ok {
				copied.Products = append(copied.Products, *product)
			}
		}
		result = append(result, copied)
	}
	return result, nil
}

func (s *Store) MarkWishlistsPublic(ctx context.Context, ids []uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		if wishlist, ok := s.wishlists[id]; ok {
			wishlist.IsPublic = true
		}
	}
	return nil
}

func (s *Store) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	product, ok := s.products[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	copied := *product
	return &copied, nil
}

func (s *Store) SetProductReserved(ctx context.Context, id uint, reserved bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	product, ok := s.products[id]
	if !ok {
		return store.ErrNotFound
	}
	product.IsReserved = reserved
	return nil
}

func (s *Store) CreateWishlist(ctx context.Context, wishlist *models.Wishlist) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextWishlistID++
	wishlist.ID = s.nextWishlistID
	copied := *wishlist
	s.wishlists[wishlist.ID] = &copied
	return nil
}

func (s *Store) GetOrCreateProduct(ctx context.Context, product *models.Product) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.products {
		if existing.UserID == product.UserID &&
			existing.Name == product.Name &&
			existing.Priority == product.Priority &&
			existing.Price == product.Price &&
			existing.Link == product.Link &&
			existing.Notes == product.Notes {
			copied := *existing
			return &copied, nil
		}
	}
	s.nextProductID++
	product.ID = s.nextProductID
	copied := *product
	s.products[product.ID] = &copied
	return product, nil
}

func (s *Store) AddProductToWishlist(ctx context.Context, wishlistID, productID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.wishlists[wishlistID]; !ok {
		return store.ErrNotFound
	}
	for _, existing := range s.assignments[wishlistID] {
		if existing == productID {
			return nil
		}
	}
	s.assignments[wishlistID] = append(s.assignments[wishlistID], productID)
	return nil
}
