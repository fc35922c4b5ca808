package engine

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/giftwish/api-go/models"
	"github.com/giftwish/api-go/store"
)

// WishlistEngine manages visibility transitions and reservation toggles so
// that non-owners can reserve items, anonymously or authenticated.
type WishlistEngine struct {
	Store store.WishlistStore
}

func NewWishlistEngine(s store.WishlistStore) *WishlistEngine {
	return &WishlistEngine{Store: s}
}

// ShareLink is the result of publishing a set of wishlists. The identifier is
// not a secret capability, just owner uuid plus the published wishlist ids.
type ShareLink struct {
	URL         string `json:"shared_link"`
	OwnerUUID   string `json:"owner_uuid"`
	WishlistIDs []uint `json:"wishlist_ids"`
}

// GenerateShareLink marks the actor's wishlists public and builds the share
// identifier {owner.uuid}/{comma-joined ids} onto baseURL. Already-public
// wishlists are unaffected, so repeated calls are idempotent.
func (e *WishlistEngine) GenerateShareLink(ctx context.Context, actor Actor, wishlistIDs []uint, baseURL string) (*ShareLink, error) {
	if !actor.Authenticated {
		return nil, Unauthorized("authentication required")
	}
	wishlists, err := e.Store.WishlistsOwnedBy(ctx, actor.ID, wishlistIDs)
	if err != nil {
		return nil, err
	}
	if len(wishlists) == 0 {
		return nil, NotFound("no wishlists found")
	}
	resolved := make([]uint, 0, len(wishlists))
	for _, wishlist := range wishlists {
		if wishlist.UserID != actor.ID {
			return nil, Forbidden("you can only share your own wishlists")
		}
		resolved = append(resolved, wishlist.ID)
	}
	if err := e.Store.MarkWishlistsPublic(ctx, resolved); err != nil {
		return nil, err
	}

	joined := make([]string, len(resolved))
	for i, id := range resolved {
		joined[i] = strconv.FormatUint(uint64(id), 10)
	}
	identifier := fmt.Sprintf("%s/%s", actor.UUID, strings.Join(joined, ","))
	url := identifier
	if baseURL != "" {
		url = strings.TrimRight(baseURL, "/") + "/" + identifier
	}
	return &ShareLink{URL: url, OwnerUUID: actor.UUID, WishlistIDs: resolved}, nil
}

// ViewShared resolves a share identifier. Visibility is all-or-nothing: a
// single private wishlist in the batch rejects the whole view rather than
// filtering it out. The list projection (no description/address) is returned.
func (e *WishlistEngine) ViewShared(ctx context.Context, ownerUUID string, wishlistIDs []uint) ([]models.Wishlist, error) {
	wishlists, err := e.Store.WishlistsForOwnerUUID(ctx, ownerUUID, wishlistIDs)
	if err != nil {
		return nil, err
	}
	if len(wishlists) == 0 {
		return nil, NotFound("no wishlists found")
	}
	for _, wishlist := range wishlists {
		if !wishlist.IsPublic {
			return nil, InvalidRequest("one or more wishlists are not public")
		}
	}
	for i := range wishlists {
		// owner-only fields are excluded from the shared view
		wishlists[i].Description = ""
		wishlists[i].Address = ""
	}
	return wishlists, nil
}

// Reserve marks a product reserved. Owners cannot reserve their own items;
// anyone else, including anonymous actors, can. Repeated calls are idempotent.
// No reserver identity is recorded.
func (e *WishlistEngine) Reserve(ctx context.Context, actor Actor, productID uint) (*models.Product, error) {
	return e.setReserved(ctx, actor, productID, true)
}

// Unreserve clears the reservation flag under the same ownership rule.
func (e *WishlistEngine) Unreserve(ctx context.Context, actor Actor, productID uint) (*models.Product, error) {
	return e.setReserved(ctx, actor, productID, false)
}

func (e *WishlistEngine) setReserved(ctx context.Context, actor Actor, productID uint, reserved bool) (*models.Product, error) {
	product, err := e.Store.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, NotFound("product not found")
		}
		return nil, err
	}
	if actor.Authenticated && actor.ID == product.UserID {
		return nil, Forbidden("owners cannot reserve their own items")
	}
	if err := e.Store.SetProductReserved(ctx, productID, reserved); err != nil {
		return nil, err
	}
	product.IsReserved = reserved
	return product, nil
}

// MergeProduct is a client-held product payload from an unauthenticated
// session.
type MergeProduct struct {
	Name     string `json:"name" binding:"required"`
	Priority string `json:"priority"`
	Price    string `json:"price"`
	Link     string `json:"link"`
	Notes    string `json:"notes"`
}

// MergeWishlist is a client-held wishlist payload to adopt on login.
type MergeWishlist struct {
	Title        string         `json:"title" binding:"required"`
	Description  string         `json:"description"`
	Address      string         `json:"address"`
	OccasionDate *time.Time     `json:"occasion_date"`
	Products     []MergeProduct `json:"products"`
}

// MergeWishlists persists a batch of client-held wishlists as owned by the
// actor, get-or-creating products by attributes. Only the first created
// wishlist is returned to the caller.
func (e *WishlistEngine) MergeWishlists(ctx context.Context, actor Actor, payloads []MergeWishlist) (*models.Wishlist, error) {
	if !actor.Authenticated {
		return nil, Unauthorized("authentication required")
	}
	if len(payloads) == 0 {
		return nil, InvalidRequest("no wishlists to merge")
	}

	var first *models.Wishlist
	for _, payload := range payloads {
		wishlist := &models.Wishlist{
			UserID:       actor.ID,
			Title:        payload.Title,
			Description:  payload.Description,
			Address:      payload.Address,
			OccasionDate: payload.OccasionDate,
		}
		if err := e.Store.CreateWishlist(ctx, wishlist); err != nil {
			return nil, err
		}
		for _, item := range payload.Products {
			priority := item.Priority
			if priority == "" {
				priority = models.PriorityLow
			}
			product, err := e.Store.GetOrCreateProduct(ctx, &models.Product{
				UserID:   actor.ID,
				Name:     item.Name,
				Priority: priority,
				Price:    item.Price,
				Link:     item.Link,
				Notes:    item.Notes,
			})
			if err != nil {
				return nil, err
			}
			if err := e.Store.AddProductToWishlist(ctx, wishlist.ID, product.ID); err != nil {
				return nil, err
			}
			wishlist.Products = append(wishlist.Products, *product)
		}
		if first == nil {
			first = wishlist
		}
	}
	return first, nil
}
