package engine_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/giftwish/api-go/engine"
	"github.com/giftwish/api-go/models"
	"github.com/giftwish/api-go/store/inmemory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWishlistEngine() (*engine.WishlistEngine, *inmemory.Store) {
	memStore := inmemory.New()
	memStore.AddUser(&models.User{ID: user.ID, UUID: user.UUID})
	memStore.AddUser(&models.User{ID: other.ID, UUID: other.UUID})
	return engine.NewWishlistEngine(memStore), memStore
}

func TestGenerateShareLink(t *testing.T) {
	wishlistEngine, memStore := newWishlistEngine()
	ctx := context.Background()

	memStore.AddWishlist(&models.Wishlist{ID: 1, UserID: user.ID, Title: "Birthday"})
	memStore.AddWishlist(&models.Wishlist{ID: 2, UserID: user.ID, Title: "Wedding"})

	link, err := wishlistEngine.GenerateShareLink(ctx, user, []uint{1, 2}, "https://example.com/wishlists/view")
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("https://example.com/wishlists/view/%s/1,2", user.UUID), link.URL)
	assert.Equal(t, []uint{1, 2}, link.WishlistIDs)

	shared, err := memStore.WishlistsForOwnerUUID(ctx, user.UUID, []uint{1, 2})
	require.NoError(t, err)
	for _, wishlist := range shared {
		assert.True(t, wishlist.IsPublic)
	}
}

func TestGenerateShareLink_Idempotent(t *testing.T) {
	wishlistEngine, memStore := newWishlistEngine()
	ctx := context.Background()

	memStore.AddWishlist(&models.Wishlist{ID: 1, UserID: user.ID, Title: "Birthday"})

	first, err := wishlistEngine.GenerateShareLink(ctx, user, []uint{1}, "")
	require.NoError(t, err)
	second, err := wishlistEngine.GenerateShareLink(ctx, user, []uint{1}, "")
	require.NoError(t, err)
	assert.Equal(t, first.URL, second.URL)

	shared, err := memStore.WishlistsForOwnerUUID(ctx, user.UUID, []uint{1})
	require.NoError(t, err)
	require.Len(t, shared, 1)
	assert.True(t, shared[0].IsPublic)
}

func TestGenerateShareLink_OthersWishlistsNotFound(t *testing.T) {
	wishlistEngine, memStore := newWishlistEngine()

	memStore.AddWishlist(&models.Wishlist{ID: 1, UserID: other.ID, Title: "Not yours"})

	_, err := wishlistEngine.GenerateShareLink(context.Background(), user, []uint{1}, "")
	require.Error(t, err)
	assert.Equal(t, engine.KindNotFound, engine.KindOf(err))
}

func TestGenerateShareLink_Anonymous(t *testing.T) {
	wishlistEngine, _ := newWishlistEngine()

	_, err := wishlistEngine.GenerateShareLink(context.Background(), engine.Anonymous, []uint{1}, "")
	require.Error(t, err)
	assert.Equal(t, engine.KindUnauthorized, engine.KindOf(err))
}

func TestViewShared_AllPublic(t *testing.T) {
	wishlistEngine, memStore := newWishlistEngine()
	ctx := context.Background()

	gift := &models.Product{ID: 1, UserID: user.ID, Name: "Lego set"}
	memStore.AddProduct(gift)
	memStore.AddWishlist(&models.Wishlist{
		ID: 1, UserID: user.ID, Title: "Birthday", Description: "secret notes",
		Address: "home", IsPublic: true, Products: []models.Product{*gift},
	})

	wishlists, err := wishlistEngine.ViewShared(ctx, user.UUID, []uint{1})
	require.NoError(t, err)
	require.Len(t, wishlists, 1)
	assert.Equal(t, "Birthday", wishlists[0].Title)
	require.Len(t, wishlists[0].Products, 1)
	// owner-only fields are stripped from the shared projection
	assert.Empty(t, wishlists[0].Description)
	assert.Empty(t, wishlists[0].Address)
}

func TestViewShared_SinglePrivateBlocksBatch(t *testing.T) {
	wishlistEngine, memStore := newWishlistEngine()

	memStore.AddWishlist(&models.Wishlist{ID: 1, UserID: user.ID, Title: "Public", IsPublic: true})
	memStore.AddWishlist(&models.Wishlist{ID: 2, UserID: user.ID, Title: "Private"})

	_, err := wishlistEngine.ViewShared(context.Background(), user.UUID, []uint{1, 2})
	require.Error(t, err)
	assert.Equal(t, engine.KindInvalidRequest, engine.KindOf(err))
}

func TestViewShared_UnknownOwnerOrIDs(t *testing.T) {
	wishlistEngine, memStore := newWishlistEngine()

	memStore.AddWishlist(&models.Wishlist{ID: 1, UserID: user.ID, Title: "Birthday", IsPublic: true})

	_, err := wishlistEngine.ViewShared(context.Background(), "no-such-uuid", []uint{1})
	require.Error(t, err)
	assert.Equal(t, engine.KindNotFound, engine.KindOf(err))

	_, err = wishlistEngine.ViewShared(context.Background(), user.UUID, []uint{99})
	require.Error(t, err)
	assert.Equal(t, engine.KindNotFound, engine.KindOf(err))
}

func TestReserve_OwnerForbidden(t *testing.T) {
	wishlistEngine, memStore := newWishlistEngine()

	memStore.AddProduct(&models.Product{ID: 1, UserID: user.ID, Name: "Lego set"})

	_, err := wishlistEngine.Reserve(context.Background(), user, 1)
	require.Error(t, err)
	assert.Equal(t, engine.KindForbidden, engine.KindOf(err))
	assert.Equal(t, "owners cannot reserve their own items", err.Error())
}

func TestReserve_NonOwnerAndIdempotency(t *testing.T) {
	wishlistEngine, memStore := newWishlistEngine()
	ctx := context.Background()

	memStore.AddProduct(&models.Product{ID: 1, UserID: user.ID, Name: "Lego set"})

	product, err := wishlistEngine.Reserve(ctx, other, 1)
	require.NoError(t, err)
	assert.True(t, product.IsReserved)

	// repeated reserve keeps the flag set
	product, err = wishlistEngine.Reserve(ctx, other, 1)
	require.NoError(t, err)
	assert.True(t, product.IsReserved)

	product, err = wishlistEngine.Unreserve(ctx, other, 1)
	require.NoError(t, err)
	assert.False(t, product.IsReserved)
}

func TestReserve_AnonymousAllowed(t *testing.T) {
	wishlistEngine, memStore := newWishlistEngine()

	memStore.AddProduct(&models.Product{ID: 1, UserID: user.ID, Name: "Lego set"})

	product, err := wishlistEngine.Reserve(context.Background(), engine.Anonymous, 1)
	require.NoError(t, err)
	assert.True(t, product.IsReserved)
}

func TestReserve_UnknownProduct(t *testing.T) {
	wishlistEngine, _ := newWishlistEngine()

	_, err := wishlistEngine.Reserve(context.Background(), other, 99)
	require.Error(t, err)
	assert.Equal(t, engine.KindNotFound, engine.KindOf(err))
}

func TestMergeWishlists_ReturnsFirstOnly(t *testing.T) {
	wishlistEngine, _ := newWishlistEngine()

	merged, err := wishlistEngine.MergeWishlists(context.Background(), user, []engine.MergeWishlist{
		{Title: "From phone", Products: []engine.MergeProduct{{Name: "Socks", Price: "9.99"}}},
		{Title: "From laptop", Products: []engine.MergeProduct{{Name: "Book"}}},
	})
	require.NoError(t, err)
	// only the first wishlist of the batch is echoed back
	assert.Equal(t, "From phone", merged.Title)
	assert.Equal(t, user.ID, merged.UserID)
	require.Len(t, merged.Products, 1)
	assert.Equal(t, "Socks", merged.Products[0].Name)
	assert.Equal(t, models.PriorityLow, merged.Products[0].Priority)
}

func TestMergeWishlists_ReusesMatchingProducts(t *testing.T) {
	wishlistEngine, memStore := newWishlistEngine()
	ctx := context.Background()

	existing, err := memStore.GetOrCreateProduct(ctx, &models.Product{
		UserID: user.ID, Name: "Socks", Priority: models.PriorityLow, Price: "9.99",
	})
	require.NoError(t, err)

	merged, err := wishlistEngine.MergeWishlists(ctx, user, []engine.MergeWishlist{
		{Title: "From phone", Products: []engine.MergeProduct{{Name: "Socks", Price: "9.99"}}},
	})
	require.NoError(t, err)
	require.Len(t, merged.Products, 1)
	assert.Equal(t, existing.ID, merged.Products[0].ID)
}

func TestMergeWishlists_EmptyBatch(t *testing.T) {
	wishlistEngine, _ := newWishlistEngine()

	_, err := wishlistEngine.MergeWishlists(context.Background(), user, nil)
	require.Error(t, err)
	assert.Equal(t, engine.KindInvalidRequest, engine.KindOf(err))
}

func TestMergeWishlists_Anonymous(t *testing.T) {
	wishlistEngine, _ := newWishlistEngine()

	_, err := wishlistEngine.MergeWishlists(context.Background(), engine.Anonymous, []engine.MergeWishlist{{Title: "x"}})
	require.Error(t, err)
	assert.Equal(t, engine.KindUnauthorized, engine.KindOf(err))
}
