package inmemory

import (
	"context"
	"testing"

	"github.com/giftwish/api-go/models"
	"github.com/giftwish/api-go/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateComment_DuplicateReply(t *testing.T) {
	memStore := New()
	ctx := context.Background()

	parent := &models.Comment{Body: "parent", OwnerID: 1, PostID: 1}
	require.NoError(t, memStore.CreateComment(ctx, parent))

	first := &models.Comment{Body: "reply", OwnerID: 2, PostID: 1, ParentCommentID: &parent.ID}
	require.NoError(t, memStore.CreateComment(ctx, first))

	second := &models.Comment{Body: "late reply", OwnerID: 2, PostID: 1, ParentCommentID: &parent.ID}
	err := memStore.CreateComment(ctx, second)
	assert.ErrorIs(t, err, store.ErrDuplicateReply)
}

func TestListTopLevelComments_NewestFirst(t *testing.T) {
	memStore := New()
	ctx := context.Background()

	for _, body := range []string{"oldest", "middle", "newest"} {
		require.NoError(t, memStore.CreateComment(ctx, &models.Comment{Body: body, OwnerID: 1, PostID: 1}))
	}

	comments, err := memStore.ListTopLevelComments(ctx, 1)
	require.NoError(t, err)
	require.Len(t, comments, 3)
	for i := 1; i < len(comments); i++ {
		assert.False(t, comments[i].CreatedAt.After(comments[i-1].CreatedAt))
	}
}

func TestGetOrCreateProduct(t *testing.T) {
	memStore := New()
	ctx := context.Background()

	created, err := memStore.GetOrCreateProduct(ctx, &models.Product{UserID: 1, Name: "Socks", Priority: models.PriorityLow})
	require.NoError(t, err)

	same, err := memStore.GetOrCreateProduct(ctx, &models.Product{UserID: 1, Name: "Socks", Priority: models.PriorityLow})
	require.NoError(t, err)
	assert.Equal(t, created.ID, same.ID)

	// a different owner gets a distinct row
	different, err := memStore.GetOrCreateProduct(ctx, &models.Product{UserID: 2, Name: "Socks", Priority: models.PriorityLow})
	require.NoError(t, err)
	assert.NotEqual(t, created.ID, different.ID)
}

func TestAddProductToWishlist_Deduplicates(t *testing.T) {
	memStore := New()
	ctx := context.Background()

	memStore.AddUser(&models.User{ID: 1, UUID: "owner-uuid"})
	memStore.AddWishlist(&models.Wishlist{ID: 1, UserID: 1, Title: "Birthday", IsPublic: true})
	memStore.AddProduct(&models.Product{ID: 1, UserID: 1, Name: "Lego set"})

	require.NoError(t, memStore.AddProductToWishlist(ctx, 1, 1))
	require.NoError(t, memStore.AddProductToWishlist(ctx, 1, 1))

	wishlists, err := memStore.WishlistsForOwnerUUID(ctx, "owner-uuid", []uint{1})
	require.NoError(t, err)
	require.Len(t, wishlists, 1)
	assert.Len(t, wishlists[0].Products, 1)
}

func TestWishlistsOwnedBy_FiltersOwner(t *testing.T) {
	memStore := New()
	ctx := context.Background()

	memStore.AddWishlist(&models.Wishlist{ID: 1, UserID: 1, Title: "Mine"})
	memStore.AddWishlist(&models.Wishlist{ID: 2, UserID: 2, Title: "Theirs"})

	wishlists, err := memStore.WishlistsOwnedBy(ctx, 1, []uint{1, 2})
	require.NoError(t, err)
	require.Len(t, wishlists, 1)
	assert.Equal(t, uint(1), wishlists[0].ID)
}
