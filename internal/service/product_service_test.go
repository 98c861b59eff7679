package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"product-catalog/internal/auth"
	"product-catalog/internal/domain"
	"product-catalog/internal/repository"
)

type productFixture struct {
	users    UserService
	products ProductService
	alice    *domain.User
	bob      *domain.User
}

func newProductFixture(t *testing.T) (productFixture, repository.ProductRepository) {
	t.Helper()
	ctx := context.Background()

	userRepo, productRepo := newTestRepos(t)
	users := NewUserService(userRepo, auth.NewPasswordHasher(bcrypt.MinCost))
	products := NewProductService(productRepo)

	alice, err := users.Register(ctx, "alice", "secret-password")
	require.NoError(t, err)
	bob, err := users.Register(ctx, "bob", "secret-password")
	require.NoError(t, err)

	return productFixture{users: users, products: products, alice: alice, bob: bob}, productRepo
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func TestProductCreate_AssignsIDAndOwner(t *testing.T) {
	ctx := context.Background()
	fx, _ := newProductFixture(t)

	product, err := fx.products.Create(ctx, fx.alice.ID, ProductInput{
		Name:        "Widget",
		Description: "a widget",
		Price:       12.5,
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.UUID{}, product.ID)
	require.Equal(t, fx.alice.ID, product.OwnerID)
	require.Equal(t, "Widget", product.Name)
	require.Equal(t, 12.5, product.Price)
}

func TestProductCreate_Validation(t *testing.T) {
	ctx := context.Background()
	fx, _ := newProductFixture(t)

	_, err := fx.products.Create(ctx, fx.alice.ID, ProductInput{Name: "", Price: 1})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Equal(t, "name", vErr.Field)

	_, err = fx.products.Create(ctx, fx.alice.ID, ProductInput{Name: "Widget", Price: -1})
	require.ErrorAs(t, err, &vErr)
	require.Equal(t, "price", vErr.Field)
}

func TestProductOwnershipScoping(t *testing.T) {
	ctx := context.Background()
	fx, _ := newProductFixture(t)

	product, err := fx.products.Create(ctx, fx.alice.ID, ProductInput{Name: "Widget", Price: 12.5})
	require.NoError(t, err)

	// bob never observes alice's product, and every failure looks like absence
	bobList, err := fx.products.List(ctx, fx.bob.ID)
	require.NoError(t, err)
	require.Empty(t, bobList)

	_, err = fx.products.Get(ctx, fx.bob.ID, product.ID)
	require.ErrorIs(t, err, ErrProductNotFound)

	_, err = fx.products.Update(ctx, fx.bob.ID, product.ID, ProductUpdate{Name: strPtr("Stolen")})
	require.ErrorIs(t, err, ErrProductNotFound)

	err = fx.products.Delete(ctx, fx.bob.ID, product.ID)
	require.ErrorIs(t, err, ErrProductNotFound)

	// the owner still sees the record untouched
	kept, err := fx.products.Get(ctx, fx.alice.ID, product.ID)
	require.NoError(t, err)
	require.Equal(t, "Widget", kept.Name)
}

func TestProductList_OnlyOwnRecords(t *testing.T) {
	ctx := context.Background()
	fx, _ := newProductFixture(t)

	_, err := fx.products.Create(ctx, fx.alice.ID, ProductInput{Name: "First", Price: 1})
	require.NoError(t, err)
	_, err = fx.products.Create(ctx, fx.alice.ID, ProductInput{Name: "Second", Price: 2})
	require.NoError(t, err)
	_, err = fx.products.Create(ctx, fx.bob.ID, ProductInput{Name: "Other", Price: 3})
	require.NoError(t, err)

	list, err := fx.products.List(ctx, fx.alice.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, p := range list {
		require.Equal(t, fx.alice.ID, p.OwnerID)
	}
}

func TestProductUpdate_PartialFields(t *testing.T) {
	ctx := context.Background()
	fx, _ := newProductFixture(t)

	product, err := fx.products.Create(ctx, fx.alice.ID, ProductInput{
		Name:        "Widget",
		Description: "a widget",
		Price:       12.5,
	})
	require.NoError(t, err)

	updated, err := fx.products.Update(ctx, fx.alice.ID, product.ID, ProductUpdate{
		Price: floatPtr(9.99),
	})
	require.NoError(t, err)
	require.Equal(t, 9.99, updated.Price)
	require.Equal(t, "Widget", updated.Name, "absent fields must stay untouched")
	require.Equal(t, "a widget", updated.Description)

	updated, err = fx.products.Update(ctx, fx.alice.ID, product.ID, ProductUpdate{
		Name:        strPtr("Gadget"),
		Description: strPtr(""),
	})
	require.NoError(t, err)
	require.Equal(t, "Gadget", updated.Name)
	require.Empty(t, updated.Description)
	require.Equal(t, 9.99, updated.Price)
}

func TestProductUpdate_Validation(t *testing.T) {
	ctx := context.Background()
	fx, _ := newProductFixture(t)

	product, err := fx.products.Create(ctx, fx.alice.ID, ProductInput{Name: "Widget", Price: 12.5})
	require.NoError(t, err)

	var vErr *ValidationError
	_, err = fx.products.Update(ctx, fx.alice.ID, product.ID, ProductUpdate{Price: floatPtr(-0.01)})
	require.ErrorAs(t, err, &vErr)

	_, err = fx.products.Update(ctx, fx.alice.ID, product.ID, ProductUpdate{Name: strPtr("  ")})
	require.ErrorAs(t, err, &vErr)
}

func TestProductDelete(t *testing.T) {
	ctx := context.Background()
	fx, _ := newProductFixture(t)

	product, err := fx.products.Create(ctx, fx.alice.ID, ProductInput{Name: "Widget", Price: 12.5})
	require.NoError(t, err)

	require.NoError(t, fx.products.Delete(ctx, fx.alice.ID, product.ID))

	_, err = fx.products.Get(ctx, fx.alice.ID, product.ID)
	require.ErrorIs(t, err, ErrProductNotFound)

	// deleting again reports absence
	require.ErrorIs(t, fx.products.Delete(ctx, fx.alice.ID, product.ID), ErrProductNotFound)
}

func TestUserDelete_CascadesProducts(t *testing.T) {
	ctx := context.Background()
	fx, productRepo := newProductFixture(t)

	_, err := fx.products.Create(ctx, fx.alice.ID, ProductInput{Name: "Widget", Price: 12.5})
	require.NoError(t, err)

	require.NoError(t, fx.users.Delete(ctx, fx.alice.ID))

	remaining, err := productRepo.ListByOwner(ctx, fx.alice.ID)
	require.NoError(t, err)
	require.Empty(t, remaining)
}
