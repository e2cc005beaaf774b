package cart

import (
	"context"
	"testing"

	"github.com/aurumjoias/aurum-backend/internal/catalog"
	"github.com/aurumjoias/aurum-backend/pkg/db/models"
	pkgerrors "github.com/aurumjoias/aurum-backend/pkg/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type stubCartRepo struct {
	items map[uuid.UUID]*models.CartItem
}

func newStubCartRepo() *stubCartRepo {
	return &stubCartRepo{items: map[uuid.UUID]*models.CartItem{}}
}

func (s *stubCartRepo) WithTx(tx *gorm.DB) Repository { return s }

func (s *stubCartRepo) ListItems(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error) {
	var out []models.CartItem
	for _, item := range s.items {
		if item.UserID == userID {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (s *stubCartRepo) FindItem(ctx context.Context, userID, itemID uuid.UUID) (*models.CartItem, error) {
	item, ok := s.items[itemID]
	if !ok || item.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *item
	return &clone, nil
}

func (s *stubCartRepo) FindItemByProduct(ctx context.Context, userID, productID uuid.UUID) (*models.CartItem, error) {
	for _, item := range s.items {
		if item.UserID == userID && item.ProductID == productID {
			clone := *item
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubCartRepo) CreateItem(ctx context.Context, item *models.CartItem) (*models.CartItem, error) {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	clone := *item
	s.items[item.ID] = &clone
	return item, nil
}

func (s *stubCartRepo) UpdateQuantity(ctx context.Context, itemID uuid.UUID, quantity int) error {
	if item, ok := s.items[itemID]; ok {
		item.Quantity = quantity
	}
	return nil
}

func (s *stubCartRepo) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	delete(s.items, itemID)
	return nil
}

func (s *stubCartRepo) ClearCart(ctx context.Context, userID uuid.UUID) error {
	for id, item := range s.items {
		if item.UserID == userID {
			delete(s.items, id)
		}
	}
	return nil
}

func newCartService(t *testing.T, repo Repository, products ...models.Product) Service {
	t.Helper()
	svc, err := NewService(repo, &stubProductLookup{products: products})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

type stubProductLookup struct {
	products []models.Product
}

func (s *stubProductLookup) WithTx(tx *gorm.DB) catalog.Repository { return s }

func (s *stubProductLookup) ListCategories(ctx context.Context) ([]models.Category, error) {
	return nil, nil
}

func (s *stubProductLookup) FindCategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *stubProductLookup) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.products, nil
}

func (s *stubProductLookup) ListFeaturedProducts(ctx context.Context) ([]models.Product, error) {
	return nil, nil
}

func (s *stubProductLookup) ListNewProducts(ctx context.Context) ([]models.Product, error) {
	return nil, nil
}

func (s *stubProductLookup) ListProductsByCategory(ctx context.Context, categoryID uuid.UUID) ([]models.Product, error) {
	return nil, nil
}

func (s *stubProductLookup) FindProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *stubProductLookup) FindProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	for i := range s.products {
		if s.products[i].ID == id {
			return &s.products[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubProductLookup) FindProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Product, error) {
	var out []models.Product
	for _, id := range ids {
		for _, p := range s.products {
			if p.ID == id {
				out = append(out, p)
			}
		}
	}
	return out, nil
}

func TestAddItemMergesQuantities(t *testing.T) {
	repo := newStubCartRepo()
	product := models.Product{ID: uuid.New(), Price: decimal.RequireFromString("10.00")}
	svc := newCartService(t, repo, product)
	userID := uuid.New()

	first, err := svc.AddItem(context.Background(), userID, product.ID, 2)
	if err != nil {
		t.Fatalf("add item: %v", err)
	}
	second, err := svc.AddItem(context.Background(), userID, product.ID, 3)
	if err != nil {
		t.Fatalf("add item again: %v", err)
	}

	if second.ID != first.ID {
		t.Fatalf("expected merge into the same row, got %s and %s", first.ID, second.ID)
	}
	if second.Quantity != 5 {
		t.Fatalf("expected merged quantity 5, got %d", second.Quantity)
	}
	if len(repo.items) != 1 {
		t.Fatalf("expected a single cart row, got %d", len(repo.items))
	}
}

func TestAddItemUnknownProduct(t *testing.T) {
	svc := newCartService(t, newStubCartRepo())

	_, err := svc.AddItem(context.Background(), uuid.New(), uuid.New(), 1)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestAddItemRejectsZeroQuantity(t *testing.T) {
	svc := newCartService(t, newStubCartRepo())

	_, err := svc.AddItem(context.Background(), uuid.New(), uuid.New(), 0)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdateItemForeignRowIsNotFound(t *testing.T) {
	repo := newStubCartRepo()
	product := models.Product{ID: uuid.New(), Price: decimal.RequireFromString("10.00")}
	svc := newCartService(t, repo, product)

	owner := uuid.New()
	item, err := svc.AddItem(context.Background(), owner, product.ID, 1)
	if err != nil {
		t.Fatalf("add item: %v", err)
	}

	_, err = svc.UpdateItem(context.Background(), uuid.New(), item.ID, 4)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found for foreign item, got %v", err)
	}

	// owner still sees the original quantity
	cart, err := svc.GetCart(context.Background(), owner)
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if cart.TotalItems != 1 {
		t.Fatalf("expected untouched cart, got %d items", cart.TotalItems)
	}
}

func TestRemoveItemForeignRowIsNotFound(t *testing.T) {
	repo := newStubCartRepo()
	product := models.Product{ID: uuid.New(), Price: decimal.RequireFromString("10.00")}
	svc := newCartService(t, repo, product)

	owner := uuid.New()
	item, err := svc.AddItem(context.Background(), owner, product.ID, 1)
	if err != nil {
		t.Fatalf("add item: %v", err)
	}

	err = svc.RemoveItem(context.Background(), uuid.New(), item.ID)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found for foreign item, got %v", err)
	}
	if len(repo.items) != 1 {
		t.Fatal("foreign delete must not remove the row")
	}
}

func TestGetCartTotalsUseDecimalArithmetic(t *testing.T) {
	repo := newStubCartRepo()
	userID := uuid.New()
	cheap := models.Product{ID: uuid.New(), Price: decimal.RequireFromString("10.10")}
	dear := models.Product{ID: uuid.New(), Price: decimal.RequireFromString("5.30")}

	repo.items[uuid.New()] = &models.CartItem{ID: uuid.New(), UserID: userID, ProductID: cheap.ID, Quantity: 2, Product: &cheap}
	repo.items[uuid.New()] = &models.CartItem{ID: uuid.New(), UserID: userID, ProductID: dear.ID, Quantity: 1, Product: &dear}

	svc := newCartService(t, repo, cheap, dear)

	cart, err := svc.GetCart(context.Background(), userID)
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if cart.TotalItems != 3 {
		t.Fatalf("expected 3 items, got %d", cart.TotalItems)
	}
	if !cart.TotalPrice.Equal(decimal.RequireFromString("25.50")) {
		t.Fatalf("expected total 25.50, got %s", cart.TotalPrice)
	}
}

func TestClearCartEmptyIsNoop(t *testing.T) {
	svc := newCartService(t, newStubCartRepo())
	if err := svc.ClearCart(context.Background(), uuid.New()); err != nil {
		t.Fatalf("clear empty cart: %v", err)
	}
}
