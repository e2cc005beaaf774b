package catalog

import (
	"context"
	"testing"

	"github.com/aurumjoias/aurum-backend/pkg/db/models"
	pkgerrors "github.com/aurumjoias/aurum-backend/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type stubCatalogRepo struct {
	categories []models.Category
	products   []models.Product
	err        error
}

func (s *stubCatalogRepo) WithTx(tx *gorm.DB) Repository { return s }

func (s *stubCatalogRepo) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.categories, s.err
}

func (s *stubCatalogRepo) FindCategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	for i := range s.categories {
		if s.categories[i].Slug == slug {
			return &s.categories[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubCatalogRepo) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.products, s.err
}

func (s *stubCatalogRepo) ListFeaturedProducts(ctx context.Context) ([]models.Product, error) {
	var out []models.Product
	for _, p := range s.products {
		if p.IsFeatured {
			out = append(out, p)
		}
	}
	return out, s.err
}

func (s *stubCatalogRepo) ListNewProducts(ctx context.Context) ([]models.Product, error) {
	var out []models.Product
	for _, p := range s.products {
		if p.IsNew {
			out = append(out, p)
		}
	}
	return out, s.err
}

func (s *stubCatalogRepo) ListProductsByCategory(ctx context.Context, categoryID uuid.UUID) ([]models.Product, error) {
	var out []models.Product
	for _, p := range s.products {
		if p.CategoryID != nil && *p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out, s.err
}

func (s *stubCatalogRepo) FindProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	for i := range s.products {
		if s.products[i].Slug == slug {
			return &s.products[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubCatalogRepo) FindProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	for i := range s.products {
		if s.products[i].ID == id {
			return &s.products[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubCatalogRepo) FindProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Product, error) {
	var out []models.Product
	for _, id := range ids {
		for _, p := range s.products {
			if p.ID == id {
				out = append(out, p)
			}
		}
	}
	return out, s.err
}

func TestGetCategoryBySlugNotFound(t *testing.T) {
	svc, err := NewService(&stubCatalogRepo{})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, err = svc.GetCategoryBySlug(context.Background(), "missing")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestGetProductBySlug(t *testing.T) {
	product := models.Product{ID: uuid.New(), Name: "Anel", Slug: "anel"}
	svc, err := NewService(&stubCatalogRepo{products: []models.Product{product}})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	dto, err := svc.GetProductBySlug(context.Background(), "anel")
	if err != nil {
		t.Fatalf("get product: %v", err)
	}
	if dto.ID != product.ID {
		t.Fatalf("expected product %s, got %s", product.ID, dto.ID)
	}

	if _, err := svc.GetProductBySlug(context.Background(), ""); pkgerrors.As(err) == nil {
		t.Fatal("expected validation error for empty slug")
	}
}

func TestListProductsByCategoryUnknownIDReturnsEmpty(t *testing.T) {
	svc, err := NewService(&stubCatalogRepo{})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	products, err := svc.ListProductsByCategory(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("list products: %v", err)
	}
	if len(products) != 0 {
		t.Fatalf("expected empty list, got %d", len(products))
	}
}
