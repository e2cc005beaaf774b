package catalog

import (
	"context"
	"errors"
	"strings"

	pkgerrors "github.com/aurumjoias/aurum-backend/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service exposes the read-only storefront catalog.
type Service interface {
	ListCategories(ctx context.Context) ([]CategoryDTO, error)
	GetCategoryBySlug(ctx context.Context, slug string) (CategoryDTO, error)
	ListProducts(ctx context.Context) ([]ProductDTO, error)
	ListFeaturedProducts(ctx context.Context) ([]ProductDTO, error)
	ListNewProducts(ctx context.Context) ([]ProductDTO, error)
	ListProductsByCategory(ctx context.Context, categoryID uuid.UUID) ([]ProductDTO, error)
	GetProductBySlug(ctx context.Context, slug string) (ProductDTO, error)
}

type service struct {
	repo Repository
}

// NewService builds a catalog service with the required dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "catalog repo is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) ListCategories(ctx context.Context) ([]CategoryDTO, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list categories")
	}
	return toCategoryDTOs(categories), nil
}

func (s *service) GetCategoryBySlug(ctx context.Context, slug string) (CategoryDTO, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return CategoryDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "category slug is required")
	}
	category, err := s.repo.FindCategoryBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CategoryDTO{}, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "category not found")
		}
		return CategoryDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load category")
	}
	return toCategoryDTO(*category), nil
}

func (s *service) ListProducts(ctx context.Context) ([]ProductDTO, error) {
	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
	}
	return toProductDTOs(products), nil
}

func (s *service) ListFeaturedProducts(ctx context.Context) ([]ProductDTO, error) {
	products, err := s.repo.ListFeaturedProducts(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list featured products")
	}
	return toProductDTOs(products), nil
}

func (s *service) ListNewProducts(ctx context.Context) ([]ProductDTO, error) {
	products, err := s.repo.ListNewProducts(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list new products")
	}
	return toProductDTOs(products), nil
}

// ListProductsByCategory returns an empty list for an unknown category id.
func (s *service) ListProductsByCategory(ctx context.Context, categoryID uuid.UUID) ([]ProductDTO, error) {
	if categoryID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "category id is required")
	}
	products, err := s.repo.ListProductsByCategory(ctx, categoryID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products by category")
	}
	return toProductDTOs(products), nil
}

func (s *service) GetProductBySlug(ctx context.Context, slug string) (ProductDTO, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return ProductDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "product slug is required")
	}
	product, err := s.repo.FindProductBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ProductDTO{}, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "product not found")
		}
		return ProductDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	return ToProductDTO(*product), nil
}
