package catalog

import (
	"context"
	"testing"

	"github.com/aurumjoias/aurum-backend/pkg/db/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupCatalogTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	categories := `
CREATE TABLE IF NOT EXISTS categories (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  slug TEXT NOT NULL UNIQUE,
  description TEXT,
  image TEXT
);`
	products := `
CREATE TABLE IF NOT EXISTS products (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  slug TEXT NOT NULL UNIQUE,
  description TEXT,
  price TEXT NOT NULL,
  original_price TEXT,
  image TEXT,
  category_id TEXT,
  in_stock INTEGER NOT NULL DEFAULT 1,
  is_featured INTEGER NOT NULL DEFAULT 0,
  is_new INTEGER NOT NULL DEFAULT 0,
  rating TEXT,
  sku TEXT,
  diamante_id TEXT,
  vat_rate INTEGER NOT NULL DEFAULT 23,
  stock_quantity INTEGER,
  created_at DATETIME
);`
	require.NoError(t, db.Exec(categories).Error)
	require.NoError(t, db.Exec(products).Error)
	require.NoError(t, db.Exec("DELETE FROM products").Error)
	require.NoError(t, db.Exec("DELETE FROM categories").Error)

	return db
}

func seedCategory(t *testing.T, db *gorm.DB, name, slug string) models.Category {
	t.Helper()
	category := models.Category{ID: uuid.New(), Name: name, Slug: slug}
	require.NoError(t, db.Create(&category).Error)
	return category
}

func seedProduct(t *testing.T, db *gorm.DB, slug string, mutate func(*models.Product)) models.Product {
	t.Helper()
	product := models.Product{
		ID:      uuid.New(),
		Name:    "Produto " + slug,
		Slug:    slug,
		Price:   decimal.RequireFromString("10.00"),
		InStock: true,
		VATRate: 23,
	}
	if mutate != nil {
		mutate(&product)
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func TestRepositoryFindCategoryBySlug(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	seedCategory(t, db, "Anéis", "aneis")

	found, err := repo.FindCategoryBySlug(ctx, "aneis")
	require.NoError(t, err)
	assert.Equal(t, "Anéis", found.Name)

	_, err = repo.FindCategoryBySlug(ctx, "missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepositoryProductFilters(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	category := seedCategory(t, db, "Colares", "colares")
	seedProduct(t, db, "colar-perolas", func(p *models.Product) {
		p.CategoryID = &category.ID
		p.IsFeatured = true
	})
	seedProduct(t, db, "anel-solitario", func(p *models.Product) {
		p.IsNew = true
	})

	all, err := repo.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	featured, err := repo.ListFeaturedProducts(ctx)
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, "colar-perolas", featured[0].Slug)

	fresh, err := repo.ListNewProducts(ctx)
	require.NoError(t, err)
	require.Len(t, fresh, 1)
	assert.Equal(t, "anel-solitario", fresh[0].Slug)

	byCategory, err := repo.ListProductsByCategory(ctx, category.ID)
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, "colar-perolas", byCategory[0].Slug)

	empty, err := repo.ListProductsByCategory(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestRepositoryFindProductsByIDs(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	first := seedProduct(t, db, "brincos-ouro", nil)
	seedProduct(t, db, "pulseira-prata", nil)

	found, err := repo.FindProductsByIDs(ctx, []uuid.UUID{first.ID})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, first.ID, found[0].ID)

	none, err := repo.FindProductsByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Nil(t, none)
}
