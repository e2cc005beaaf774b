package orders

import (
	"context"
	"testing"

	cartpkg "github.com/aurumjoias/aurum-backend/internal/cart"
	"github.com/aurumjoias/aurum-backend/internal/catalog"
	"github.com/aurumjoias/aurum-backend/pkg/db/models"
	"github.com/aurumjoias/aurum-backend/pkg/enums"
	pkgerrors "github.com/aurumjoias/aurum-backend/pkg/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type gormTxRunner struct {
	db *gorm.DB
}

func (g gormTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return g.db.WithContext(ctx).Transaction(fn)
}

func setupOrdersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	statements := []string{
		`CREATE TABLE IF NOT EXISTS products (
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
);`,
		`CREATE TABLE IF NOT EXISTS cart_items (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  product_id TEXT NOT NULL,
  quantity INTEGER NOT NULL DEFAULT 1,
  created_at DATETIME,
  updated_at DATETIME
);`,
		`CREATE TABLE IF NOT EXISTS orders (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  status TEXT NOT NULL DEFAULT 'pending',
  total TEXT NOT NULL,
  shipping_address TEXT NOT NULL,
  phone_number TEXT,
  payment_method TEXT,
  vat_number TEXT,
  notes TEXT,
  diamante_invoice_id TEXT,
  diamante_invoice_url TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`,
		`CREATE TABLE IF NOT EXISTS order_items (
  id TEXT PRIMARY KEY,
  order_id TEXT NOT NULL,
  product_id TEXT NOT NULL,
  quantity INTEGER NOT NULL,
  price TEXT NOT NULL,
  created_at DATETIME
);`,
	}
	for _, stmt := range statements {
		require.NoError(t, db.Exec(stmt).Error)
	}
	for _, table := range []string{"order_items", "orders", "cart_items", "products"} {
		require.NoError(t, db.Exec("DELETE FROM "+table).Error)
	}

	return db
}

func seedOrderProduct(t *testing.T, db *gorm.DB, slug, price string) models.Product {
	t.Helper()
	product := models.Product{
		ID:      uuid.New(),
		Name:    "Produto " + slug,
		Slug:    slug,
		Price:   decimal.RequireFromString(price),
		InStock: true,
		VATRate: 23,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func TestPlaceOrderEndToEndAgainstDB(t *testing.T) {
	db := setupOrdersTestDB(t)
	ctx := context.Background()
	userID := uuid.New()

	cheap := seedOrderProduct(t, db, "anel-fino", "10.10")
	dear := seedOrderProduct(t, db, "colar-longo", "5.30")

	cartRepo := cartpkg.NewRepository(db)
	_, err := cartRepo.CreateItem(ctx, &models.CartItem{UserID: userID, ProductID: cheap.ID, Quantity: 2})
	require.NoError(t, err)
	_, err = cartRepo.CreateItem(ctx, &models.CartItem{UserID: userID, ProductID: dear.ID, Quantity: 1})
	require.NoError(t, err)

	svc, err := NewService(NewRepository(db), cartRepo, catalog.NewRepository(db), gormTxRunner{db: db})
	require.NoError(t, err)

	order, err := svc.PlaceOrder(ctx, PlaceOrderInput{
		UserID:          userID,
		ShippingAddress: "Rua das Flores 12, 4000-123, Porto",
	})
	require.NoError(t, err)

	assert.True(t, order.Total.Equal(decimal.RequireFromString("25.50")), "total %s", order.Total)
	assert.Equal(t, enums.OrderStatusPending, order.Status)
	require.Len(t, order.Items, 2)

	remaining, err := cartRepo.ListItems(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, remaining, "cart must be cleared after placement")

	listed, err := svc.ListOrders(ctx, userID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.NotNil(t, listed[0].Items[0].Product)
}

func TestPlaceOrderRollsBackOnMissingProduct(t *testing.T) {
	db := setupOrdersTestDB(t)
	ctx := context.Background()
	userID := uuid.New()

	product := seedOrderProduct(t, db, "brinco-pequeno", "12.00")

	cartRepo := cartpkg.NewRepository(db)
	_, err := cartRepo.CreateItem(ctx, &models.CartItem{UserID: userID, ProductID: product.ID, Quantity: 1})
	require.NoError(t, err)
	_, err = cartRepo.CreateItem(ctx, &models.CartItem{UserID: userID, ProductID: uuid.New(), Quantity: 1})
	require.NoError(t, err)

	svc, err := NewService(NewRepository(db), cartRepo, catalog.NewRepository(db), gormTxRunner{db: db})
	require.NoError(t, err)

	_, err = svc.PlaceOrder(ctx, PlaceOrderInput{
		UserID:          userID,
		ShippingAddress: "Rua das Flores 12, 4000-123, Porto",
	})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())

	var orderCount int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	assert.Zero(t, orderCount, "failed placement must not persist an order")

	remaining, err := cartRepo.ListItems(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, remaining, 2, "cart must survive the rollback")
}
