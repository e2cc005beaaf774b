package routes

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	authsvc "github.com/aurumjoias/aurum-backend/internal/auth"
	billingsvc "github.com/aurumjoias/aurum-backend/internal/billing"
	cartsvc "github.com/aurumjoias/aurum-backend/internal/cart"
	catalogsvc "github.com/aurumjoias/aurum-backend/internal/catalog"
	contactsvc "github.com/aurumjoias/aurum-backend/internal/contact"
	ordersvc "github.com/aurumjoias/aurum-backend/internal/orders"
	testimonialsvc "github.com/aurumjoias/aurum-backend/internal/testimonials"
	usersvc "github.com/aurumjoias/aurum-backend/internal/users"
	pkgauth "github.com/aurumjoias/aurum-backend/pkg/auth"
	"github.com/aurumjoias/aurum-backend/pkg/config"
	"github.com/aurumjoias/aurum-backend/pkg/logger"
	"github.com/google/uuid"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error { return nil }

type stubSessionChecker struct{}

func (stubSessionChecker) HasSession(ctx context.Context, accessID string) (bool, error) {
	return true, nil
}

type stubAuthService struct{}

func (stubAuthService) Register(ctx context.Context, input authsvc.RegisterInput) (*authsvc.AuthResultDTO, error) {
	return &authsvc.AuthResultDTO{}, nil
}

func (stubAuthService) Login(ctx context.Context, input authsvc.LoginInput) (*authsvc.AuthResultDTO, error) {
	return &authsvc.AuthResultDTO{}, nil
}

func (stubAuthService) Logout(ctx context.Context, accessToken string) error { return nil }

func (stubAuthService) Refresh(ctx context.Context, accessToken, refreshToken string) (*authsvc.AuthResultDTO, error) {
	return &authsvc.AuthResultDTO{}, nil
}

type stubCatalogService struct{}

func (stubCatalogService) ListCategories(ctx context.Context) ([]catalogsvc.CategoryDTO, error) {
	return []catalogsvc.CategoryDTO{}, nil
}

func (stubCatalogService) GetCategoryBySlug(ctx context.Context, slug string) (catalogsvc.CategoryDTO, error) {
	return catalogsvc.CategoryDTO{}, nil
}

func (stubCatalogService) ListProducts(ctx context.Context) ([]catalogsvc.ProductDTO, error) {
	return []catalogsvc.ProductDTO{}, nil
}

func (stubCatalogService) ListFeaturedProducts(ctx context.Context) ([]catalogsvc.ProductDTO, error) {
	return []catalogsvc.ProductDTO{}, nil
}

func (stubCatalogService) ListNewProducts(ctx context.Context) ([]catalogsvc.ProductDTO, error) {
	return []catalogsvc.ProductDTO{}, nil
}

func (stubCatalogService) ListProductsByCategory(ctx context.Context, categoryID uuid.UUID) ([]catalogsvc.ProductDTO, error) {
	return []catalogsvc.ProductDTO{}, nil
}

func (stubCatalogService) GetProductBySlug(ctx context.Context, slug string) (catalogsvc.ProductDTO, error) {
	return catalogsvc.ProductDTO{}, nil
}

type stubCartService struct{}

func (stubCartService) GetCart(ctx context.Context, userID uuid.UUID) (cartsvc.CartDTO, error) {
	return cartsvc.CartDTO{Items: []cartsvc.CartItemDTO{}}, nil
}

func (stubCartService) AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (cartsvc.CartItemDTO, error) {
	return cartsvc.CartItemDTO{}, nil
}

func (stubCartService) UpdateItem(ctx context.Context, userID, itemID uuid.UUID, quantity int) (cartsvc.CartItemDTO, error) {
	return cartsvc.CartItemDTO{}, nil
}

func (stubCartService) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) error { return nil }

func (stubCartService) ClearCart(ctx context.Context, userID uuid.UUID) error { return nil }

type stubOrdersService struct{}

func (stubOrdersService) PlaceOrder(ctx context.Context, input ordersvc.PlaceOrderInput) (ordersvc.OrderDTO, error) {
	return ordersvc.OrderDTO{}, nil
}

func (stubOrdersService) ListOrders(ctx context.Context, userID uuid.UUID) ([]ordersvc.OrderDTO, error) {
	return []ordersvc.OrderDTO{}, nil
}

func (stubOrdersService) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (ordersvc.OrderDTO, error) {
	return ordersvc.OrderDTO{}, nil
}

type stubUsersService struct{}

func (stubUsersService) GetProfile(ctx context.Context, userID uuid.UUID) (usersvc.UserDTO, error) {
	return usersvc.UserDTO{}, nil
}

func (stubUsersService) UpdateProfile(ctx context.Context, userID uuid.UUID, input usersvc.UpdateProfileInput) (usersvc.UserDTO, error) {
	return usersvc.UserDTO{}, nil
}

type stubBillingService struct{}

func (stubBillingService) Status(ctx context.Context) billingsvc.StatusDTO {
	return billingsvc.StatusDTO{Configured: true, Reachable: true, Message: "billing service is available"}
}

func (stubBillingService) CreateInvoice(ctx context.Context, userID, orderID uuid.UUID) (billingsvc.InvoiceDTO, error) {
	return billingsvc.InvoiceDTO{}, nil
}

type stubTestimonialsService struct{}

func (stubTestimonialsService) ListTestimonials(ctx context.Context) ([]testimonialsvc.TestimonialDTO, error) {
	return []testimonialsvc.TestimonialDTO{}, nil
}

type stubContactService struct{}

func (stubContactService) CreateMessage(ctx context.Context, input contactsvc.CreateMessageInput) (contactsvc.ContactMessageDTO, error) {
	return contactsvc.ContactMessageDTO{}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "test", Port: "8080"},
		JWT: config.JWTConfig{
			Secret:            "router-test-secret",
			Issuer:            "aurumjoias",
			ExpirationMinutes: 30,
		},
	}
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	return NewRouter(RouterParams{
		Config:       testConfig(),
		Logger:       logger.New(logger.Options{Output: io.Discard}),
		DB:           stubPinger{},
		Redis:        stubPinger{},
		Sessions:     stubSessionChecker{},
		Auth:         stubAuthService{},
		Catalog:      stubCatalogService{},
		Cart:         stubCartService{},
		Orders:       stubOrdersService{},
		Users:        stubUsersService{},
		Billing:      stubBillingService{},
		Testimonials: stubTestimonialsService{},
		Contact:      stubContactService{},
	})
}

func TestPublicRoutes(t *testing.T) {
	router := newTestRouter(t)

	paths := []string{
		"/health/live",
		"/health/ready",
		"/api/v1/categories",
		"/api/v1/products",
		"/api/v1/products/featured",
		"/api/v1/products/new",
		"/api/v1/products/category/" + uuid.NewString(),
		"/api/v1/testimonials",
		"/api/v1/billing/status",
	}
	for _, path := range paths {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("GET %s: expected 200, got %d", path, rec.Code)
		}
	}
}

func TestPrivateRoutesRequireAuth(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}
}

func TestPrivateRouteWithValidToken(t *testing.T) {
	router := newTestRouter(t)
	cfg := testConfig()

	token, err := pkgauth.MintAccessToken(cfg.JWT, time.Now().UTC(), pkgauth.AccessTokenPayload{
		UserID:   uuid.New(),
		Username: "joana",
		JTI:      uuid.NewString(),
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with token, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestContactRoute(t *testing.T) {
	router := newTestRouter(t)

	body := `{"name":"Maria","email":"maria@example.com","subject":"Olá","message":"Boa tarde"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
}
