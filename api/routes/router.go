package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aurumjoias/aurum-backend/api/controllers"
	"github.com/aurumjoias/aurum-backend/api/middleware"
	authsvc "github.com/aurumjoias/aurum-backend/internal/auth"
	billingsvc "github.com/aurumjoias/aurum-backend/internal/billing"
	cartsvc "github.com/aurumjoias/aurum-backend/internal/cart"
	catalogsvc "github.com/aurumjoias/aurum-backend/internal/catalog"
	contactsvc "github.com/aurumjoias/aurum-backend/internal/contact"
	ordersvc "github.com/aurumjoias/aurum-backend/internal/orders"
	testimonialsvc "github.com/aurumjoias/aurum-backend/internal/testimonials"
	usersvc "github.com/aurumjoias/aurum-backend/internal/users"
	"github.com/aurumjoias/aurum-backend/pkg/auth/session"
	"github.com/aurumjoias/aurum-backend/pkg/config"
	"github.com/aurumjoias/aurum-backend/pkg/db"
	"github.com/aurumjoias/aurum-backend/pkg/logger"
	"github.com/aurumjoias/aurum-backend/pkg/redis"
)

// RouterParams bundles everything the HTTP surface needs.
type RouterParams struct {
	Config       *config.Config
	Logger       *logger.Logger
	DB           db.Pinger
	Redis        redis.Pinger
	Sessions     session.AccessSessionChecker
	Auth         authsvc.Service
	Catalog      catalogsvc.Service
	Cart         cartsvc.Service
	Orders       ordersvc.Service
	Users        usersvc.Service
	Billing      billingsvc.Service
	Testimonials testimonialsvc.Service
	Contact      contactsvc.Service
}

// NewRouter wires every storefront route behind the shared middleware chain.
func NewRouter(params RouterParams) http.Handler {
	cfg := params.Config
	logg := params.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.App),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, params.DB, params.Redis))
	})

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/register", controllers.AuthRegister(params.Auth, logg))
		r.Post("/login", controllers.AuthLogin(params.Auth, logg))
		r.Post("/logout", controllers.AuthLogout(params.Auth, logg))
		r.Post("/refresh", controllers.AuthRefresh(params.Auth, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		// Public storefront surface.
		r.Route("/categories", func(r chi.Router) {
			r.Get("/", controllers.CategoriesList(params.Catalog, logg))
			r.Get("/{slug}", controllers.CategoryDetail(params.Catalog, logg))
			r.Get("/{slug}/products", controllers.CategoryProductsBySlug(params.Catalog, logg))
		})
		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ProductsList(params.Catalog, logg))
			r.Get("/featured", controllers.ProductsFeatured(params.Catalog, logg))
			r.Get("/new", controllers.ProductsNew(params.Catalog, logg))
			r.Get("/category/{categoryId}", controllers.CategoryProducts(params.Catalog, logg))
			r.Get("/{slug}", controllers.ProductDetail(params.Catalog, logg))
		})
		r.Get("/testimonials", controllers.TestimonialsList(params.Testimonials, logg))
		r.Post("/contact", controllers.ContactCreate(params.Contact, logg))
		r.Get("/billing/status", controllers.BillingStatus(params.Billing, logg))

		// Everything below requires a valid session.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, params.Sessions, logg))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", controllers.CartFetch(params.Cart, logg))
				r.Post("/", controllers.CartAddItem(params.Cart, logg))
				r.Delete("/", controllers.CartClear(params.Cart, logg))
				r.Put("/{itemId}", controllers.CartUpdateItem(params.Cart, logg))
				r.Delete("/{itemId}", controllers.CartRemoveItem(params.Cart, logg))
			})

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", controllers.OrdersList(params.Orders, logg))
				r.Post("/", controllers.OrderPlace(params.Orders, logg))
				r.Get("/{orderId}", controllers.OrderDetail(params.Orders, logg))
			})

			r.Post("/billing/invoice/{orderId}", controllers.BillingCreateInvoice(params.Billing, logg))

			r.Route("/users", func(r chi.Router) {
				r.Get("/me", controllers.UserProfile(params.Users, logg))
				r.Put("/me", controllers.UserUpdate(params.Users, logg))
			})
		})
	})

	return r
}
