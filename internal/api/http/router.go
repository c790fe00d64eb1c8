package http

import (
	"net/http"

	"rechtent-backend/internal/config"
	"rechtent-backend/internal/security"
	"rechtent-backend/internal/service"
	"rechtent-backend/internal/storage"

	"github.com/gorilla/mux"
	"github.com/justinas/alice"
	"github.com/rs/cors"
)

// RouterDeps bundles everything the HTTP surface needs.
type RouterDeps struct {
	Config     *config.Config
	Tokens     security.TokenManager
	Storage    storage.StorageInterface
	AuthSvc    service.AuthService
	UserSvc    service.UserService
	CatalogSvc service.CatalogService
	CartSvc    service.CartService
	OrderSvc   service.OrderService
	ReturnSvc  service.ReturnService
	AdminSvc   service.AdminService
}

// NewRouter assembles the full REST surface under /api/v1.
func NewRouter(deps RouterDeps) http.Handler {
	mw := NewMiddleware(deps.Tokens)
	pageSize := deps.Config.Pricing.DefaultPageSize

	authH := NewAuthHandler(deps.AuthSvc)
	userH := NewUserHandler(deps.UserSvc)
	catalogH := NewCatalogHandler(deps.CatalogSvc)
	cartH := NewCartHandler(deps.CartSvc)
	orderH := NewOrderHandler(deps.OrderSvc, pageSize)
	returnH := NewReturnHandler(deps.ReturnSvc, deps.Config.Storage.MaxFileSizeMB, pageSize)
	adminH := NewAdminHandler(deps.CatalogSvc, deps.AdminSvc, pageSize)
	fileH := NewFileHandler(deps.Storage)

	base := alice.New(mw.RecoverPanic, mw.LogRequest, mw.Authenticate)
	user := base.Append(mw.RequireUser)
	admin := base.Append(mw.RequireAdmin)

	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	api.Handle("/health", base.ThenFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})).Methods(http.MethodGet)

	// Auth.
	api.Handle("/auth/signup", base.ThenFunc(authH.Signup)).Methods(http.MethodPost)
	api.Handle("/auth/login", base.ThenFunc(authH.Login)).Methods(http.MethodPost)
	api.Handle("/auth/refresh", base.ThenFunc(authH.Refresh)).Methods(http.MethodPost)
	api.Handle("/auth/logout", base.ThenFunc(authH.Logout)).Methods(http.MethodPost)

	// Profile.
	api.Handle("/profile", user.ThenFunc(userH.GetProfile)).Methods(http.MethodGet)
	api.Handle("/profile", user.ThenFunc(userH.UpdateProfile)).Methods(http.MethodPatch)

	// Catalog (public).
	api.Handle("/types", base.ThenFunc(catalogH.ListTypes)).Methods(http.MethodGet)
	api.Handle("/types/{type_id}/brands", base.ThenFunc(catalogH.ListBrands)).Methods(http.MethodGet)
	api.Handle("/types/{type_id}/products", base.ThenFunc(catalogH.ListProducts)).Methods(http.MethodGet)
	api.Handle("/products/{id}", base.ThenFunc(catalogH.GetProduct)).Methods(http.MethodGet)

	// Cart: anonymous sessions allowed, identified by the X-Cart-ID header.
	api.Handle("/cart", base.ThenFunc(cartH.GetCart)).Methods(http.MethodGet)
	api.Handle("/cart/count", base.ThenFunc(cartH.GetCartCount)).Methods(http.MethodGet)
	api.Handle("/cart/items", base.ThenFunc(cartH.AddItem)).Methods(http.MethodPost)
	api.Handle("/cart/items/{item_id}", base.ThenFunc(cartH.UpdateItem)).Methods(http.MethodPatch)
	api.Handle("/cart/items/{item_id}", base.ThenFunc(cartH.RemoveItem)).Methods(http.MethodDelete)
	api.Handle("/cart", base.ThenFunc(cartH.ClearCart)).Methods(http.MethodDelete)
	api.Handle("/cart/promo", base.ThenFunc(cartH.ApplyPromo)).Methods(http.MethodPost)

	// Orders and returns require a signed-in customer.
	api.Handle("/checkout", user.ThenFunc(orderH.Checkout)).Methods(http.MethodPost)
	api.Handle("/orders", user.ThenFunc(orderH.ListOrders)).Methods(http.MethodGet)
	api.Handle("/orders/{id}", user.ThenFunc(orderH.GetOrder)).Methods(http.MethodGet)
	api.Handle("/returns", user.ThenFunc(returnH.Submit)).Methods(http.MethodPost)
	api.Handle("/returns", user.ThenFunc(returnH.ListMine)).Methods(http.MethodGet)

	// Admin panel.
	api.Handle("/admin/products", admin.ThenFunc(adminH.CreateProduct)).Methods(http.MethodPost)
	api.Handle("/admin/products/{id}", admin.ThenFunc(adminH.UpdateProduct)).Methods(http.MethodPut)
	api.Handle("/admin/products/{id}", admin.ThenFunc(adminH.DeleteProduct)).Methods(http.MethodDelete)
	api.Handle("/admin/products/{id}/packages", admin.ThenFunc(adminH.ReplacePackages)).Methods(http.MethodPost)
	api.Handle("/admin/orders", admin.ThenFunc(orderH.AdminListOrders)).Methods(http.MethodGet)
	api.Handle("/admin/orders/{id}/status", admin.ThenFunc(orderH.AdminUpdateStatus)).Methods(http.MethodPatch)
	api.Handle("/admin/returns", admin.ThenFunc(returnH.AdminList)).Methods(http.MethodGet)
	api.Handle("/admin/returns/{id}/decision", admin.ThenFunc(returnH.AdminDecide)).Methods(http.MethodPost)
	api.Handle("/admin/users", admin.ThenFunc(adminH.ListUsers)).Methods(http.MethodGet)
	api.Handle("/admin/users/{id}/role", admin.ThenFunc(adminH.SetUserRole)).Methods(http.MethodPatch)
	api.Handle("/admin/users/{id}", admin.ThenFunc(adminH.DeleteUser)).Methods(http.MethodDelete)
	api.Handle("/admin/promos", admin.ThenFunc(adminH.CreatePromo)).Methods(http.MethodPost)
	api.Handle("/admin/promos", admin.ThenFunc(adminH.ListPromos)).Methods(http.MethodGet)
	api.Handle("/admin/promos/{id}", admin.ThenFunc(adminH.SetPromoActive)).Methods(http.MethodPatch)

	// Mock-storage downloads. Evidence keys contain slashes.
	api.Handle("/files/{key:.+}", admin.ThenFunc(fileH.Download)).Methods(http.MethodGet)

	c := cors.New(cors.Options{
		AllowedOrigins:   deps.Config.CORS.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", cartIDHeader},
		ExposedHeaders:   []string{cartIDHeader},
		AllowCredentials: true,
	})
	return c.Handler(r)
}
