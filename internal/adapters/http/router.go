package http

import (
	"net/http"

	"horizonx-storefront/internal/adapters/http/middleware"
	"horizonx-storefront/internal/config"
	"horizonx-storefront/internal/logger"
)

type RouterDeps struct {
	Account  *AccountHandler
	Product  *ProductHandler
	Sessions *middleware.SessionManager
	Log      logger.Logger
}

func NewRouter(cfg *config.Config, deps *RouterDeps) http.Handler {
	mux := http.NewServeMux()

	globalMw := middleware.New()
	globalMw.Use(middleware.Recover(deps.Log))
	globalMw.Use(middleware.Logging(deps.Log))

	pageStack := middleware.New()
	pageStack.Use(middleware.CSRF(cfg.CookieSecure))
	pageStack.Use(deps.Sessions.Middleware)

	page := func(h http.HandlerFunc) http.Handler {
		return pageStack.Then(h)
	}

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, pathMyProducts, http.StatusFound)
	})

	mux.Handle("GET /account/login", page(deps.Account.LoginPage))
	mux.Handle("POST /account/login", page(deps.Account.Login))
	mux.Handle("GET /account/register", page(deps.Account.RegisterPage))
	mux.Handle("POST /account/register", page(deps.Account.Register))
	mux.Handle("POST /account/logout", page(deps.Account.Logout))

	mux.Handle("GET /product/my-products", page(deps.Product.Index))
	mux.Handle("GET /product/add", page(deps.Product.Create))
	mux.Handle("POST /product/add", page(deps.Product.Store))

	return globalMw.Apply(mux)
}
