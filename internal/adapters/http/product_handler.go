package http

import (
	"errors"
	"net/http"
	"strings"

	"horizonx-storefront/internal/adapters/http/middleware"
	"horizonx-storefront/internal/adapters/http/view"
	"horizonx-storefront/internal/domain"
	"horizonx-storefront/internal/logger"
)

type ProductHandler struct {
	svc      domain.ProductService
	sessions *middleware.SessionManager
	view     *view.Renderer
	log      logger.Logger
}

func NewProductHandler(
	svc domain.ProductService,
	sessions *middleware.SessionManager,
	v *view.Renderer,
	log logger.Logger,
) *ProductHandler {
	return &ProductHandler{
		svc:      svc,
		sessions: sessions,
		view:     v,
		log:      log,
	}
}

func (h *ProductHandler) Index(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	data := newPage(r, sess, "My Products")

	products, err := h.svc.List(r.Context(), sess.Token())
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			h.expireLogin(w, r, sess)
			return
		}

		h.log.Error("product: failed to list products", "error", err)
		data.Error = msgListFailed
		products = []domain.Product{}
	}

	data.Products = products
	h.view.Render(w, http.StatusOK, view.PageProducts, data)
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	h.view.Render(w, http.StatusOK, view.PageAddProduct, newPage(r, sess, "Add Product"))
}

func (h *ProductHandler) Store(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)

	req := domain.ProductSaveRequest{
		Name:        strings.TrimSpace(r.PostFormValue("name")),
		Description: strings.TrimSpace(r.PostFormValue("description")),
		Price:       strings.TrimSpace(r.PostFormValue("price")),
		Quantity:    strings.TrimSpace(r.PostFormValue("quantity")),
	}

	data := newPage(r, sess, "Add Product")
	data.Form = req

	if errs := ValidateStruct(&req); len(errs) > 0 {
		data.Errors = errs
		h.view.Render(w, http.StatusUnprocessableEntity, view.PageAddProduct, data)
		return
	}

	err := h.svc.Create(r.Context(), sess.Token(), req)
	if err == nil {
		http.Redirect(w, r, pathMyProducts, http.StatusSeeOther)
		return
	}

	if errors.Is(err, domain.ErrUnauthorized) {
		h.log.Warn("product: add rejected, token missing or expired")
		data.Error = msgSessionExpired
		h.view.Render(w, http.StatusUnauthorized, view.PageAddProduct, data)
		return
	}

	h.log.Error("product: failed to add product", "error", err)
	data.Error = msgAddProductFailed
	h.view.Render(w, http.StatusOK, view.PageAddProduct, data)
}

// expireLogin drops a token the backend no longer accepts and sends the
// user back to the login form.
func (h *ProductHandler) expireLogin(w http.ResponseWriter, r *http.Request, sess *domain.Session) {
	sess.ClearToken()
	sess.SetFlash(msgSessionExpired)

	if err := h.sessions.Save(w, r, sess); err != nil {
		h.log.Error("product: failed to update session", "error", err)
	}

	http.Redirect(w, r, pathLogin, http.StatusFound)
}
