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

type AccountHandler struct {
	svc      domain.AccountService
	sessions *middleware.SessionManager
	view     *view.Renderer
	log      logger.Logger
}

func NewAccountHandler(
	svc domain.AccountService,
	sessions *middleware.SessionManager,
	v *view.Renderer,
	log logger.Logger,
) *AccountHandler {
	return &AccountHandler{
		svc:      svc,
		sessions: sessions,
		view:     v,
		log:      log,
	}
}

func (h *AccountHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	data := newPage(r, sess, "Login")
	data.Flash = h.popFlash(w, r, sess)

	h.view.Render(w, http.StatusOK, view.PageLogin, data)
}

func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)

	req := domain.LoginRequest{
		Email:    strings.TrimSpace(r.PostFormValue("email")),
		Password: r.PostFormValue("password"),
	}

	data := newPage(r, sess, "Login")
	data.Form = req

	if errs := ValidateStruct(&req); len(errs) > 0 {
		data.Errors = errs
		h.view.Render(w, http.StatusUnprocessableEntity, view.PageLogin, data)
		return
	}

	res, err := h.svc.Login(r.Context(), req)
	if err != nil {
		h.log.Warn("account: login failed", "error", err)

		data.Error = msgLoginError
		if errors.Is(err, domain.ErrInvalidCredentials) || domain.IsClientError(err) {
			data.Error = msgInvalidLogin
		}
		h.view.Render(w, http.StatusOK, view.PageLogin, data)
		return
	}

	prev := sess.Token()
	sess.SetToken(res.Token)

	if err := h.sessions.Renew(w, r, sess, res.ExpiresAt); err != nil {
		h.log.Error("account: failed to store session", "error", err)
		if prev == "" {
			sess.ClearToken()
		} else {
			sess.SetToken(prev)
		}
		data.Error = msgLoginError
		h.view.Render(w, http.StatusOK, view.PageLogin, data)
		return
	}

	h.log.Info("account: signed in")
	http.Redirect(w, r, pathAddProduct, http.StatusSeeOther)
}

func (h *AccountHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	h.view.Render(w, http.StatusOK, view.PageRegister, newPage(r, sess, "Register"))
}

func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)

	req := domain.RegisterRequest{
		Name:            strings.TrimSpace(r.PostFormValue("name")),
		Email:           strings.TrimSpace(r.PostFormValue("email")),
		Password:        r.PostFormValue("password"),
		ConfirmPassword: r.PostFormValue("confirm_password"),
	}

	data := newPage(r, sess, "Register")
	data.Form = req

	if errs := ValidateStruct(&req); len(errs) > 0 {
		data.Errors = errs
		h.view.Render(w, http.StatusUnprocessableEntity, view.PageRegister, data)
		return
	}

	err := h.svc.Register(r.Context(), req)
	switch {
	case err == nil:
		sess.SetFlash(msgRegisterSuccess)
		if err := h.sessions.Save(w, r, sess); err != nil {
			h.log.Error("account: failed to store flash", "error", err)
		}
		http.Redirect(w, r, pathLogin, http.StatusSeeOther)
		return
	case domain.IsClientError(err):
		data.Error = msgAlreadyRegistered
	case errors.Is(err, domain.ErrNotSucceeded):
		data.Error = msgRegisterFailed
	default:
		data.Error = msgRegisterError
	}

	h.log.Warn("account: registration failed", "error", err)
	h.view.Render(w, http.StatusOK, view.PageRegister, data)
}

func (h *AccountHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	sess.ClearToken()

	if err := h.sessions.Save(w, r, sess); err != nil {
		h.log.Error("account: failed to clear session, destroying it", "error", err)
		h.sessions.Destroy(w, r, sess)
	}

	http.Redirect(w, r, pathLogin, http.StatusSeeOther)
}

func (h *AccountHandler) popFlash(w http.ResponseWriter, r *http.Request, sess *domain.Session) string {
	msg := sess.PopFlash()
	if msg == "" {
		return ""
	}

	if err := h.sessions.Save(w, r, sess); err != nil {
		h.log.Warn("account: failed to consume flash", "error", err)
	}

	return msg
}
