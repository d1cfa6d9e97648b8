package http

import (
	"net/http"
	"time"

	"horizonx-storefront/internal/adapters/http/middleware"
	"horizonx-storefront/internal/adapters/http/view"
	"horizonx-storefront/internal/domain"
)

// currentSession never returns nil; outside the session middleware it hands
// back a throwaway session.
func currentSession(r *http.Request) *domain.Session {
	if sess, ok := middleware.GetSession(r.Context()); ok {
		return sess
	}
	return domain.NewSession("", time.Time{})
}

func newPage(r *http.Request, sess *domain.Session, title string) *view.Data {
	return &view.Data{
		Title:         title,
		CSRFToken:     middleware.GetCSRFToken(r.Context()),
		Authenticated: sess.Token() != "",
		Errors:        map[string]string{},
	}
}
