package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"horizonx-storefront/internal/domain"
	"horizonx-storefront/internal/logger"
	"horizonx-storefront/pkg"

	"github.com/google/uuid"
)

const SessionCookieName = "session_id"

type sessionCtxKey struct{}

type SessionManager struct {
	store  domain.SessionStore
	ttl    time.Duration
	secure bool
	log    logger.Logger
	now    func() time.Time
}

func NewSessionManager(store domain.SessionStore, ttl time.Duration, secure bool, log logger.Logger) *SessionManager {
	return &SessionManager{
		store:  store,
		ttl:    ttl,
		secure: secure,
		log:    log,
		now:    time.Now,
	}
}

// Middleware loads the caller's session into the request context. Unknown
// or expired ids get a fresh, unsaved session under a new id. A stored
// session has its idle deadline pushed forward on every request.
func (m *SessionManager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, stored := m.load(r)
		if stored {
			if err := m.save(w, r, sess, time.Time{}); err != nil {
				m.log.Warn("session: failed to extend session", "error", err)
			}
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionCtxKey{}, sess)))
	})
}

func (m *SessionManager) load(r *http.Request) (*domain.Session, bool) {
	if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		sess, err := m.store.Get(r.Context(), cookie.Value)
		if err == nil {
			return sess, true
		}
		if !errors.Is(err, domain.ErrSessionNotFound) {
			m.log.Error("session: load failed", "error", err)
		}
	}

	return domain.NewSession(uuid.NewString(), m.now().Add(m.ttl)), false
}

// Save persists sess with a refreshed idle deadline and (re)issues the
// cookie. Must run before the response header is written.
func (m *SessionManager) Save(w http.ResponseWriter, r *http.Request, sess *domain.Session) error {
	return m.save(w, r, sess, time.Time{})
}

// SaveUntil is Save with the lifetime capped at limit. A zero limit falls
// back to the exp claim of the held token.
func (m *SessionManager) SaveUntil(w http.ResponseWriter, r *http.Request, sess *domain.Session, limit time.Time) error {
	return m.save(w, r, sess, limit)
}

func (m *SessionManager) save(w http.ResponseWriter, r *http.Request, sess *domain.Session, limit time.Time) error {
	expires := m.deadline(sess, limit)
	sess.ExpiresAt = expires

	if err := m.store.Save(r.Context(), sess); err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    sess.ID,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

// deadline is now+ttl, capped at limit while limit is still ahead of now.
// A cap already in the past is ignored; the backend rejects the stale
// token on the next call instead.
func (m *SessionManager) deadline(sess *domain.Session, limit time.Time) time.Time {
	now := m.now()
	expires := now.Add(m.ttl)

	if limit.IsZero() {
		if exp, ok := pkg.TokenExpiry(sess.Token()); ok {
			limit = exp
		}
	}

	if limit.After(now) && limit.Before(expires) {
		return limit
	}
	if !limit.IsZero() && !limit.After(now) {
		m.log.Debug("session: ignoring lifetime cap in the past", "cap", limit)
	}
	return expires
}

// Renew saves sess under a new id, capped at limit like SaveUntil, and drops
// the old record once the new one is stored. On failure sess keeps its old
// id and the old record is left alone.
func (m *SessionManager) Renew(w http.ResponseWriter, r *http.Request, sess *domain.Session, limit time.Time) error {
	old := sess.ID
	sess.ID = uuid.NewString()

	if err := m.save(w, r, sess, limit); err != nil {
		sess.ID = old
		return err
	}

	if err := m.store.Delete(r.Context(), old); err != nil {
		m.log.Warn("session: failed to delete renewed session", "error", err)
	}
	return nil
}

// Destroy removes the stored record and expires the cookie.
func (m *SessionManager) Destroy(w http.ResponseWriter, r *http.Request, sess *domain.Session) {
	if err := m.store.Delete(r.Context(), sess.ID); err != nil {
		m.log.Error("session: destroy failed", "error", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func GetSession(ctx context.Context) (*domain.Session, bool) {
	sess, ok := ctx.Value(sessionCtxKey{}).(*domain.Session)
	return sess, ok
}
