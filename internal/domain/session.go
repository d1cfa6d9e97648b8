package domain

import (
	"context"
	"errors"
	"time"
)

var ErrSessionNotFound = errors.New("session not found")

const (
	SessionKeyToken = "Token"
	SessionKeyFlash = "Flash"
)

type Session struct {
	ID        string            `json:"id"`
	Values    map[string]string `json:"values"`
	ExpiresAt time.Time         `json:"expires_at"`
}

func NewSession(id string, expiresAt time.Time) *Session {
	return &Session{
		ID:        id,
		Values:    make(map[string]string),
		ExpiresAt: expiresAt,
	}
}

func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

func (s *Session) Token() string {
	return s.Values[SessionKeyToken]
}

func (s *Session) SetToken(token string) {
	s.set(SessionKeyToken, token)
}

func (s *Session) ClearToken() {
	delete(s.Values, SessionKeyToken)
}

func (s *Session) SetFlash(msg string) {
	s.set(SessionKeyFlash, msg)
}

// PopFlash returns the pending notice and removes it.
func (s *Session) PopFlash() string {
	msg := s.Values[SessionKeyFlash]
	delete(s.Values, SessionKeyFlash)
	return msg
}

func (s *Session) set(key, value string) {
	if s.Values == nil {
		s.Values = make(map[string]string)
	}
	s.Values[key] = value
}

type SessionStore interface {
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, sess *Session) error
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context) (int64, error)
}
