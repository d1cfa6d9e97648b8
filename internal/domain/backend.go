package domain

import (
	"context"
	"strings"
	"unicode"
)

const (
	EndpointRegister   = "api/user/register"
	EndpointLogin      = "api/user/login"
	EndpointMyProducts = "api/product/my-products"
	EndpointAddProduct = "api/product/add"
)

// BackendClient performs JSON calls against the backend API. An empty token
// sends the request unauthenticated.
type BackendClient interface {
	Get(ctx context.Context, endpoint, token string, out any) error
	Post(ctx context.Context, endpoint, token string, body, out any) error
}

// Reply is the key/value envelope the backend answers mutations with.
type Reply struct {
	Message string `json:"message"`
	Success *bool  `json:"success"`
	Token   string `json:"token"`
}

// Succeeded applies to replies that already came back with a 2xx status.
// An explicit success flag wins; without one the message must report success
// in words ("success", "successful", "succeeded") and carry no failure word.
func (r *Reply) Succeeded() bool {
	if r == nil {
		return false
	}
	if r.Success != nil {
		return *r.Success
	}

	succeeded := false
	for _, word := range messageWords(r.Message) {
		switch {
		case strings.HasPrefix(word, "fail"), strings.HasPrefix(word, "error"), strings.HasPrefix(word, "unsuccess"):
			return false
		case strings.HasPrefix(word, "succe"):
			succeeded = true
		}
	}
	return succeeded
}

// Acknowledged is the looser rule used where the backend answers a create
// with a plain confirmation: an explicit flag wins, otherwise any message.
func (r *Reply) Acknowledged() bool {
	if r == nil {
		return false
	}
	if r.Success != nil {
		return *r.Success
	}
	return strings.TrimSpace(r.Message) != ""
}

func messageWords(msg string) []string {
	return strings.FieldsFunc(strings.ToLower(msg), func(c rune) bool {
		return !unicode.IsLetter(c)
	})
}
