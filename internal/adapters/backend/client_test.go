package backend

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"horizonx-storefront/internal/config"
	"horizonx-storefront/internal/domain"
	"horizonx-storefront/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := NewClient(&config.Config{APIBaseURL: srv.URL, APITimeout: 2 * time.Second}, logger.Discard())
	require.NoError(t, err)
	return c
}

func TestNewClient_RejectsBadBaseURL(t *testing.T) {
	for _, raw := range []string{"", "localhost", "://nope"} {
		_, err := NewClient(&config.Config{APIBaseURL: raw}, logger.Discard())
		assert.Error(t, err, raw)
	}
}

func TestPost_SendsJSONAndBearerToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/product/add", r.URL.Path)
		assert.Equal(t, "Bearer abc123", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json; charset=utf-8", r.Header.Get("Content-Type"))

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"name":"Lamp","price":"12.5","quantity":"3","id":"0","description":""}`, string(body))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"Message":"Product added successfully"}`))
	})

	var reply domain.Reply
	err := c.Post(context.Background(), domain.EndpointAddProduct, "abc123",
		domain.Product{Name: "Lamp", Price: 12.5, Quantity: 3}, &reply)

	require.NoError(t, err)
	assert.Equal(t, "Product added successfully", reply.Message)
	assert.True(t, reply.Succeeded())
}

func TestGet_WithoutTokenOmitsHeader(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, ok := r.Header["Authorization"]
		assert.False(t, ok)
		assert.Empty(t, r.Header.Get("Content-Type"))
		w.Write([]byte(`[]`))
	})

	var products []domain.Product
	require.NoError(t, c.Get(context.Background(), domain.EndpointMyProducts, "", &products))
	assert.Empty(t, products)
}

func TestGet_DecodesCaseInsensitiveAndStringNumbers(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"ID":"1","NAME":"Desk","Price":"120.50","quantity":2,"extra":"ignored"},
			{"id":2,"name":"Chair"}
		]`))
	})

	var products []domain.Product
	require.NoError(t, c.Get(context.Background(), domain.EndpointMyProducts, "t", &products))

	require.Len(t, products, 2)
	assert.Equal(t, domain.Product{ID: 1, Name: "Desk", Price: 120.5, Quantity: 2}, products[0])
	assert.Equal(t, domain.Product{ID: 2, Name: "Chair"}, products[1])
}

func TestDo_ErrorClassification(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
		notErr error
	}{
		{"unauthorized", http.StatusUnauthorized, `{"message":"no"}`, domain.ErrUnauthorized, domain.ErrRequestFailed},
		{"bad request", http.StatusBadRequest, `{"message":"exists"}`, domain.ErrRequestFailed, domain.ErrUnauthorized},
		{"server error", http.StatusInternalServerError, ``, domain.ErrRequestFailed, domain.ErrUnauthorized},
		{"invalid json", http.StatusOK, `{"message":`, domain.ErrDecodeFailed, domain.ErrTransport},
		{"wrong shape", http.StatusOK, `[1,2]`, domain.ErrDecodeFailed, domain.ErrRequestFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			var reply domain.Reply
			err := c.Post(context.Background(), domain.EndpointRegister, "", map[string]string{"a": "b"}, &reply)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.False(t, errors.Is(err, tt.notErr))
		})
	}
}

func TestDo_StatusErrorCarriesCode(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`duplicate`))
	})

	err := c.Post(context.Background(), domain.EndpointRegister, "", struct{}{}, nil)

	code, ok := domain.StatusCode(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, code)
	assert.True(t, domain.IsClientError(err))

	var se *domain.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "duplicate", se.Body)
}

func TestDo_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := NewClient(&config.Config{APIBaseURL: url, APITimeout: time.Second}, logger.Discard())
	require.NoError(t, err)

	err = c.Get(context.Background(), domain.EndpointMyProducts, "t", nil)
	assert.ErrorIs(t, err, domain.ErrTransport)
	_, ok := domain.StatusCode(err)
	assert.False(t, ok)
}

func TestPost_UnencodableBodyNeverSent(t *testing.T) {
	called := false
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	err := c.Post(context.Background(), domain.EndpointAddProduct, "t", make(chan int), nil)

	assert.ErrorIs(t, err, domain.ErrEncodeFailed)
	assert.False(t, errors.Is(err, domain.ErrTransport))
	assert.False(t, called)
}

func TestDo_EmptyBodyOnSuccess(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	reply := domain.Reply{Message: "untouched"}
	require.NoError(t, c.Post(context.Background(), domain.EndpointAddProduct, "t", struct{}{}, &reply))
	assert.Equal(t, "untouched", reply.Message)
}

func TestDo_BaseURLWithPathPrefix(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/api/user/login", r.URL.Path)
		w.Write([]byte(`{"token":"x"}`))
	}))
	t.Cleanup(srv.Close)

	c, err := NewClient(&config.Config{APIBaseURL: srv.URL + "/v2", APITimeout: time.Second}, logger.Discard())
	require.NoError(t, err)

	var reply domain.Reply
	require.NoError(t, c.Post(context.Background(), "/"+domain.EndpointLogin, "", struct{}{}, &reply))
	assert.Equal(t, "x", reply.Token)
}
