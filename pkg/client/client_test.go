package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmbientHeadersAreSent(t *testing.T) {
	var gotAuth, gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotKey = r.Header.Get("X-Client-Key")
		w.Write([]byte(`{"code":0,"msg":"ok","data":null}`))
	}))
	defer srv.Close()

	c := New(srv.URL,
		WithTokenSource(func() string { return "tok-123" }),
		WithClientKey("console-web"),
	)
	require.NoError(t, c.get(context.Background(), "/ping", nil, nil))

	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "console-web", gotKey)
}

func TestMissingTokenIsTolerated(t *testing.T) {
	var sawAuth bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawAuth = r.Header["Authorization"]
		w.Write([]byte(`{"code":0,"msg":"ok","data":null}`))
	}))
	defer srv.Close()

	// no token source at all, and one that yields empty
	for _, c := range []*Client{
		New(srv.URL),
		New(srv.URL, WithTokenSource(func() string { return "" })),
	} {
		require.NoError(t, c.get(context.Background(), "/ping", nil, nil))
		assert.False(t, sawAuth, "empty credentials must not produce a header")
	}
}

func TestEnvelopeErrorBecomesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// app-level failure on a transport-level 200
		w.Write([]byte(`{"code":40400,"msg":"organization not found","data":null}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.get(context.Background(), "/x", nil, nil)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 40400, apiErr.Code)
	assert.Equal(t, "organization not found", apiErr.Msg)
	assert.Equal(t, "api error 40400: organization not found", apiErr.Error())
}

func TestHTTPErrorWithEnvelopeBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"code":40100,"msg":"missing token","data":null}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.get(context.Background(), "/x", nil, nil)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 40100, apiErr.Code)
}

func TestHTTPErrorWithoutEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.get(context.Background(), "/x", nil, nil)

	require.Error(t, err)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
	assert.EqualError(t, err, "HTTP bad response: 502")
}

func TestNullDataLeavesOutUntouched(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":0,"msg":"ok","data":null}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	out := map[string]string{"keep": "me"}
	require.NoError(t, c.get(context.Background(), "/x", nil, &out))
	assert.Equal(t, "me", out["keep"])
}
