package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadFileSendsMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		f, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()

		content, _ := io.ReadAll(f)
		assert.Equal(t, "report.csv", hdr.Filename)
		assert.Equal(t, "a,b\n1,2\n", string(content))

		w.Write([]byte(`{"code":0,"msg":"ok","data":{"id":"att-1","url":"/uploads/att-1.csv"}}`))
	}))
	defer srv.Close()

	raw, err := New(srv.URL).Upload.File(context.Background(), "report.csv", strings.NewReader("a,b\n1,2\n"))
	require.NoError(t, err)

	// the body comes back decoded but uninterpreted, envelope and all
	assert.Equal(t, float64(0), raw["code"])
	data := raw["data"].(map[string]interface{})
	assert.Equal(t, "att-1", data["id"])
}

func TestUploadFileReturnsNonEnvelopeBodyAsIs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// some deployments front this endpoint with a gateway that answers
		// in its own shape
		w.Write([]byte(`{"stored":true,"path":"/files/x"}`))
	}))
	defer srv.Close()

	raw, err := New(srv.URL).Upload.File(context.Background(), "x.bin", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, true, raw["stored"])
	assert.Equal(t, "/files/x", raw["path"])
}

func TestUploadFileWithoutTokenStillSends(t *testing.T) {
	var sawAuth bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawAuth = r.Header["Authorization"]
		w.Write([]byte(`{"code":0,"msg":"ok","data":null}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).Upload.File(context.Background(), "x", strings.NewReader("x"))
	require.NoError(t, err)
	assert.False(t, sawAuth, "anonymous uploads carry no auth header")
}

func TestUploadFileHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too large", http.StatusRequestEntityTooLarge)
	}))
	defer srv.Close()

	_, err := New(srv.URL).Upload.File(context.Background(), "big", strings.NewReader("x"))
	assert.EqualError(t, err, "HTTP bad response: 413")
}
