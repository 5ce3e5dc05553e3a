package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrgListPagePassesCursorVerbatim(t *testing.T) {
	var got *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(r.Context())
		w.Write([]byte(`{"code":0,"msg":"ok","data":{
			"size":2,"total":7,"hasNext":true,"hasPrevious":true,
			"nextCursor":"nc-opaque","prevCursor":"pc-opaque","cursorType":"up",
			"data":[{"id":"o5","name":"Five"},{"id":"o4","name":"Four"}]}}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	page, err := c.Org.ListPage(context.Background(), OrgPageParams{
		Size: 2,
		Cursor: CursorParams{
			CursorID:       "o3",
			CursorCreateTs: "2024-05-01T03:00:00Z",
			CursorType:     "up",
		},
	})
	require.NoError(t, err)

	q := got.URL.Query()
	assert.Equal(t, "/api/sys/org/page-list", got.URL.Path)
	assert.Equal(t, "2", q.Get("size"))
	assert.Equal(t, "o3", q.Get("cursorId"))
	assert.Equal(t, "2024-05-01T03:00:00Z", q.Get("cursorCreateTs"))
	assert.Equal(t, "up", q.Get("cursorType"))

	// the window comes back as sent: order, flags and tokens untouched
	assert.Equal(t, "up", page.CursorType)
	assert.Equal(t, "nc-opaque", page.NextCursor)
	assert.Equal(t, "pc-opaque", page.PrevCursor)
	require.Len(t, page.Data, 2)
	assert.Equal(t, "o5", page.Data[0].ID)
	assert.Equal(t, "o4", page.Data[1].ID)
}

func TestOrgListPageDefaultSize(t *testing.T) {
	var q string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q = r.URL.Query().Get("size")
		w.Write([]byte(`{"code":0,"msg":"ok","data":{"size":10,"data":[]}}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).Org.ListPage(context.Background(), OrgPageParams{})
	require.NoError(t, err)
	assert.Equal(t, "10", q)
}

func TestOrgGetByID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "o1", r.URL.Query().Get("id"))
		w.Write([]byte(`{"code":0,"msg":"ok","data":{
			"id":"o1","name":"One","orgType":2,
			"additional":{"region":"eu"},"createTs":"2024-05-01T00:00:00Z"}}`))
	}))
	defer srv.Close()

	org, err := New(srv.URL).Org.GetByID(context.Background(), "o1")
	require.NoError(t, err)
	assert.Equal(t, "One", org.Name)
	assert.Equal(t, 2, org.OrgType)
	assert.Equal(t, "eu", org.Additional["region"])
}

func TestOrgDeleteManyEmptyStillSends(t *testing.T) {
	var body []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{"code":0,"msg":"ok","data":true}`))
	}))
	defer srv.Close()

	ok, err := New(srv.URL).Org.DeleteMany(context.Background(), nil)
	require.NoError(t, err)
	assert.True(t, ok)

	// the request went out with an explicit empty list, not a null
	var payload map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.JSONEq(t, `[]`, string(payload["ids"]))
}

func TestOrgDeleteManySurfacesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":40300,"msg":"forbidden","data":null}`))
	}))
	defer srv.Close()

	ok, err := New(srv.URL).Org.DeleteMany(context.Background(), []string{"o1"})
	assert.False(t, ok)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 40300, apiErr.Code)
}

func TestOrgListTreeStaysFlat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/sys/org/tree", r.URL.Path)
		w.Write([]byte(`{"code":0,"msg":"ok","data":[
			{"id":"root","name":"Root","parentId":""},
			{"id":"child","name":"Child","parentId":"root"}]}`))
	}))
	defer srv.Close()

	orgs, err := New(srv.URL).Org.ListTree(context.Background())
	require.NoError(t, err)
	require.Len(t, orgs, 2)
	assert.Equal(t, "root", orgs[1].ParentID)
}
