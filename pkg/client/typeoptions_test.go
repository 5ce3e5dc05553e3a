package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeOptionsEndpoints(t *testing.T) {
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.Write([]byte(`{"code":0,"msg":"ok","data":[
			{"code":1,"value":"集团"},{"code":2,"value":"公司"}]}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	opts, err := c.Types.OrgTypeOptions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/api/sys/types/org-type", path)
	require.Len(t, opts, 2)
	assert.Equal(t, "集团", opts[0].Value)

	_, err = c.Types.AppTypeOptions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/api/sys/types/app-type", path)

	_, err = c.Types.UserStatusOptions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/api/sys/types/user-status", path)
}

func TestTypeText(t *testing.T) {
	opts := []TypeOption{
		{Code: 1, Value: "集团"},
		{Code: 2, Value: "公司"},
	}

	assert.Equal(t, "公司", TypeText(2, opts))
	assert.Equal(t, UnknownTypeText, TypeText(99, opts))
	assert.Equal(t, UnknownTypeText, TypeText(1, nil), "empty dictionary resolves nothing")
}
