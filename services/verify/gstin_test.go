package verify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGSTLookupSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/gstin/07ABCDE1234F1Z5", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"lgnm":"Sharma Textiles Pvt Ltd","adadr":{"pncd":"122001","loc":"Gurgaon","stcd":"Haryana","bnm":"Plot 4","bno":"12","st":"Udyog Vihar"}}`))
	}))
	defer srv.Close()

	client := NewGSTClient(srv.URL, "test-key")
	info, err := client.Lookup(context.Background(), "07ABCDE1234F1Z5")
	require.NoError(t, err)
	assert.Equal(t, "Sharma Textiles Pvt Ltd", info.Lgnm)
	require.NotNil(t, info.Adadr)
	assert.Equal(t, "122001", info.Adadr.Pncd)
}

func TestGSTLookupNoAddressOnFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"lgnm":"Sharma Textiles Pvt Ltd"}`))
	}))
	defer srv.Close()

	client := NewGSTClient(srv.URL, "")
	info, err := client.Lookup(context.Background(), "07ABCDE1234F1Z5")
	require.NoError(t, err)
	assert.Nil(t, info.Adadr)
}

func TestGSTLookupProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewGSTClient(srv.URL, "test-key")
	_, err := client.Lookup(context.Background(), "07ABCDE1234F1Z5")
	assert.Error(t, err)
}
