package verify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPincodeLookupSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pincode/122001", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"Status":"Success","PostOffice":[{"State":"Haryana","District":"Gurgaon"}]}]`))
	}))
	defer srv.Close()

	client := NewPincodeClient(srv.URL)
	location, err := client.Lookup(context.Background(), "122001")
	require.NoError(t, err)
	assert.Equal(t, "Gurgaon", location.City)
	assert.Equal(t, "Haryana", location.State)
}

func TestPincodeLookupErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"Status":"Error","PostOffice":null}]`))
	}))
	defer srv.Close()

	client := NewPincodeClient(srv.URL)
	_, err := client.Lookup(context.Background(), "000000")
	assert.ErrorIs(t, err, ErrInvalidPincode)
}

func TestPincodeLookupEmptyPostOffices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"Status":"Success","PostOffice":[]}]`))
	}))
	defer srv.Close()

	client := NewPincodeClient(srv.URL)
	_, err := client.Lookup(context.Background(), "122001")
	assert.ErrorIs(t, err, ErrInvalidPincode)
}

func TestPincodeLookupProviderDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewPincodeClient(srv.URL)
	_, err := client.Lookup(context.Background(), "122001")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidPincode)
}
