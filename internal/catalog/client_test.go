package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/storefront/internal/detail/domain"
)

func TestFetchProduct_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/prod-1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(domain.ProductSnapshot{
			ID:     "prod-1",
			Title:  "Ao Thun Basic",
			Price:  100000,
			Stock:  5,
			Images: []string{"img-a", "img-b"},
			Colors: []string{"Red", "Blue"},
			Sizes:  []string{"S", "M", "L"},
			Brand:  domain.Ref{Name: "Basico"},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	snapshot, err := client.FetchProduct(context.Background(), "prod-1")
	require.NoError(t, err)
	assert.Equal(t, "Ao Thun Basic", snapshot.Title)
	assert.Equal(t, int64(100000), snapshot.Price)
	assert.Equal(t, 5, snapshot.Stock)
	assert.Equal(t, "Basico", snapshot.Brand.Name)
}

func TestFetchProduct_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.FetchProduct(context.Background(), "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestFetchProduct_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{not json"))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.FetchProduct(context.Background(), "prod-1")
	require.Error(t, err)
}
