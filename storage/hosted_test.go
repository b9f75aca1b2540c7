package storage

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/decorhaven/decorhaven-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hostedRow is the wire shape the hosted backend serves: snake_case columns,
// native JSON arrays.
var hostedFrameRow = map[string]any{
	"id":                   "frame-1",
	"name":                 "Engraved Oak Photo Frame",
	"description":          "Solid oak frame.",
	"price":                34.9,
	"category":             "frames",
	"stock":                25,
	"image_url":            "https://images.example.com/oak.jpg",
	"discount":             0,
	"featured":             true,
	"description_images":   []string{"d1.jpg"},
	"specification_images": []string{},
	"delivery_images":      []string{},
	"allow_customization":  true,
	"colors":               []string{"natural", "walnut"},
	"created_at":           "2025-03-14T09:30:00Z",
}

func newHostedStub(t *testing.T, handler http.HandlerFunc) (*HostedStore, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHostedStore(srv.URL, "test-key"), srv
}

func TestHostedStoreList(t *testing.T) {
	store, _ := newHostedStub(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/products", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "*", r.URL.Query().Get("select"))
		json.NewEncoder(w).Encode([]map[string]any{hostedFrameRow})
	})

	products, err := store.List("")
	require.NoError(t, err)
	require.Len(t, products, 1)

	p := products[0]
	assert.Equal(t, "frame-1", p.ID)
	assert.Equal(t, "https://images.example.com/oak.jpg", p.ImageURL)
	assert.Equal(t, 34.9, p.Price)
	assert.Equal(t, 25, p.Stock)
	assert.True(t, p.AllowCustomization)
	assert.Equal(t, []string{"natural", "walnut"}, p.Colors)
}

func TestHostedStoreSearchUsesIlikeFilter(t *testing.T) {
	store, _ := newHostedStub(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "(name.ilike.*oak*,description.ilike.*oak*)", r.URL.Query().Get("or"))
		json.NewEncoder(w).Encode([]map[string]any{hostedFrameRow})
	})

	_, err := store.List("oak")
	require.NoError(t, err)
}

func TestHostedStoreGetByID(t *testing.T) {
	store, _ := newHostedStub(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("id") == "eq.frame-1" {
			json.NewEncoder(w).Encode([]map[string]any{hostedFrameRow})
			return
		}
		json.NewEncoder(w).Encode([]map[string]any{})
	})

	p, err := store.GetByID("frame-1")
	require.NoError(t, err)
	assert.Equal(t, "Engraved Oak Photo Frame", p.Name)

	_, err = store.GetByID("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHostedStoreCreateSendsSnakeCaseRow(t *testing.T) {
	var body map[string]any
	store, _ := newHostedStub(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "return=representation", r.Header.Get("Prefer"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		json.NewEncoder(w).Encode([]map[string]any{hostedFrameRow})
	})

	_, err := store.Create(models.Product{Name: "Engraved Oak Photo Frame", Category: "frames", Price: 34.9})
	require.NoError(t, err)

	assert.Contains(t, body, "image_url")
	assert.Contains(t, body, "allow_customization")
	assert.Contains(t, body, "created_at")
	assert.NotEmpty(t, body["id"])
	// Arrays travel natively, not as encoded strings.
	assert.IsType(t, []any{}, body["colors"])
}

func TestHostedStoreUpdate(t *testing.T) {
	var body map[string]any
	store, _ := newHostedStub(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "eq.frame-1", r.URL.Query().Get("id"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		json.NewEncoder(w).Encode([]map[string]any{hostedFrameRow})
	})

	_, err := store.Update("frame-1", models.Product{Name: "Renamed", Category: "frames", Price: 30})
	require.NoError(t, err)

	assert.NotContains(t, body, "id")
	assert.NotContains(t, body, "created_at")
}

func TestHostedStoreUpdateNotFound(t *testing.T) {
	store, _ := newHostedStub(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]any{})
	})

	_, err := store.Update("missing", models.Product{Name: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHostedStoreDelete(t *testing.T) {
	deleted := false
	store, _ := newHostedStub(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		if r.URL.Query().Get("id") == "eq.frame-1" && !deleted {
			deleted = true
			json.NewEncoder(w).Encode([]map[string]any{hostedFrameRow})
			return
		}
		json.NewEncoder(w).Encode([]map[string]any{})
	})

	require.NoError(t, store.Delete("frame-1"))
	assert.ErrorIs(t, store.Delete("frame-1"), ErrNotFound)
}

func TestHostedStoreFilters(t *testing.T) {
	store, _ := newHostedStub(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Query().Get("category") == "eq.frames",
			r.URL.Query().Get("featured") == "is.true":
			json.NewEncoder(w).Encode([]map[string]any{hostedFrameRow})
		default:
			json.NewEncoder(w).Encode([]map[string]any{})
		}
	})

	byCategory, err := store.ByCategory("frames")
	require.NoError(t, err)
	assert.Len(t, byCategory, 1)

	featured, err := store.Featured()
	require.NoError(t, err)
	assert.Len(t, featured, 1)
}

func TestHostedStoreBackendErrorSurfaces(t *testing.T) {
	store, _ := newHostedStub(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"permission denied"}`, http.StatusForbidden)
	})

	_, err := store.List("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}
