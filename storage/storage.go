// Package storage provides the persistence adapters behind the product
// catalog. Two interchangeable backends exist, never both active for one
// deployment: the local MySQL tables and the hosted backend-as-a-service
// REST API. An in-memory store stands in for the hosted backend when its
// credentials are absent. All three speak the application's Product shape
// and route every row through the mapping package.
package storage

import (
	"errors"
	"log"
	"os"

	"github.com/decorhaven/decorhaven-api/models"
	"gorm.io/gorm"
)

// ErrNotFound is returned when an id-scoped read, update or delete touches
// no row.
var ErrNotFound = errors.New("product not found")

// ProductStore is the single interface the HTTP layer talks to.
type ProductStore interface {
	// List returns all products; a non-empty term filters by substring
	// match on name or description.
	List(term string) ([]models.Product, error)
	GetByID(id string) (models.Product, error)
	Create(p models.Product) (models.Product, error)
	// Update replaces the mutable fields of the product with the given
	// id. The identity and creation timestamp are never touched.
	Update(id string, p models.Product) (models.Product, error)
	Delete(id string) error
	ByCategory(category string) ([]models.Product, error)
	Featured() ([]models.Product, error)
}

// FromEnv selects the adapter for this deployment. STORAGE_ADAPTER is
// "mysql" (default), "hosted" or "memory". A hosted deployment without
// credentials, or a mysql deployment without a database connection,
// degrades to the in-memory store so the storefront still comes up.
func FromEnv(db *gorm.DB) ProductStore {
	switch os.Getenv("STORAGE_ADAPTER") {
	case "hosted":
		baseURL := os.Getenv("HOSTED_BACKEND_URL")
		apiKey := os.Getenv("HOSTED_BACKEND_KEY")
		if baseURL == "" || apiKey == "" {
			log.Println("storage: hosted backend credentials not set, using in-memory store")
			return NewMemoryStore()
		}
		return NewHostedStore(baseURL, apiKey)
	case "memory":
		return NewMemoryStore()
	default:
		if db == nil {
			log.Println("storage: no database connection, using in-memory store")
			return NewMemoryStore()
		}
		return NewMySQLStore(db)
	}
}
