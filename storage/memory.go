package storage

import (
	"strings"
	"sync"

	"github.com/decorhaven/decorhaven-api/mapping"
	"github.com/decorhaven/decorhaven-api/models"
)

// MemoryStore is the mock used when the hosted backend is unconfigured. It
// behaves like the hosted adapter (snake_case profile, same normalization)
// but keeps everything in process memory, seeded with a small demo catalog.
type MemoryStore struct {
	mu       sync.Mutex
	products []models.Product
}

func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{}
	for _, p := range seedProducts() {
		s.products = append(s.products, normalize(p))
	}
	return s
}

// normalize pushes the product through the same outbound/inbound mapping the
// hosted adapter uses, so ids get generated, timestamps stamped and array
// fields defaulted exactly as they would against the real backend.
func normalize(p models.Product) models.Product {
	return mapping.FromRow(mapping.ToRow(p, mapping.ProfileHosted, mapping.Create), mapping.ProfileHosted)
}

func (s *MemoryStore) List(term string) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if term == "" {
		return append([]models.Product{}, s.products...), nil
	}
	needle := strings.ToLower(term)
	var out []models.Product
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Description), needle) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *MemoryStore) GetByID(id string) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrNotFound
}

func (s *MemoryStore) Create(p models.Product) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	created := normalize(p)
	s.products = append(s.products, created)
	return created, nil
}

func (s *MemoryStore) Update(id string, p models.Product) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.products {
		if existing.ID == id {
			p.ID = existing.ID
			p.CreatedAt = existing.CreatedAt
			updated := normalize(p)
			s.products[i] = updated
			return updated, nil
		}
	}
	return models.Product{}, ErrNotFound
}

func (s *MemoryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.products {
		if p.ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) ByCategory(category string) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Product
	for _, p := range s.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *MemoryStore) Featured() ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Product
	for _, p := range s.products {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out, nil
}

func seedProducts() []models.Product {
	return []models.Product{
		{
			Name:               "Engraved Oak Photo Frame",
			Description:        "Solid oak frame with laser-engraved personalization.",
			Price:              34.90,
			Category:           "frames",
			Stock:              25,
			ImageURL:           "https://images.decorhaven.store/frames/oak-frame.jpg",
			Featured:           true,
			AllowCustomization: true,
			Colors:             []string{"natural", "walnut", "black"},
		},
		{
			Name:        "Ceramic Vase Set",
			Description: "Set of three hand-glazed ceramic vases.",
			Price:       49.00,
			Category:    "vases",
			Stock:       12,
			ImageURL:    "https://images.decorhaven.store/vases/ceramic-set.jpg",
			Discount:    10,
		},
		{
			Name:               "Personalized Star Map",
			Description:        "Night-sky print for a date and place of your choosing.",
			Price:              24.50,
			Category:           "prints",
			Stock:              40,
			ImageURL:           "https://images.decorhaven.store/prints/star-map.jpg",
			Featured:           true,
			AllowCustomization: true,
		},
	}
}
