package storage

import (
	"encoding/json"
	"fmt"

	"github.com/decorhaven/decorhaven-api/mapping"
	"github.com/decorhaven/decorhaven-api/models"
	"github.com/go-resty/resty/v2"
)

// HostedStore talks to the hosted backend-as-a-service `products` table over
// its PostgREST-style API. Array fields travel as native JSON arrays and the
// columns follow the snake_case profile.
type HostedStore struct {
	client *resty.Client
}

func NewHostedStore(baseURL, apiKey string) *HostedStore {
	client := resty.New().
		SetBaseURL(baseURL+"/rest/v1").
		SetHeader("apikey", apiKey).
		SetHeader("Authorization", "Bearer "+apiKey).
		SetHeader("Content-Type", "application/json")
	return &HostedStore{client: client}
}

func (s *HostedStore) List(term string) ([]models.Product, error) {
	req := s.client.R().SetQueryParam("select", "*")
	if term != "" {
		req.SetQueryParam("or", fmt.Sprintf("(name.ilike.*%s*,description.ilike.*%s*)", term, term))
	}
	return s.fetchAll(req)
}

func (s *HostedStore) GetByID(id string) (models.Product, error) {
	req := s.client.R().
		SetQueryParam("select", "*").
		SetQueryParam("id", "eq."+id)
	products, err := s.fetchAll(req)
	if err != nil {
		return models.Product{}, err
	}
	if len(products) == 0 {
		return models.Product{}, ErrNotFound
	}
	return products[0], nil
}

func (s *HostedStore) Create(p models.Product) (models.Product, error) {
	row := mapping.ToRow(p, mapping.ProfileHosted, mapping.Create)
	resp, err := s.client.R().
		SetHeader("Prefer", "return=representation").
		SetBody(row).
		Post("/products")
	if err != nil {
		return models.Product{}, err
	}
	rows, err := decodeRows(resp)
	if err != nil {
		return models.Product{}, err
	}
	if len(rows) == 0 {
		return models.Product{}, fmt.Errorf("hosted backend returned no representation for created product")
	}
	return mapping.FromRow(rows[0], mapping.ProfileHosted), nil
}

func (s *HostedStore) Update(id string, p models.Product) (models.Product, error) {
	row := mapping.ToRow(p, mapping.ProfileHosted, mapping.Update)
	resp, err := s.client.R().
		SetHeader("Prefer", "return=representation").
		SetQueryParam("id", "eq."+id).
		SetBody(row).
		Patch("/products")
	if err != nil {
		return models.Product{}, err
	}
	rows, err := decodeRows(resp)
	if err != nil {
		return models.Product{}, err
	}
	if len(rows) == 0 {
		return models.Product{}, ErrNotFound
	}
	return mapping.FromRow(rows[0], mapping.ProfileHosted), nil
}

func (s *HostedStore) Delete(id string) error {
	resp, err := s.client.R().
		SetHeader("Prefer", "return=representation").
		SetQueryParam("id", "eq."+id).
		Delete("/products")
	if err != nil {
		return err
	}
	rows, err := decodeRows(resp)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *HostedStore) ByCategory(category string) ([]models.Product, error) {
	req := s.client.R().
		SetQueryParam("select", "*").
		SetQueryParam("category", "eq."+category)
	return s.fetchAll(req)
}

func (s *HostedStore) Featured() ([]models.Product, error) {
	req := s.client.R().
		SetQueryParam("select", "*").
		SetQueryParam("featured", "is.true")
	return s.fetchAll(req)
}

func (s *HostedStore) fetchAll(req *resty.Request) ([]models.Product, error) {
	resp, err := req.Get("/products")
	if err != nil {
		return nil, err
	}
	rows, err := decodeRows(resp)
	if err != nil {
		return nil, err
	}
	products := make([]models.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, mapping.FromRow(row, mapping.ProfileHosted))
	}
	return products, nil
}

func decodeRows(resp *resty.Response) ([]mapping.Row, error) {
	if resp.IsError() {
		return nil, fmt.Errorf("hosted backend request failed with status %d: %s", resp.StatusCode(), string(resp.Body()))
	}
	var rows []mapping.Row
	if err := json.Unmarshal(resp.Body(), &rows); err != nil {
		return nil, fmt.Errorf("failed to parse hosted backend response: %w", err)
	}
	return rows, nil
}
