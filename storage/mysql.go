package storage

import (
	"errors"

	"github.com/decorhaven/decorhaven-api/mapping"
	"github.com/decorhaven/decorhaven-api/models"
	"gorm.io/gorm"
)

// MySQLStore persists products in the local `products` table. Rows travel
// as column-keyed maps so the mapping table stays the single source of truth
// for column names; array columns are JSON-encoded text on this profile.
type MySQLStore struct {
	db *gorm.DB
}

func NewMySQLStore(db *gorm.DB) *MySQLStore {
	return &MySQLStore{db: db}
}

func (s *MySQLStore) products() *gorm.DB {
	return s.db.Table("products")
}

func (s *MySQLStore) List(term string) ([]models.Product, error) {
	query := s.products()
	if term != "" {
		like := "%" + term + "%"
		query = query.Where("name LIKE ? OR description LIKE ?", like, like)
	}
	return s.findAll(query)
}

func (s *MySQLStore) GetByID(id string) (models.Product, error) {
	var row map[string]any
	err := s.products().Select(mapping.Columns(mapping.ProfileMySQL)).Where("id = ?", id).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Product{}, ErrNotFound
		}
		return models.Product{}, err
	}
	return mapping.FromRow(row, mapping.ProfileMySQL), nil
}

func (s *MySQLStore) Create(p models.Product) (models.Product, error) {
	row := mapping.ToRow(p, mapping.ProfileMySQL, mapping.Create)
	if err := s.products().Create(map[string]any(row)).Error; err != nil {
		return models.Product{}, err
	}
	return mapping.FromRow(row, mapping.ProfileMySQL), nil
}

func (s *MySQLStore) Update(id string, p models.Product) (models.Product, error) {
	row := mapping.ToRow(p, mapping.ProfileMySQL, mapping.Update)
	result := s.products().Where("id = ?", id).Updates(map[string]any(row))
	if result.Error != nil {
		return models.Product{}, result.Error
	}
	// MySQL reports changed rows, not matched rows, so re-submitting the
	// stored values affects nothing. Re-read to tell a missing product
	// from a no-op write.
	return s.GetByID(id)
}

func (s *MySQLStore) Delete(id string) error {
	result := s.db.Exec("DELETE FROM products WHERE id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MySQLStore) ByCategory(category string) ([]models.Product, error) {
	return s.findAll(s.products().Where("category = ?", category))
}

func (s *MySQLStore) Featured() ([]models.Product, error) {
	return s.findAll(s.products().Where("featured = ?", true))
}

func (s *MySQLStore) findAll(query *gorm.DB) ([]models.Product, error) {
	var rows []map[string]any
	if err := query.Select(mapping.Columns(mapping.ProfileMySQL)).Find(&rows).Error; err != nil {
		return nil, err
	}
	products := make([]models.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, mapping.FromRow(row, mapping.ProfileMySQL))
	}
	return products, nil
}
