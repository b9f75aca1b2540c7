package storage

import (
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/decorhaven/decorhaven-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockMySQLStore(t *testing.T) (*MySQLStore, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      conn,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	return NewMySQLStore(db), mock
}

func TestMySQLStoreUpdateUnchangedRowIsNotNotFound(t *testing.T) {
	store, mock := newMockMySQLStore(t)

	// MySQL reports zero affected rows when the submitted values equal the
	// stored ones; the product still exists and must not turn into a 404.
	mock.ExpectExec("UPDATE `products`").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT (.+) FROM `products`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "category", "price", "stock", "featured"}).
			AddRow("frame-1", "Engraved Oak Photo Frame", "frames", "34.90", 25, 0))

	updated, err := store.Update("frame-1", models.Product{
		Name: "Engraved Oak Photo Frame", Category: "frames", Price: 34.9, Stock: 25,
	})
	require.NoError(t, err)
	assert.Equal(t, "frame-1", updated.ID)
	assert.Equal(t, 34.9, updated.Price)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLStoreUpdateMissingRow(t *testing.T) {
	store, mock := newMockMySQLStore(t)

	mock.ExpectExec("UPDATE `products`").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT (.+) FROM `products`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := store.Update("missing", models.Product{Name: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
