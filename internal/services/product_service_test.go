package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshstack/site-platform/internal/dto"
)

func TestProductListScopedToClient(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewProductService(db)

	clientID := uuid.New()
	productID := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "client_id", "name", "price", "status", "sort_order", "created_at"}).
		AddRow(productID, clientID, "Green Detox", "18.00", "active", 1, time.Now())

	mock.ExpectQuery(`SELECT \* FROM "client_products" WHERE client_id = \$1`).
		WithArgs(clientID).
		WillReturnRows(rows)

	products, err := svc.List(clientID, false)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Green Detox", products[0].Name)
	assert.Equal(t, clientID, products[0].ClientID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductUpdateWrongTenantLooksLikeMissing(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewProductService(db)

	// Product exists under another client; the scoped UPDATE touches no rows.
	mock.ExpectExec(`UPDATE "client_products" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	price := decimal.NewFromInt(20)
	_, err := svc.Update(uuid.New(), uuid.New(), &dto.ProductRequest{Price: &price})
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductDeleteWrongTenantLooksLikeMissing(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewProductService(db)

	mock.ExpectExec(`DELETE FROM "client_products" WHERE id = \$1 AND client_id = \$2`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := svc.Delete(uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductDeleteAffectedRow(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewProductService(db)

	clientID := uuid.New()
	productID := uuid.New()
	mock.ExpectExec(`DELETE FROM "client_products" WHERE id = \$1 AND client_id = \$2`).
		WithArgs(productID, clientID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, svc.Delete(clientID, productID))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductGetNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewProductService(db)

	// First places the inline id condition before the scoped client_id.
	mock.ExpectQuery(`SELECT \* FROM "client_products" WHERE id = \$1 AND client_id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := svc.Get(uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
