package postgres

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Estoque-api/internal/domain"
)

func TestPgErrorClassification(t *testing.T) {
	wrap := func(code string) error {
		return fmt.Errorf("update product: %w", &pgconn.PgError{Code: code})
	}

	assert.True(t, isUniqueViolation(wrap("23505")))
	assert.True(t, isForeignKeyViolation(wrap("23503")))
	assert.True(t, isCheckViolation(wrap("23514")))
	assert.True(t, isRetryable(wrap("40001")))
	assert.True(t, isRetryable(wrap("40P01")))

	assert.False(t, isRetryable(wrap("23505")))
	assert.False(t, isRetryable(errors.New("40001")))
	assert.False(t, isUniqueViolation(errors.New("boom")))
}

func TestOutOfRange(t *testing.T) {
	err := outOfRange(fmt.Errorf("adjust product quantity: %w", &pgconn.PgError{Code: "22003"}))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = outOfRange(&pgconn.PgError{Code: "22001"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.NoError(t, outOfRange(&pgconn.PgError{Code: "23505"}))
	assert.NoError(t, outOfRange(errors.New("boom")))
}

func TestMovementInsertError(t *testing.T) {
	fk := func(constraint string) error {
		return &pgconn.PgError{Code: "23503", ConstraintName: constraint}
	}

	err := movementInsertError(fk("stock_movements_product_id_fkey"))
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	err = movementInsertError(fk(fkMovementCreatedBy))
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.NotErrorIs(t, err, domain.ErrProductNotFound)

	assert.ErrorIs(t, movementInsertError(&pgconn.PgError{Code: "23514"}), domain.ErrInvalidInput)
	assert.ErrorIs(t, movementInsertError(&pgconn.PgError{Code: "22003"}), domain.ErrInvalidInput)

	err = movementInsertError(errors.New("conn reset"))
	assert.NotErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "create stock movement")
}

func TestIsUUID(t *testing.T) {
	assert.True(t, isUUID("4f1c2a9e-7d3b-4c55-9a1e-2b8f6d0c3e71"))
	assert.False(t, isUUID("123"))
	assert.False(t, isUUID(""))
}

func TestSchema_TablasYRestricciones(t *testing.T) {
	s := Schema()
	for _, want := range []string{
		"CREATE TABLE IF NOT EXISTS users",
		"CREATE TABLE IF NOT EXISTS categories",
		"CREATE TABLE IF NOT EXISTS products",
		"CREATE TABLE IF NOT EXISTS stock_movements",
		"CHECK (quantity >= 0)",
		"CHECK (quantity > 0)",
		"CHECK (kind IN ('in', 'out'))",
		"ON DELETE RESTRICT",
	} {
		assert.True(t, strings.Contains(s, want), "schema sin %q", want)
	}
}
