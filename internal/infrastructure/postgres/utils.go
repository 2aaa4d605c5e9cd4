package postgres

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/Estoque-api/internal/domain"
)

// Códigos SQLSTATE que el adaptador traduce.
const (
	codeUniqueViolation      = "23505"
	codeForeignKeyViolation  = "23503"
	codeCheckViolation       = "23514"
	codeStringTooLong        = "22001"
	codeNumericOutOfRange    = "22003"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

// Nombre por defecto que PostgreSQL da a la FK stock_movements.created_by.
const fkMovementCreatedBy = "stock_movements_created_by_fkey"

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func constraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	return pgCode(err) == codeUniqueViolation
}

// isForeignKeyViolation verifica si un error es una violación de FK (23503).
func isForeignKeyViolation(err error) bool {
	return pgCode(err) == codeForeignKeyViolation
}

func isCheckViolation(err error) bool {
	return pgCode(err) == codeCheckViolation
}

// outOfRange traduce un valor que no cabe en la columna (22003, 22001) a ErrInvalidInput.
// Devuelve nil para cualquier otro error.
func outOfRange(err error) error {
	switch pgCode(err) {
	case codeNumericOutOfRange, codeStringTooLong:
		return fmt.Errorf("%w: valor fora do limite da coluna", domain.ErrInvalidInput)
	}
	return nil
}

// isRetryable indica conflictos transitorios en los que repetir la transacción completa es seguro.
func isRetryable(err error) bool {
	switch pgCode(err) {
	case codeSerializationFailure, codeDeadlockDetected:
		return true
	}
	return false
}

// isUUID evita mandar a PostgreSQL ids que fallarían con 22P02 en columnas uuid.
func isUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
