package postgres

import (
	"context"
	_ "embed"
	"fmt"
)

//go:embed schema.sql
var schemaSQL string

// Schema devuelve el DDL embebido.
func Schema() string { return schemaSQL }

// Migrate aplica schema.sql. Todas las sentencias son IF NOT EXISTS, así que es seguro repetirlo.
func Migrate(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("aplicar schema: %w", err)
	}
	return nil
}
