package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso não encontrado")
	ErrProductNotFound     = errors.New("produto não encontrado")
	ErrCategoryNotFound    = errors.New("categoria não encontrada")
	ErrUserNotFound        = errors.New("usuário não encontrado")
	ErrEmailAlreadyExists  = errors.New("email já cadastrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrUnauthorized        = errors.New("não autorizado")
	ErrForbidden           = errors.New("acesso negado")
	ErrConflict            = errors.New("conflito com o estado atual")
	ErrInsufficientStock   = errors.New("quantidade insuficiente em estoque")
	ErrProductHasMovements = errors.New("produto possui movimentos registrados")
)

// IsNotFound agrupa los distintos "no encontrado" del dominio.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrProductNotFound) ||
		errors.Is(err, ErrCategoryNotFound) ||
		errors.Is(err, ErrUserNotFound)
}
