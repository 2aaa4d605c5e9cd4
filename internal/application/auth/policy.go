package auth

import (
	"fmt"

	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/pkg/jwt"
)

// Principal credencial validada: quién hace la petición y con qué rol.
type Principal struct {
	SubjectID string
	Email     string
	Role      entity.Role
}

// PrincipalFromClaims convierte los claims de un token ya validado.
// Un rol fuera del conjunto conocido invalida el token.
func PrincipalFromClaims(c *jwt.Claims) (Principal, error) {
	if c == nil || c.UserID == "" {
		return Principal{}, fmt.Errorf("%w: token sem usuário", domain.ErrUnauthorized)
	}
	if c.Role == "" {
		return Principal{}, fmt.Errorf("%w: token sem role", domain.ErrUnauthorized)
	}
	role, err := entity.ParseRole(c.Role)
	if err != nil {
		return Principal{}, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	return Principal{SubjectID: c.UserID, Email: c.Email, Role: role}, nil
}

// Authorize devuelve ErrForbidden si el rol del principal no está entre los permitidos.
// Sin roles permitidos, cualquier principal autenticado pasa.
func Authorize(p Principal, allowed ...entity.Role) error {
	if len(allowed) == 0 {
		return nil
	}
	for _, r := range allowed {
		if p.Role == r {
			return nil
		}
	}
	return domain.ErrForbidden
}
