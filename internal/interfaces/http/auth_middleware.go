package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Estoque-api/internal/application/auth"
	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/pkg/jwt"
)

// Locals keys para el principal autenticado en Fiber.
const (
	LocalPrincipal = "principal"
	LocalUserID    = "user_id"
	LocalEmail     = "email"
	LocalRole      = "role"
)

// AuthMiddleware valida el Bearer Token JWT y carga el Principal en c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return unauthorized(c, "MISSING_TOKEN", "header Authorization obrigatório")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return unauthorized(c, "INVALID_TOKEN", "formato: Bearer <token>")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return unauthorized(c, "MISSING_TOKEN", "token vazio")
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			if errors.Is(err, jwt.ErrExpiredToken) {
				return unauthorized(c, "TOKEN_EXPIRED", "token expirado")
			}
			return unauthorized(c, "INVALID_TOKEN", "token inválido")
		}
		if claims.Role == "" {
			return unauthorized(c, "MISSING_ROLE", "token sem role")
		}
		principal, err := auth.PrincipalFromClaims(claims)
		if err != nil {
			return unauthorized(c, "INVALID_TOKEN", "token inválido")
		}
		c.Locals(LocalPrincipal, principal)
		c.Locals(LocalUserID, principal.SubjectID)
		c.Locals(LocalEmail, principal.Email)
		c.Locals(LocalRole, string(principal.Role))
		return c.Next()
	}
}

// RequireRole permite el paso sólo a los roles indicados. Debe ir después de AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	allowed := make([]entity.Role, 0, len(roles))
	for _, r := range roles {
		allowed = append(allowed, entity.Role(r))
	}
	return func(c *fiber.Ctx) error {
		p, ok := GetPrincipal(c)
		if !ok {
			return unauthorized(c, "MISSING_TOKEN", "autenticação obrigatória")
		}
		if err := auth.Authorize(p, allowed...); err != nil {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acesso negado para o role " + string(p.Role)})
		}
		return c.Next()
	}
}

// GetPrincipal devuelve el principal cargado por AuthMiddleware.
func GetPrincipal(c *fiber.Ctx) (auth.Principal, bool) {
	p, ok := c.Locals(LocalPrincipal).(auth.Principal)
	return p, ok
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	return localString(c, LocalUserID)
}

// GetEmail devuelve el email del usuario autenticado.
func GetEmail(c *fiber.Ctx) string {
	return localString(c, LocalEmail)
}

// GetRole devuelve el role del usuario autenticado.
func GetRole(c *fiber.Ctx) string {
	return localString(c, LocalRole)
}

func localString(c *fiber.Ctx, key string) string {
	s, _ := c.Locals(key).(string)
	return s
}

func unauthorized(c *fiber.Ctx, code, msg string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: code, Message: msg})
}
