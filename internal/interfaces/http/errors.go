package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/pkg/logger"
)

const internalMessage = "erro interno"

// statusError fuerza el status HTTP de un error de dominio en un endpoint concreto
// (p.ej. producto inexistente en un movimiento es 400, no 404).
type statusError struct {
	status int
	err    error
}

func (e *statusError) Error() string { return e.err.Error() }
func (e *statusError) Unwrap() error { return e.err }

func withStatus(status int, err error) error {
	return &statusError{status: status, err: err}
}

// ValidationError errores de validación del body, uno por campo.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string { return "dados inválidos" }

// errBadBody body no parseable como JSON.
var errBadBody = errors.New("corpo da requisição inválido")

// ErrorHandler traduce errores de dominio a dto.ErrorResponse.
// Con hideInternal, los 500 responden un mensaje genérico.
func ErrorHandler(log *logger.Logger, hideInternal bool) fiber.ErrorHandler {
	if log == nil {
		log = logger.Nop()
	}
	log = log.Component("http")
	return func(c *fiber.Ctx, err error) error {
		status, body := mapError(err)

		var se *statusError
		if errors.As(err, &se) {
			status = se.status
		}

		if status >= fiber.StatusInternalServerError {
			log.Error().Err(err).
				Str("method", c.Method()).
				Str("path", c.Path()).
				Msg("erro interno")
			if hideInternal {
				body.Message = internalMessage
			}
		}
		return c.Status(status).JSON(body)
	}
}

func mapError(err error) (int, dto.ErrorResponse) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "VALIDATION", Message: ve.Error(), Details: ve.Fields}
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code := "HTTP_ERROR"
		switch fe.Code {
		case fiber.StatusNotFound:
			code = "NOT_FOUND"
		case fiber.StatusTooManyRequests:
			code = "TOO_MANY_REQUESTS"
		case fiber.StatusMethodNotAllowed:
			code = "METHOD_NOT_ALLOWED"
		}
		return fe.Code, dto.ErrorResponse{Code: code, Message: fe.Message}
	}

	msg := err.Error()
	switch {
	case errors.Is(err, errBadBody):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "INVALID_BODY", Message: msg}
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "VALIDATION", Message: msg}
	case errors.Is(err, domain.ErrInsufficientStock):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: msg}
	case errors.Is(err, domain.ErrProductNotFound):
		return fiber.StatusNotFound, dto.ErrorResponse{Code: "PRODUCT_NOT_FOUND", Message: msg}
	case errors.Is(err, domain.ErrCategoryNotFound):
		return fiber.StatusNotFound, dto.ErrorResponse{Code: "CATEGORY_NOT_FOUND", Message: msg}
	case domain.IsNotFound(err):
		return fiber.StatusNotFound, dto.ErrorResponse{Code: "NOT_FOUND", Message: msg}
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return fiber.StatusConflict, dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: msg}
	case errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusConflict, dto.ErrorResponse{Code: "DUPLICATE", Message: msg}
	case errors.Is(err, domain.ErrProductHasMovements):
		return fiber.StatusConflict, dto.ErrorResponse{Code: "PRODUCT_HAS_MOVEMENTS", Message: msg}
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict, dto.ErrorResponse{Code: "CONFLICT", Message: msg}
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, dto.ErrorResponse{Code: "UNAUTHORIZED", Message: msg}
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, dto.ErrorResponse{Code: "FORBIDDEN", Message: msg}
	default:
		return fiber.StatusInternalServerError, dto.ErrorResponse{Code: "INTERNAL", Message: msg}
	}
}

// NotFound responde 404 JSON para rutas no registradas.
func NotFound(c *fiber.Ctx) error {
	return fiber.NewError(fiber.StatusNotFound, "rota não encontrada: "+c.Method()+" "+c.Path())
}
