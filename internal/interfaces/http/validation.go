package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// parseBody decodifica el JSON y valida los tags `validate`.
func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return errBadBody
	}
	return validateStruct(out)
}

func validateStruct(v any) error {
	err := validatorInstance().Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, describeField(fe))
	}
	return &ValidationError{Fields: fields}
}

func describeField(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + ": obrigatório"
	case "email":
		return field + ": email inválido"
	case "uuid":
		return field + ": identificador inválido"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s: mínimo de %s caracteres", field, fe.Param())
		}
		return fmt.Sprintf("%s: deve ser maior ou igual a %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s: máximo de %s caracteres", field, fe.Param())
		}
		return fmt.Sprintf("%s: deve ser menor ou igual a %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s: deve ser maior que %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s: deve ser um de [%s]", field, fe.Param())
	default:
		return field + ": inválido"
	}
}
