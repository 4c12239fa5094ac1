package dto

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jhoicas/Repuestos-api/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Nombres de campo como en el JSON de la API.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate aplica las etiquetas validate de un DTO y devuelve un domain.InvalidInputError
// con el primer campo inválido. Lo usan los handlers y la importación fila a fila.
func Validate(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		reason := fe.Tag()
		if fe.Param() != "" {
			reason += "=" + fe.Param()
		}
		_, field, _ := strings.Cut(fe.Namespace(), ".")
		return domain.Invalid(field, "no cumple "+reason)
	}
	return domain.Invalid("", err.Error())
}
