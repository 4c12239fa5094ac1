package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrStorageUnavailable = errors.New("almacenamiento no disponible")
)

// InvalidInputError lleva el detalle de qué campo falló; errors.Is(err, ErrInvalidInput) sigue funcionando.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	if e.Field == "" {
		return ErrInvalidInput.Error() + ": " + e.Reason
	}
	return ErrInvalidInput.Error() + ": " + e.Field + " " + e.Reason
}

func (e *InvalidInputError) Unwrap() error { return ErrInvalidInput }

// Invalid construye un InvalidInputError.
func Invalid(field, reason string) error {
	return &InvalidInputError{Field: field, Reason: reason}
}
