package postgres

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jhoicas/Repuestos-api/internal/domain"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505),
// p.ej. un id de historial repetido.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// isOutOfRange valor numérico fuera del rango de la columna (22003).
func isOutOfRange(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "22003"
}

// isConnectionError detecta fallos de conectividad: la BD no responde, cerró la conexión o rechaza clientes.
func isConnectionError(err error) bool {
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 08xxx connection_exception, 57P0x shutdown, 53300 too_many_connections
		return strings.HasPrefix(pgErr.Code, "08") || strings.HasPrefix(pgErr.Code, "57P0") || pgErr.Code == "53300"
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return strings.Contains(err.Error(), "closed pool") || pgconn.SafeToRetry(err)
}

// wrapErr envuelve el error del driver con la operación y lo clasifica:
// conexión -> ErrStorageUnavailable, 23505 -> ErrDuplicate, 22003 -> ErrInvalidInput.
func wrapErr(op string, err error) error {
	switch {
	case isConnectionError(err):
		return fmt.Errorf("%s: %w: %w", op, domain.ErrStorageUnavailable, err)
	case isUniqueViolation(err):
		return fmt.Errorf("%s: %w: %w", op, domain.ErrDuplicate, err)
	case isOutOfRange(err):
		return fmt.Errorf("%s: %w: %w", op, domain.ErrInvalidInput, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
