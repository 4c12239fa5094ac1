package inventory

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Repuestos-api/internal/domain"
	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
)

// Reglas del historial de cantidades (servicio de dominio, sin I/O).

// ClassifyChange deriva el tipo de acción: ADDITION si newQty >= prevQty, WITHDRAWAL si baja.
// Igualdad cuenta como ADDITION (comportamiento heredado, cubierto por test).
func ClassifyChange(prevQty, newQty int) string {
	if newQty < prevQty {
		return entity.ActionTypeWithdrawal
	}
	return entity.ActionTypeAddition
}

// LedgerDefaults valores usados cuando el llamador no informa actor o comentario.
type LedgerDefaults struct {
	Actor         string // "System"
	Comment       string // "Ingen kommentar"
	CreatorPrefix string // "Användare "
}

// DefaultLedgerDefaults valores de fábrica (sobrescribibles vía config).
func DefaultLedgerDefaults() LedgerDefaults {
	return LedgerDefaults{Actor: "System", Comment: "Ingen kommentar", CreatorPrefix: "Användare "}
}

// ActorOr devuelve performedBy o el actor por defecto si viene vacío.
func (d LedgerDefaults) ActorOr(performedBy string) string {
	if s := strings.TrimSpace(performedBy); s != "" {
		return s
	}
	return d.Actor
}

// CommentOr devuelve el comentario o el texto por defecto si viene vacío.
func (d LedgerDefaults) CommentOr(comment string) string {
	if s := strings.TrimSpace(comment); s != "" {
		return s
	}
	return d.Comment
}

// CreatorActor actor de la entrada sintética de alta: "<prefijo><addedBy>" o el actor por defecto.
func (d LedgerDefaults) CreatorActor(addedBy string) string {
	if s := strings.TrimSpace(addedBy); s != "" {
		return d.CreatorPrefix + s
	}
	return d.Actor
}

// NewHistoryEntry arma la entrada del historial para un cambio prev -> new.
// Quantity replica la cantidad anterior.
func NewHistoryEntry(partNumber string, prevQty, newQty int, performedBy, comment string, now time.Time) *entity.PartHistory {
	return &entity.PartHistory{
		ID:               uuid.New().String(),
		PartNumber:       partNumber,
		ActionType:       ClassifyChange(prevQty, newQty),
		Quantity:         prevQty,
		PreviousQuantity: prevQty,
		NewQuantity:      newQty,
		PerformedBy:      performedBy,
		Comment:          comment,
		CreatedAt:        now,
	}
}

// ClampWithdrawal cantidad resultante de retirar amount unidades, nunca negativa.
func ClampWithdrawal(current, amount int) int {
	if amount >= current {
		return 0
	}
	return current - amount
}

// ValidateQuantity rechaza cantidades negativas o mayores que entity.MaxQuantity.
func ValidateQuantity(qty int) error {
	if qty < 0 {
		return domain.Invalid("quantity", "no puede ser negativa")
	}
	if qty > entity.MaxQuantity {
		return domain.Invalid("quantity", fmt.Sprintf("no puede superar %d", entity.MaxQuantity))
	}
	return nil
}
