package entity

import (
	"fmt"
	"time"

	"github.com/chamador/gestor-inventario/internal/domain"
)

// Tipos de movimiento de inventario.
const (
	MovementTypeInbound  = "Inbound"  // entrada
	MovementTypeOutbound = "Outbound" // salida
	MovementTypeReturn   = "Return"   // devolución
)

// Movement representa un movimiento de inventario como unión etiquetada por
// Type (Inbound | Outbound | Return). Product y Responsible son referencias a
// las colecciones del gestor. Reason solo aplica a devoluciones.
type Movement struct {
	ID          string
	Date        time.Time
	Product     *Product
	Quantity    int
	Responsible *Responsible
	Warehouse   string
	Type        string
	Reason      string
}

// NewInbound construye una entrada de inventario.
func NewInbound(id string, product *Product, quantity int, responsible *Responsible, warehouse string) *Movement {
	return &Movement{
		ID:          id,
		Date:        time.Now(),
		Product:     product,
		Quantity:    quantity,
		Responsible: responsible,
		Warehouse:   warehouse,
		Type:        MovementTypeInbound,
	}
}

// NewOutbound construye una salida de inventario.
func NewOutbound(id string, product *Product, quantity int, responsible *Responsible, warehouse string) *Movement {
	return &Movement{
		ID:          id,
		Date:        time.Now(),
		Product:     product,
		Quantity:    quantity,
		Responsible: responsible,
		Warehouse:   warehouse,
		Type:        MovementTypeOutbound,
	}
}

// NewReturn construye una devolución. El motivo es obligatorio; si falta
// retorna ErrReasonRequired sin tocar ningún estado.
func NewReturn(id string, product *Product, quantity int, responsible *Responsible, warehouse, reason string) (*Movement, error) {
	if reason == "" {
		return nil, domain.ErrReasonRequired
	}
	return &Movement{
		ID:          id,
		Date:        time.Now(),
		Product:     product,
		Quantity:    quantity,
		Responsible: responsible,
		Warehouse:   warehouse,
		Type:        MovementTypeReturn,
		Reason:      reason,
	}, nil
}

// Execute aplica el movimiento sobre el stock del producto y devuelve el
// mensaje de confirmación. Una salida con stock insuficiente falla con
// ErrInsufficientStock y no muta nada.
func (m *Movement) Execute() (string, error) {
	switch m.Type {
	case MovementTypeInbound:
		m.Product.UpdateStock(m.Quantity)
		return fmt.Sprintf("Inbound of %d units of %s", m.Quantity, m.Product.Name), nil
	case MovementTypeOutbound:
		if m.Product.Stock < m.Quantity {
			return "", domain.ErrInsufficientStock
		}
		m.Product.UpdateStock(-m.Quantity)
		return fmt.Sprintf("Outbound of %d units of %s", m.Quantity, m.Product.Name), nil
	case MovementTypeReturn:
		m.Product.UpdateStock(m.Quantity)
		return fmt.Sprintf("Return of %d units of %s. Reason: %s", m.Quantity, m.Product.Name, m.Reason), nil
	}
	return "", domain.ErrInvalidMovementType
}
