package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chamador/gestor-inventario/internal/domain"
	"github.com/chamador/gestor-inventario/internal/domain/entity"
)

func laptop(stock int) *entity.Product {
	return &entity.Product{
		ID:       "PROD001",
		Name:     "Laptop",
		Category: &entity.Category{ID: "CAT001", Name: "Electrónicos"},
		Supplier: &entity.Supplier{ID: "PROV001", Name: "TecnoSum", Contact: "contacto@tecnosum.com"},
		MinStock: 5,
		Stock:    stock,
	}
}

func responsible() *entity.Responsible {
	return &entity.Responsible{ID: "RESP001", Name: "Christofer Amador", Role: entity.RoleAdministrador}
}

func TestProducto_UpdateStockSinValidacion(t *testing.T) {
	p := laptop(10)

	// UpdateStock no valida ni recorta: solo aplica el delta
	assert.Equal(t, 15, p.UpdateStock(5))
	assert.Equal(t, -5, p.UpdateStock(-20))
	assert.Equal(t, -5, p.Stock)
}

func TestMovimientoInbound_SumaStockYConfirma(t *testing.T) {
	p := laptop(0)
	m := entity.NewInbound("MOV001", p, 10, responsible(), "Principal")

	msg, err := m.Execute()
	require.NoError(t, err)

	assert.Equal(t, "Inbound of 10 units of Laptop", msg)
	assert.Equal(t, 10, p.Stock)
	assert.Equal(t, entity.MovementTypeInbound, m.Type)
	assert.False(t, m.Date.IsZero(), "la fecha se captura al construir el movimiento")
}

func TestMovimientoOutbound_DescuentaStock(t *testing.T) {
	p := laptop(10)
	m := entity.NewOutbound("MOV001", p, 4, responsible(), "Principal")

	msg, err := m.Execute()
	require.NoError(t, err)

	assert.Equal(t, "Outbound of 4 units of Laptop", msg)
	assert.Equal(t, 6, p.Stock)
}

func TestMovimientoOutbound_StockInsuficienteNoMuta(t *testing.T) {
	p := laptop(10)
	m := entity.NewOutbound("MOV001", p, 999, responsible(), "Principal")

	_, err := m.Execute()

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 10, p.Stock, "una salida fallida no debe tocar el stock")
}

func TestMovimientoReturn_RequiereMotivo(t *testing.T) {
	p := laptop(10)

	_, err := entity.NewReturn("MOV001", p, 5, responsible(), "Principal", "")
	assert.ErrorIs(t, err, domain.ErrReasonRequired)
	assert.Equal(t, 10, p.Stock, "el fallo ocurre antes de tocar estado alguno")
}

func TestMovimientoReturn_SumaStockEIncluyeMotivo(t *testing.T) {
	p := laptop(10)
	m, err := entity.NewReturn("MOV001", p, 5, responsible(), "Principal", "defective")
	require.NoError(t, err)

	msg, err := m.Execute()
	require.NoError(t, err)

	assert.Equal(t, "Return of 5 units of Laptop. Reason: defective", msg)
	assert.Equal(t, 15, p.Stock)
}

func TestMovimiento_TipoDesconocidoFalla(t *testing.T) {
	m := &entity.Movement{ID: "MOV001", Product: laptop(10), Quantity: 1, Type: "Ajuste"}

	_, err := m.Execute()
	assert.ErrorIs(t, err, domain.ErrInvalidMovementType)
}
