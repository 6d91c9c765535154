package jsonstore_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chamador/gestor-inventario/internal/application/dto"
	"github.com/chamador/gestor-inventario/internal/application/inventory"
	"github.com/chamador/gestor-inventario/internal/domain/entity"
	"github.com/chamador/gestor-inventario/internal/infrastructure/jsonstore"
	"github.com/chamador/gestor-inventario/pkg/logger"
)

func newStore(t *testing.T) *jsonstore.Store {
	t.Helper()
	return jsonstore.New(filepath.Join(t.TempDir(), "inventario.json"), logger.Nop())
}

// newGestorConDatos arma un gestor con catálogo, dos productos y dos
// movimientos ejecutados.
func newGestorConDatos(t *testing.T) *inventory.Gestor {
	t.Helper()
	g := inventory.NewGestor()
	g.RegisterCategory("CAT001", "Electrónicos")
	g.RegisterSupplier("PROV001", "TecnoSum", "contacto@tecnosum.com")
	g.RegisterResponsible("RESP001", "Christofer Amador", entity.RoleAdministrador)

	_, err := g.RegisterProduct("PROD001", "Laptop", "CAT001", "PROV001", 5)
	require.NoError(t, err)
	_, err = g.RegisterProduct("PROD002", "Mouse", "CAT001", "PROV001", 2)
	require.NoError(t, err)

	_, err = g.RegisterMovement(entity.MovementTypeInbound, "PROD001", 10, "RESP001", "Principal", "")
	require.NoError(t, err)
	_, err = g.RegisterMovement(entity.MovementTypeReturn, "PROD001", 2, "RESP001", "Principal", "garantía")
	require.NoError(t, err)
	return g
}

func TestSaveLoad_RestauraEntidadesPeroNoMovimientos(t *testing.T) {
	store := newStore(t)
	g := newGestorConDatos(t)
	require.NoError(t, store.Save(g))

	restored := inventory.NewGestor()
	store.Load(restored)

	// Categorías, proveedores, responsables y productos idénticos campo a campo
	want := g.Snapshot()
	got := restored.Snapshot()
	assert.Equal(t, want.Categories, got.Categories)
	assert.Equal(t, want.Suppliers, got.Suppliers)
	assert.Equal(t, want.Responsibles, got.Responsibles)
	assert.Equal(t, want.Products, got.Products)

	// Brecha conocida del diseño actual: el historial de movimientos se
	// guarda pero no se restaura. Este test fija ese comportamiento.
	assert.Len(t, want.Movements, 2)
	assert.Empty(t, got.Movements)

	// Tras la recarga, los IDs de movimiento arrancan de nuevo en MOV001
	msg, err := restored.RegisterMovement(entity.MovementTypeOutbound, "PROD001", 1, "RESP001", "Principal", "")
	require.NoError(t, err)
	assert.Equal(t, "Outbound of 1 units of Laptop", msg)
	items, err := restored.GenerateReport(inventory.ReportMovements)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "MOV001", items[0].(dto.MovementDoc).ID)
}

func TestLoad_ReenlazaReferenciasPorID(t *testing.T) {
	store := newStore(t)
	g := newGestorConDatos(t)
	require.NoError(t, store.Save(g))

	restored := inventory.NewGestor()
	store.Load(restored)

	p1 := restored.FindProduct("PROD001")
	p2 := restored.FindProduct("PROD002")
	require.NotNil(t, p1)
	require.NotNil(t, p2)
	assert.Same(t, p1.Category, p2.Category, "ambos productos apuntan a la misma categoría reconstruida")
	assert.Same(t, p1.Supplier, p2.Supplier)
	assert.Equal(t, 12, p1.Stock, "el stock persistido (10 entrada + 2 devolución) sobrevive la recarga")
}

func TestSave_FormaDelDocumento(t *testing.T) {
	store := newStore(t)
	g := newGestorConDatos(t)
	require.NoError(t, store.Save(g))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	for _, key := range []string{"productos", "movimientos", "categorias", "proveedores", "responsables"} {
		assert.Contains(t, doc, key)
	}

	var movs []map[string]any
	require.NoError(t, json.Unmarshal(doc["movimientos"], &movs))
	require.Len(t, movs, 2)

	inbound, ret := movs[0], movs[1]
	assert.Equal(t, "Inbound", inbound["tipo"])
	assert.NotContains(t, inbound, "motivo", "motivo solo aparece en devoluciones")
	assert.Equal(t, "Return", ret["tipo"])
	assert.Equal(t, "garantía", ret["motivo"])

	_, isString := inbound["fecha"].(string)
	assert.True(t, isString, "la fecha se serializa como string")
	assert.Equal(t, float64(10), inbound["cantidad"], "cantidad numérica entera")

	producto, ok := inbound["producto"].(map[string]any)
	require.True(t, ok, "el producto va embebido como sub-objeto completo")
	assert.Equal(t, "Laptop", producto["nombre"])
}

func TestLoad_ArchivoInexistenteConservaEstado(t *testing.T) {
	store := jsonstore.New(filepath.Join(t.TempDir(), "no-existe.json"), logger.Nop())
	g := inventory.NewGestor()
	g.SeedExampleData()

	store.Load(g)

	assert.NotNil(t, g.FindProduct("PROD001"), "sin archivo, los datos de ejemplo quedan intactos")
}

func TestLoad_ArchivoCorruptoConservaEstado(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventario.json")
	require.NoError(t, os.WriteFile(path, []byte("esto no es json {"), 0o644))

	g := inventory.NewGestor()
	g.SeedExampleData()

	jsonstore.New(path, logger.Nop()).Load(g)

	assert.NotNil(t, g.FindProduct("PROD001"))
	assert.NotNil(t, g.FindProduct("PROD002"))
}

func TestLoad_DescartaProductoConReferenciaRota(t *testing.T) {
	doc := dto.Document{
		Categories:   []dto.CategoryDoc{{ID: "CAT001", Name: "Electrónicos"}},
		Suppliers:    []dto.SupplierDoc{{ID: "PROV001", Name: "TecnoSum", Contact: "x@y.com"}},
		Responsibles: []dto.ResponsibleDoc{{ID: "RESP001", Name: "Ana", Role: entity.RoleSupervisor}},
		Products: []dto.ProductDoc{
			{
				ID: "PROD001", Name: "Laptop",
				Category: dto.CategoryDoc{ID: "CAT001", Name: "Electrónicos"},
				Supplier: dto.SupplierDoc{ID: "PROV001", Name: "TecnoSum", Contact: "x@y.com"},
				MinStock: 5, Stock: 10,
			},
			{
				ID: "PROD002", Name: "Huérfano",
				Category: dto.CategoryDoc{ID: "CAT999", Name: "Desconocida"},
				Supplier: dto.SupplierDoc{ID: "PROV001", Name: "TecnoSum", Contact: "x@y.com"},
				MinStock: 1, Stock: 1,
			},
		},
	}
	data, err := json.Marshal(doc)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "inventario.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	g := inventory.NewGestor()
	jsonstore.New(path, logger.Nop()).Load(g)

	assert.NotNil(t, g.FindProduct("PROD001"))
	assert.Nil(t, g.FindProduct("PROD002"), "producto con categoría irresoluble se descarta en silencio")
}
