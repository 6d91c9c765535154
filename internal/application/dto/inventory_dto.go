package dto

import (
	"time"

	"github.com/chamador/gestor-inventario/internal/domain/entity"
)

// Formato de fecha de los movimientos en el documento persistido y en los
// reportes. Las fechas viajan siempre como string.
const DateFormat = time.RFC3339

// ──────────────────────────────────────────────────────────────────────────────
// Requests
// ──────────────────────────────────────────────────────────────────────────────

// RegisterCategoryRequest body para POST /api/categorias.
type RegisterCategoryRequest struct {
	ID   string `json:"id"`
	Name string `json:"nombre"`
}

// RegisterSupplierRequest body para POST /api/proveedores.
type RegisterSupplierRequest struct {
	ID      string `json:"id"`
	Name    string `json:"nombre"`
	Contact string `json:"contacto"`
}

// RegisterResponsibleRequest body para POST /api/responsables.
type RegisterResponsibleRequest struct {
	ID   string `json:"id"`
	Name string `json:"nombre"`
	Role string `json:"rol"`
}

// RegisterProductRequest body para POST /api/productos. La categoría y el
// proveedor se resuelven por ID; el stock inicial es siempre 0.
type RegisterProductRequest struct {
	ID         string `json:"id"`
	Name       string `json:"nombre"`
	CategoryID string `json:"categoria_id"`
	SupplierID string `json:"proveedor_id"`
	MinStock   int    `json:"stock_minimo"`
}

// RegisterMovementRequest body para POST /api/inventario/movimientos.
// Motivo solo aplica (y es obligatorio) para tipo Return.
type RegisterMovementRequest struct {
	Type          string `json:"tipo"`
	ProductID     string `json:"producto_id"`
	Quantity      int    `json:"cantidad"`
	ResponsibleID string `json:"responsable_id"`
	Warehouse     string `json:"almacen"`
	Reason        string `json:"motivo,omitempty"`
}

// StockValidationResponse resultado de GET /api/productos/:id/stock.
type StockValidationResponse struct {
	ProductID string `json:"producto_id"`
	StockOK   bool   `json:"stock_ok"`
}

// ──────────────────────────────────────────────────────────────────────────────
// Documentos de entidad (formato de reportes y del archivo persistido)
// ──────────────────────────────────────────────────────────────────────────────

// CategoryDoc documento serializado de una categoría.
type CategoryDoc struct {
	ID   string `json:"id"`
	Name string `json:"nombre"`
}

// SupplierDoc documento serializado de un proveedor.
type SupplierDoc struct {
	ID      string `json:"id"`
	Name    string `json:"nombre"`
	Contact string `json:"contacto"`
}

// ResponsibleDoc documento serializado de un responsable.
type ResponsibleDoc struct {
	ID   string `json:"id"`
	Name string `json:"nombre"`
	Role string `json:"rol"`
}

// ProductDoc documento serializado de un producto. Embebe la categoría y el
// proveedor como sub-objetos completos, no solo sus IDs.
type ProductDoc struct {
	ID       string      `json:"id"`
	Name     string      `json:"nombre"`
	Category CategoryDoc `json:"categoria"`
	Supplier SupplierDoc `json:"proveedor"`
	MinStock int         `json:"stock_minimo"`
	Stock    int         `json:"stock_actual"`
}

// MovementDoc documento serializado de un movimiento. Motivo solo aparece en
// devoluciones.
type MovementDoc struct {
	ID          string         `json:"id"`
	Date        string         `json:"fecha"`
	Product     ProductDoc     `json:"producto"`
	Quantity    int            `json:"cantidad"`
	Responsible ResponsibleDoc `json:"responsable"`
	Warehouse   string         `json:"almacen"`
	Type        string         `json:"tipo"`
	Reason      string         `json:"motivo,omitempty"`
}

// Document forma top-level del archivo de datos: las cinco colecciones del
// gestor.
type Document struct {
	Products     []ProductDoc     `json:"productos"`
	Movements    []MovementDoc    `json:"movimientos"`
	Categories   []CategoryDoc    `json:"categorias"`
	Suppliers    []SupplierDoc    `json:"proveedores"`
	Responsibles []ResponsibleDoc `json:"responsables"`
}

// ──────────────────────────────────────────────────────────────────────────────
// Conversión entidad → documento
// ──────────────────────────────────────────────────────────────────────────────

// NewCategoryDoc serializa una categoría.
func NewCategoryDoc(c *entity.Category) CategoryDoc {
	return CategoryDoc{ID: c.ID, Name: c.Name}
}

// NewSupplierDoc serializa un proveedor.
func NewSupplierDoc(s *entity.Supplier) SupplierDoc {
	return SupplierDoc{ID: s.ID, Name: s.Name, Contact: s.Contact}
}

// NewResponsibleDoc serializa un responsable.
func NewResponsibleDoc(r *entity.Responsible) ResponsibleDoc {
	return ResponsibleDoc{ID: r.ID, Name: r.Name, Role: r.Role}
}

// NewProductDoc serializa un producto con su categoría y proveedor embebidos.
func NewProductDoc(p *entity.Product) ProductDoc {
	return ProductDoc{
		ID:       p.ID,
		Name:     p.Name,
		Category: NewCategoryDoc(p.Category),
		Supplier: NewSupplierDoc(p.Supplier),
		MinStock: p.MinStock,
		Stock:    p.Stock,
	}
}

// NewMovementDoc serializa un movimiento. La fecha se renderiza como string.
func NewMovementDoc(m *entity.Movement) MovementDoc {
	return MovementDoc{
		ID:          m.ID,
		Date:        m.Date.Format(DateFormat),
		Product:     NewProductDoc(m.Product),
		Quantity:    m.Quantity,
		Responsible: NewResponsibleDoc(m.Responsible),
		Warehouse:   m.Warehouse,
		Type:        m.Type,
		Reason:      m.Reason,
	}
}
