package inventory

import (
	"fmt"

	"github.com/chamador/gestor-inventario/internal/application/dto"
	"github.com/chamador/gestor-inventario/internal/domain"
	"github.com/chamador/gestor-inventario/internal/domain/entity"
)

// Tipos de reporte soportados por GenerateReport.
const (
	ReportProducts  = "products"
	ReportMovements = "movements"
	ReportLowStock  = "low_stock"
)

// Gestor es el agregado de inventario: mantiene las cinco colecciones en
// memoria (orden de registro preservado) y ejecuta los movimientos de stock.
// No es seguro para uso concurrente: el diseño asume una sola sesión activa.
type Gestor struct {
	products     []*entity.Product
	movements    []*entity.Movement
	categories   []*entity.Category
	suppliers    []*entity.Supplier
	responsibles []*entity.Responsible

	// Contador propio del gestor para los IDs MOV%03d. Solo avanza cuando la
	// ejecución del movimiento tiene éxito, así los IDs observados son siempre
	// MOV001, MOV002, ... sin huecos.
	movSeq int
}

// NewGestor crea un gestor vacío.
func NewGestor() *Gestor {
	return &Gestor{}
}

// SeedExampleData carga el juego de datos de ejemplo con el que arranca la
// aplicación cuando no existe archivo de datos.
func (g *Gestor) SeedExampleData() {
	cat1 := &entity.Category{ID: "CAT001", Name: "Electrónicos"}
	cat2 := &entity.Category{ID: "CAT002", Name: "Ropa"}
	g.categories = append(g.categories, cat1, cat2)

	prov1 := &entity.Supplier{ID: "PROV001", Name: "TecnoSum", Contact: "contacto@tecnosum.com"}
	prov2 := &entity.Supplier{ID: "PROV002", Name: "Textiles S.A.", Contact: "ventas@textiles.com"}
	g.suppliers = append(g.suppliers, prov1, prov2)

	resp1 := &entity.Responsible{ID: "RESP001", Name: "Christofer Amador", Role: entity.RoleAdministrador}
	resp2 := &entity.Responsible{ID: "RESP002", Name: "David Lara", Role: entity.RoleSupervisor}
	g.responsibles = append(g.responsibles, resp1, resp2)

	g.products = append(g.products,
		&entity.Product{ID: "PROD001", Name: "Laptop", Category: cat1, Supplier: prov1, MinStock: 5, Stock: 10},
		&entity.Product{ID: "PROD002", Name: "Camiseta", Category: cat2, Supplier: prov2, MinStock: 20, Stock: 50},
	)
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro de entidades
// ──────────────────────────────────────────────────────────────────────────────

// RegisterCategory registra una categoría.
func (g *Gestor) RegisterCategory(id, name string) *entity.Category {
	c := &entity.Category{ID: id, Name: name}
	g.categories = append(g.categories, c)
	return c
}

// RegisterSupplier registra un proveedor.
func (g *Gestor) RegisterSupplier(id, name, contact string) *entity.Supplier {
	s := &entity.Supplier{ID: id, Name: name, Contact: contact}
	g.suppliers = append(g.suppliers, s)
	return s
}

// RegisterResponsible registra un responsable.
func (g *Gestor) RegisterResponsible(id, name, role string) *entity.Responsible {
	r := &entity.Responsible{ID: id, Name: name, Role: role}
	g.responsibles = append(g.responsibles, r)
	return r
}

// RegisterProduct registra un producto resolviendo categoría y proveedor por
// ID; falla con ErrNotFound si alguno no existe. El stock inicial es 0.
// No se valida ID duplicado (comportamiento heredado del sistema original).
func (g *Gestor) RegisterProduct(id, name, categoryID, supplierID string, minStock int) (*entity.Product, error) {
	category := g.findCategory(categoryID)
	supplier := g.findSupplier(supplierID)
	if category == nil || supplier == nil {
		return nil, domain.ErrNotFound
	}
	p := &entity.Product{
		ID:       id,
		Name:     name,
		Category: category,
		Supplier: supplier,
		MinStock: minStock,
	}
	g.products = append(g.products, p)
	return p, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Consultas
// ──────────────────────────────────────────────────────────────────────────────

// FindProduct devuelve la primera coincidencia por ID, o nil si no existe.
func (g *Gestor) FindProduct(id string) *entity.Product {
	for _, p := range g.products {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (g *Gestor) findCategory(id string) *entity.Category {
	for _, c := range g.categories {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func (g *Gestor) findSupplier(id string) *entity.Supplier {
	for _, s := range g.suppliers {
		if s.ID == id {
			return s
		}
	}
	return nil
}

func (g *Gestor) findResponsible(id string) *entity.Responsible {
	for _, r := range g.responsibles {
		if r.ID == id {
			return r
		}
	}
	return nil
}

// ValidateStock indica si el stock actual del producto cubre su mínimo.
// Falla con ErrNotFound si el producto no existe.
func (g *Gestor) ValidateStock(productID string) (bool, error) {
	p := g.FindProduct(productID)
	if p == nil {
		return false, domain.ErrNotFound
	}
	return p.Stock >= p.MinStock, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Movimientos
// ──────────────────────────────────────────────────────────────────────────────

// RegisterMovement resuelve producto y responsable, construye el movimiento
// del tipo indicado con el siguiente ID secuencial y lo ejecuta. El movimiento
// se agrega al historial solo si la ejecución tuvo éxito; un fallo (por
// ejemplo stock insuficiente) se propaga y no consume ID.
func (g *Gestor) RegisterMovement(movType, productID string, quantity int, responsibleID, warehouse, reason string) (string, error) {
	product := g.FindProduct(productID)
	responsible := g.findResponsible(responsibleID)
	if product == nil || responsible == nil {
		return "", domain.ErrNotFound
	}

	id := fmt.Sprintf("MOV%03d", g.movSeq+1)

	var movement *entity.Movement
	switch movType {
	case entity.MovementTypeInbound:
		movement = entity.NewInbound(id, product, quantity, responsible, warehouse)
	case entity.MovementTypeOutbound:
		movement = entity.NewOutbound(id, product, quantity, responsible, warehouse)
	case entity.MovementTypeReturn:
		m, err := entity.NewReturn(id, product, quantity, responsible, warehouse, reason)
		if err != nil {
			return "", err
		}
		movement = m
	default:
		return "", domain.ErrInvalidMovementType
	}

	result, err := movement.Execute()
	if err != nil {
		return "", err
	}
	g.movSeq++
	g.movements = append(g.movements, movement)
	return result, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Reportes
// ──────────────────────────────────────────────────────────────────────────────

// GenerateReport devuelve las entidades serializadas del reporte pedido, en
// orden de registro. Tipos válidos: products, movements, low_stock.
func (g *Gestor) GenerateReport(kind string) ([]any, error) {
	switch kind {
	case ReportProducts:
		items := make([]any, 0, len(g.products))
		for _, p := range g.products {
			items = append(items, dto.NewProductDoc(p))
		}
		return items, nil
	case ReportMovements:
		items := make([]any, 0, len(g.movements))
		for _, m := range g.movements {
			items = append(items, dto.NewMovementDoc(m))
		}
		return items, nil
	case ReportLowStock:
		items := make([]any, 0)
		for _, p := range g.products {
			if p.Stock < p.MinStock {
				items = append(items, dto.NewProductDoc(p))
			}
		}
		return items, nil
	}
	return nil, domain.ErrInvalidReportType
}

// ──────────────────────────────────────────────────────────────────────────────
// Persistencia (snapshot / restore del estado completo)
// ──────────────────────────────────────────────────────────────────────────────

// Snapshot serializa las cinco colecciones al documento persistible.
func (g *Gestor) Snapshot() dto.Document {
	doc := dto.Document{
		Products:     make([]dto.ProductDoc, 0, len(g.products)),
		Movements:    make([]dto.MovementDoc, 0, len(g.movements)),
		Categories:   make([]dto.CategoryDoc, 0, len(g.categories)),
		Suppliers:    make([]dto.SupplierDoc, 0, len(g.suppliers)),
		Responsibles: make([]dto.ResponsibleDoc, 0, len(g.responsibles)),
	}
	for _, p := range g.products {
		doc.Products = append(doc.Products, dto.NewProductDoc(p))
	}
	for _, m := range g.movements {
		doc.Movements = append(doc.Movements, dto.NewMovementDoc(m))
	}
	for _, c := range g.categories {
		doc.Categories = append(doc.Categories, dto.NewCategoryDoc(c))
	}
	for _, s := range g.suppliers {
		doc.Suppliers = append(doc.Suppliers, dto.NewSupplierDoc(s))
	}
	for _, r := range g.responsibles {
		doc.Responsibles = append(doc.Responsibles, dto.NewResponsibleDoc(r))
	}
	return doc
}

// Restore reemplaza el estado completo del gestor con el contenido del
// documento. Primero reconstruye categorías, proveedores y responsables (sin
// referencias cruzadas) y después los productos, re-enlazando categoría y
// proveedor por ID; un producto cuya referencia no resuelve se descarta.
// El historial de movimientos no se restaura y el contador de IDs vuelve a 0.
func (g *Gestor) Restore(doc dto.Document) {
	g.products = nil
	g.movements = nil
	g.categories = nil
	g.suppliers = nil
	g.responsibles = nil
	g.movSeq = 0

	for _, c := range doc.Categories {
		g.categories = append(g.categories, &entity.Category{ID: c.ID, Name: c.Name})
	}
	for _, s := range doc.Suppliers {
		g.suppliers = append(g.suppliers, &entity.Supplier{ID: s.ID, Name: s.Name, Contact: s.Contact})
	}
	for _, r := range doc.Responsibles {
		g.responsibles = append(g.responsibles, &entity.Responsible{ID: r.ID, Name: r.Name, Role: r.Role})
	}
	for _, p := range doc.Products {
		category := g.findCategory(p.Category.ID)
		supplier := g.findSupplier(p.Supplier.ID)
		if category == nil || supplier == nil {
			continue
		}
		g.products = append(g.products, &entity.Product{
			ID:       p.ID,
			Name:     p.Name,
			Category: category,
			Supplier: supplier,
			MinStock: p.MinStock,
			Stock:    p.Stock,
		})
	}
}
