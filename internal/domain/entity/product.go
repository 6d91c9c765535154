package entity

// Product representa un producto del inventario. Category y Supplier son
// referencias a las colecciones del gestor, no copias; se re-resuelven por ID
// al recargar desde disco.
type Product struct {
	ID       string
	Name     string
	Category *Category
	Supplier *Supplier
	MinStock int
	Stock    int
}

// UpdateStock aplica un delta (positivo o negativo) al stock actual y devuelve
// el nuevo valor. No valida: la validación es responsabilidad del movimiento.
func (p *Product) UpdateStock(delta int) int {
	p.Stock += delta
	return p.Stock
}
