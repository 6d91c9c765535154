package entity

// Supplier representa un proveedor de productos.
type Supplier struct {
	ID      string
	Name    string
	Contact string
}
