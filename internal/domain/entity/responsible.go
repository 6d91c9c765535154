package entity

// Roles conocidos de responsables de bodega.
const (
	RoleAdministrador = "Administrador"
	RoleSupervisor    = "Supervisor"
)

// Responsible representa la persona responsable de un movimiento de inventario.
type Responsible struct {
	ID   string
	Name string
	Role string
}
