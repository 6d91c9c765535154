package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chamador/gestor-inventario/internal/application/dto"
	"github.com/chamador/gestor-inventario/internal/application/inventory"
)

// CatalogHandler registra categorías, proveedores y responsables en el gestor.
type CatalogHandler struct {
	gestor *inventory.Gestor
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(gestor *inventory.Gestor) *CatalogHandler {
	return &CatalogHandler{gestor: gestor}
}

// CreateCategory godoc
// @Summary      Registrar categoría
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterCategoryRequest  true  "id, nombre"
// @Success      201   {object}  dto.CategoryDoc
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/categorias [post]
func (h *CatalogHandler) CreateCategory(c *fiber.Ctx) error {
	var in dto.RegisterCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	category := h.gestor.RegisterCategory(in.ID, in.Name)
	return c.Status(fiber.StatusCreated).JSON(dto.NewCategoryDoc(category))
}

// CreateSupplier godoc
// @Summary      Registrar proveedor
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterSupplierRequest  true  "id, nombre, contacto"
// @Success      201   {object}  dto.SupplierDoc
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/proveedores [post]
func (h *CatalogHandler) CreateSupplier(c *fiber.Ctx) error {
	var in dto.RegisterSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	supplier := h.gestor.RegisterSupplier(in.ID, in.Name, in.Contact)
	return c.Status(fiber.StatusCreated).JSON(dto.NewSupplierDoc(supplier))
}

// CreateResponsible godoc
// @Summary      Registrar responsable
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterResponsibleRequest  true  "id, nombre, rol"
// @Success      201   {object}  dto.ResponsibleDoc
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/responsables [post]
func (h *CatalogHandler) CreateResponsible(c *fiber.Ctx) error {
	var in dto.RegisterResponsibleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	responsible := h.gestor.RegisterResponsible(in.ID, in.Name, in.Role)
	return c.Status(fiber.StatusCreated).JSON(dto.NewResponsibleDoc(responsible))
}
