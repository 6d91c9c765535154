package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chamador/gestor-inventario/internal/application/dto"
	"github.com/chamador/gestor-inventario/internal/application/inventory"
	"github.com/chamador/gestor-inventario/internal/infrastructure/jsonstore"
)

// DataHandler expone el guardado y recarga explícitos del documento de datos.
// Solo accesible para el rol Administrador.
type DataHandler struct {
	gestor *inventory.Gestor
	store  *jsonstore.Store
}

// NewDataHandler construye el handler.
func NewDataHandler(gestor *inventory.Gestor, store *jsonstore.Store) *DataHandler {
	return &DataHandler{gestor: gestor, store: store}
}

// Save godoc
// @Summary      Guardar el estado del inventario a disco
// @Tags         data
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/datos/guardar [post]
func (h *DataHandler) Save(c *fiber.Ctx) error {
	if err := h.store.Save(h.gestor); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "SAVE_FAILED", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "datos guardados en " + h.store.Path()})
}

// Load godoc
// @Summary      Recargar el estado del inventario desde disco
// @Tags         data
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/datos/cargar [post]
func (h *DataHandler) Load(c *fiber.Ctx) error {
	// La carga no falla hacia el caller: archivo ausente o corrupto se
	// registra en el log y el estado en memoria queda intacto.
	h.store.Load(h.gestor)
	return c.JSON(dto.MessageResponse{Message: "carga de datos procesada"})
}
