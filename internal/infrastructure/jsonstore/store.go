package jsonstore

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/chamador/gestor-inventario/internal/application/dto"
	"github.com/chamador/gestor-inventario/internal/application/inventory"
	"github.com/chamador/gestor-inventario/pkg/logger"
)

// Store persiste el estado completo del gestor como documento JSON en disco.
// Cada operación abre, escribe o lee por completo y cierra el archivo antes
// de retornar.
type Store struct {
	path string
	log  *logger.Logger
}

// New construye un store sobre la ruta indicada.
func New(path string, log *logger.Logger) *Store {
	return &Store{path: path, log: log}
}

// Path devuelve la ruta del documento.
func (s *Store) Path() string {
	return s.path
}

// Save serializa las cinco colecciones del gestor y las escribe al archivo.
func (s *Store) Save(g *inventory.Gestor) error {
	doc := g.Snapshot()
	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return err
	}
	s.log.Info().
		Str("archivo", s.path).
		Int("productos", len(doc.Products)).
		Int("movimientos", len(doc.Movements)).
		Msg("datos guardados")
	return nil
}

// Load lee el documento y reemplaza el estado del gestor. No retorna error:
// si el archivo no existe se registra un aviso y el estado actual se
// conserva; cualquier otro error de lectura o parseo se registra y el estado
// queda igualmente intacto. El historial de movimientos no se restaura.
func (s *Store) Load(g *inventory.Gestor) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.log.Info().Str("archivo", s.path).Msg("archivo de datos no encontrado, se conserva el estado actual")
			return
		}
		s.log.Error().Err(err).Str("archivo", s.path).Msg("error al leer el archivo de datos")
		return
	}

	var doc dto.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		s.log.Error().Err(err).Str("archivo", s.path).Msg("error al cargar datos")
		return
	}

	g.Restore(doc)
	s.log.Info().
		Str("archivo", s.path).
		Int("productos", len(doc.Products)).
		Int("categorias", len(doc.Categories)).
		Int("proveedores", len(doc.Suppliers)).
		Int("responsables", len(doc.Responsibles)).
		Msg("datos cargados")
}
