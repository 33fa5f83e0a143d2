package repository

import (
	"time"

	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
)

// MovementFilter filtros opcionales para el historial de movimientos.
type MovementFilter struct {
	Type      string // entry | exit | vacío = todos
	ProductID string
	From      *time.Time
	To        *time.Time // inclusivo: se filtra con < To+1día
}

// MovementWithProduct movimiento enriquecido con el nombre del producto.
type MovementWithProduct struct {
	entity.StockMovement
	ProductName string
}

// StockMovementRepository puerto de persistencia para movimientos de stock.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	GetByID(id string) (*entity.StockMovement, error)
	List(filter MovementFilter) ([]*MovementWithProduct, error)
	Update(movement *entity.StockMovement) error
	Delete(id string) error
}
