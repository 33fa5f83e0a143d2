package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	MovementTypeEntry = "entry" // entrada (compra, devolución, ajuste+)
	MovementTypeExit  = "exit"  // salida (merma, ajuste-)
)

// StockMovement es el registro auditable de un cambio de cantidad.
// Quantity siempre es la magnitud (positiva); el signo lo da Type.
// Inmutable salvo por los flujos de edición/borrado que re-aplican el
// delta inverso sobre el producto.
type StockMovement struct {
	ID            string
	ProductID     string
	Type          string // entry | exit
	Quantity      int
	Counterpart   string // proveedor o referencia de venta; "N/A" si no aplica
	Reason        string
	Notes         string
	PurchasePrice *decimal.Decimal // precio unitario de compra en entradas, opcional
	CreatedAt     time.Time
}

// SignedDelta devuelve el efecto del movimiento sobre el stock del producto.
func (m *StockMovement) SignedDelta() int {
	if m.Type == MovementTypeExit {
		return -m.Quantity
	}
	return m.Quantity
}
