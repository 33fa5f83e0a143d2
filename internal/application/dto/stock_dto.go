package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

// AdjustStockRequest entrada para registrar un movimiento de stock
// (entrada o salida manual).
type AdjustStockRequest struct {
	ProductID     string           `json:"product_id" validate:"required"`
	Type          string           `json:"type" validate:"required,oneof=entry exit"`
	Quantity      int              `json:"quantity" validate:"required,gt=0"`
	Counterpart   string           `json:"counterpart"`
	Reason        string           `json:"reason"`
	Notes         string           `json:"notes"`
	PurchasePrice *decimal.Decimal `json:"purchase_price"`
}

// AdjustStockResponse resultado del ajuste: stock antes y después.
type AdjustStockResponse struct {
	MovementID string `json:"movement_id"`
	ProductID  string `json:"product_id"`
	OldQty     int    `json:"old_qty"`
	NewQty     int    `json:"new_qty"`
}

// UpdateMovementRequest entrada para corregir un movimiento existente.
type UpdateMovementRequest struct {
	Quantity int    `json:"quantity" validate:"required,gt=0"`
	Reason   string `json:"reason"`
	Notes    string `json:"notes"`
}

// MovementHistoryQuery filtros del historial de movimientos.
type MovementHistoryQuery struct {
	Type      string `query:"type"`
	ProductID string `query:"product_id"`
	From      string `query:"from"` // YYYY-MM-DD
	To        string `query:"to"`   // YYYY-MM-DD
}

// MovementResponse salida de un movimiento con nombre de producto.
type MovementResponse struct {
	ID            string           `json:"id"`
	ProductID     string           `json:"product_id"`
	ProductName   string           `json:"product_name"`
	Type          string           `json:"type"`
	Quantity      int              `json:"quantity"`
	Counterpart   string           `json:"counterpart,omitempty"`
	Reason        string           `json:"reason,omitempty"`
	Notes         string           `json:"notes,omitempty"`
	PurchasePrice *decimal.Decimal `json:"purchase_price,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
}

// ToMovementResponse mapea el movimiento con producto a su DTO.
func ToMovementResponse(m *repository.MovementWithProduct) MovementResponse {
	return MovementResponse{
		ID:            m.ID,
		ProductID:     m.ProductID,
		ProductName:   m.ProductName,
		Type:          m.Type,
		Quantity:      m.Quantity,
		Counterpart:   m.Counterpart,
		Reason:        m.Reason,
		Notes:         m.Notes,
		PurchasePrice: m.PurchasePrice,
		CreatedAt:     m.CreatedAt,
	}
}
