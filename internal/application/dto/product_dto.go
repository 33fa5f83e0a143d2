package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name           string          `json:"name" validate:"required,min=1,max=200"`
	Description    string          `json:"description"`
	PurchasePrice  decimal.Decimal `json:"purchase_price"`
	SalePrice      decimal.Decimal `json:"sale_price"`
	StockQty       int             `json:"stock_qty"`
	AlertThreshold int             `json:"alert_threshold"`
	SupplierID     *string         `json:"supplier_id"`
}

// UpdateProductRequest entrada para actualizar un producto. El stock no se
// toca por aquí: solo cambia vía movimientos o ventas.
type UpdateProductRequest struct {
	Name           string          `json:"name" validate:"required,min=1,max=200"`
	Description    string          `json:"description"`
	PurchasePrice  decimal.Decimal `json:"purchase_price"`
	SalePrice      decimal.Decimal `json:"sale_price"`
	AlertThreshold int             `json:"alert_threshold"`
	SupplierID     *string         `json:"supplier_id"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	PurchasePrice  decimal.Decimal `json:"purchase_price"`
	SalePrice      decimal.Decimal `json:"sale_price"`
	StockQty       int             `json:"stock_qty"`
	AlertThreshold int             `json:"alert_threshold"`
	SupplierID     *string         `json:"supplier_id,omitempty"`
	LowStock       bool            `json:"low_stock"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ToProductResponse mapea la entidad a su DTO de salida.
func ToProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		PurchasePrice:  p.PurchasePrice,
		SalePrice:      p.SalePrice,
		StockQty:       p.StockQty,
		AlertThreshold: p.AlertThreshold,
		SupplierID:     p.SupplierID,
		LowStock:       p.LowStock(),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
