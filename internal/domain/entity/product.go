package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo con su stock disponible.
// StockQty solo lo muta el motor de stock (bajo SELECT FOR UPDATE); nunca
// puede quedar negativo.
type Product struct {
	ID             string
	Name           string
	Description    string
	PurchasePrice  decimal.Decimal // precio de compra (para margen)
	SalePrice      decimal.Decimal // precio de venta sugerido
	StockQty       int
	AlertThreshold int     // stock <= umbral dispara alerta en el dashboard
	SupplierID     *string // proveedor habitual, opcional
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// LowStock indica si el producto está en o bajo su umbral de alerta.
func (p *Product) LowStock() bool {
	return p.StockQty <= p.AlertThreshold
}
