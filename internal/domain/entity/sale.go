package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale es la cabecera de una venta. TaxTotal es siempre cero en este
// negocio, por lo que GrandTotal == NetTotal; la columna se persiste para
// compatibilidad histórica.
//
// Invariante: Paid = min(GrandTotal, Σ pagos) y
// Outstanding = max(0, GrandTotal - Paid). Paid/Outstanding solo los muta
// el acumulador de pagos (bajo FOR UPDATE) o el borrado de la venta.
type Sale struct {
	ID          string
	ClientID    *string // venta sin cliente registrado es válida
	Date        time.Time
	NetTotal    decimal.Decimal
	TaxTotal    decimal.Decimal
	GrandTotal  decimal.Decimal
	Paid        decimal.Decimal
	Outstanding decimal.Decimal
	CreatedAt   time.Time
}

// SaleLine es una línea de venta. El precio de compra se fotografía al
// momento de vender para que el margen histórico no cambie si el producto
// se reprecia después. Nunca se muta; se borra en bloque con su venta.
type SaleLine struct {
	ID            string
	SaleID        string
	ProductID     string
	Quantity      int
	UnitSalePrice decimal.Decimal
	PurchasePrice decimal.Decimal
	Subtotal      decimal.Decimal // Quantity × UnitSalePrice
	Margin        decimal.Decimal // Quantity × (UnitSalePrice - PurchasePrice)
}
