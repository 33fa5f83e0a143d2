package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleLineRequest una línea del carrito. UnitPrice permite vender a un
// precio distinto del configurado (descuento, promoción); nil o no positivo
// usa el precio de venta del producto.
type SaleLineRequest struct {
	ProductID string           `json:"product_id" validate:"required"`
	Quantity  int              `json:"quantity" validate:"required,gt=0"`
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty"`
}

// PaymentRequest un pago inicial o posterior.
type PaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Mode   string          `json:"mode"` // cash, card, transfer, check
}

// CreateSaleRequest entrada de POST /api/sales.
type CreateSaleRequest struct {
	ClientID *string          `json:"client_id"`
	Date     *time.Time       `json:"date"`
	Lines    []SaleLineRequest `json:"lines" validate:"required,min=1"`
	Payments []PaymentRequest  `json:"payments"`
}

// CreateSaleResponse resultado de la venta procesada.
type CreateSaleResponse struct {
	SaleID      string          `json:"sale_id"`
	NetTotal    decimal.Decimal `json:"net_total"`
	TaxTotal    decimal.Decimal `json:"tax_total"`
	GrandTotal  decimal.Decimal `json:"grand_total"`
	Paid        decimal.Decimal `json:"paid"`
	Outstanding decimal.Decimal `json:"outstanding"`
	ChangeDue   decimal.Decimal `json:"change_due"`
}

// AddPaymentRequest entrada de POST /api/sales/:id/payments.
type AddPaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Mode   string          `json:"mode"`
}

// AddPaymentResponse estado de cobro tras registrar el pago.
type AddPaymentResponse struct {
	SaleID      string          `json:"sale_id"`
	Paid        decimal.Decimal `json:"paid"`
	Outstanding decimal.Decimal `json:"outstanding"`
	Settled     bool            `json:"settled"`
}

// SaleSummaryResponse fila del listado de ventas.
type SaleSummaryResponse struct {
	ID          string          `json:"id"`
	ClientID    *string         `json:"client_id,omitempty"`
	ClientName  string          `json:"client_name,omitempty"`
	Date        time.Time       `json:"date"`
	GrandTotal  decimal.Decimal `json:"grand_total"`
	Paid        decimal.Decimal `json:"paid"`
	Outstanding decimal.Decimal `json:"outstanding"`
}

// SaleListResponse listado de ventas con el total pendiente de cobro.
type SaleListResponse struct {
	Sales            []SaleSummaryResponse `json:"sales"`
	TotalOutstanding decimal.Decimal       `json:"total_outstanding"`
}

// SaleLineResponse línea dentro del detalle de venta.
type SaleLineResponse struct {
	ID            string          `json:"id"`
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name"`
	Quantity      int             `json:"quantity"`
	UnitSalePrice decimal.Decimal `json:"unit_sale_price"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Margin        decimal.Decimal `json:"margin"`
}

// SalePaymentResponse pago dentro del detalle de venta.
type SalePaymentResponse struct {
	ID     string          `json:"id"`
	Amount decimal.Decimal `json:"amount"`
	Mode   string          `json:"mode"`
	Date   time.Time       `json:"date"`
}

// SaleDetailResponse detalle completo de una venta.
type SaleDetailResponse struct {
	ID          string                `json:"id"`
	ClientID    *string               `json:"client_id,omitempty"`
	Date        time.Time             `json:"date"`
	NetTotal    decimal.Decimal       `json:"net_total"`
	TaxTotal    decimal.Decimal       `json:"tax_total"`
	GrandTotal  decimal.Decimal       `json:"grand_total"`
	Paid        decimal.Decimal       `json:"paid"`
	Outstanding decimal.Decimal       `json:"outstanding"`
	Lines       []SaleLineResponse    `json:"lines"`
	Payments    []SalePaymentResponse `json:"payments"`
}
