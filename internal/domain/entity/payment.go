package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Modos de pago aceptados.
const (
	PaymentModeCash     = "cash"
	PaymentModeCard     = "card"
	PaymentModeTransfer = "transfer"
	PaymentModeCheck    = "check"
)

// Payment es un pago (posiblemente parcial) contra una venta. Append-only:
// el conjunto de pagos de una venta es la fuente de verdad del monto pagado,
// no el contador de la cabecera.
type Payment struct {
	ID     string
	SaleID string
	Amount decimal.Decimal // siempre > 0
	Mode   string
	Date   time.Time
}

// ValidPaymentMode normaliza el modo de pago: vacío o desconocido se
// registra como cash.
func ValidPaymentMode(mode string) string {
	switch mode {
	case PaymentModeCash, PaymentModeCard, PaymentModeTransfer, PaymentModeCheck:
		return mode
	default:
		return PaymentModeCash
	}
}
