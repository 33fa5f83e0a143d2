package repository

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
)

// PaymentRepository puerto de persistencia para pagos (append-only).
// SumBySale es la fuente de verdad del monto pagado: el acumulador de pagos
// recalcula desde aquí, nunca incrementa el contador de la cabecera.
type PaymentRepository interface {
	Create(payment *entity.Payment) error
	ListBySale(saleID string) ([]*entity.Payment, error)
	SumBySale(saleID string) (decimal.Decimal, error)
	DeleteBySale(saleID string) error
}
