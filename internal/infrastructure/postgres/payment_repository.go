package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implementación de PaymentRepository sobre PostgreSQL (usable con pool o tx).
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador de pagos. Pasar pool o tx (Querier).
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

// Create persiste un pago.
func (r *PaymentRepo) Create(payment *entity.Payment) error {
	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}
	if payment.Date.IsZero() {
		payment.Date = time.Now()
	}
	query := `
		INSERT INTO payments (id, sale_id, amount, mode, date)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		payment.ID, payment.SaleID, payment.Amount, payment.Mode, payment.Date,
	)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// ListBySale obtiene los pagos de una venta en orden cronológico.
func (r *PaymentRepo) ListBySale(saleID string) ([]*entity.Payment, error) {
	query := `SELECT id, sale_id, amount, mode, date FROM payments WHERE sale_id = $1 ORDER BY date ASC`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Payment
	for rows.Next() {
		var p entity.Payment
		if err := rows.Scan(&p.ID, &p.SaleID, &p.Amount, &p.Mode, &p.Date); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// SumBySale devuelve la suma de todos los pagos de la venta. Es la fuente
// de verdad sobre la que se recalcula paid (nunca se incrementa el contador).
func (r *PaymentRepo) SumBySale(saleID string) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM payments WHERE sale_id = $1`
	var total decimal.Decimal
	if err := r.q.QueryRow(context.Background(), query, saleID).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("sum payments: %w", err)
	}
	return total, nil
}

// DeleteBySale borra todos los pagos de una venta (borrado de la venta).
func (r *PaymentRepo) DeleteBySale(saleID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM payments WHERE sale_id = $1`, saleID)
	if err != nil {
		return fmt.Errorf("delete payments: %w", err)
	}
	return nil
}
