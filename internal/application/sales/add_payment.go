package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/ventas-pro/internal/application/dto"
	"github.com/tu-usuario/ventas-pro/internal/domain"
	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

// AddPayment registra un abono sobre una venta con deuda. Bloquea la
// cabecera (SELECT FOR UPDATE) para serializar pagos concurrentes, rechaza
// sobrepagos por encima de la tolerancia y recalcula paid desde la suma de
// pagos, nunca por incremento.
func (uc *UseCase) AddPayment(ctx context.Context, saleID string, input dto.AddPaymentRequest) (*dto.AddPaymentResponse, error) {
	if !input.Amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidAmount
	}

	var resp *dto.AddPaymentResponse
	err := uc.txRunner.RunSale(ctx, func(
		_ repository.ProductRepository,
		saleRepo repository.SaleRepository,
		payRepo repository.PaymentRepository,
	) error {
		sale, err := saleRepo.GetForUpdate(saleID)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrSaleNotFound
		}

		outstanding := sale.GrandTotal.Sub(sale.Paid)
		if input.Amount.Sub(outstanding).GreaterThanOrEqual(overPaymentTolerance) {
			return fmt.Errorf("%w: deuda %s, abono %s",
				domain.ErrOverPayment, outstanding.StringFixed(2), input.Amount.StringFixed(2))
		}

		payment := &entity.Payment{
			SaleID: sale.ID,
			Amount: input.Amount,
			Mode:   entity.ValidPaymentMode(input.Mode),
			Date:   time.Now(),
		}
		if err := payRepo.Create(payment); err != nil {
			return err
		}

		// fuente de verdad: la suma de pagos, con tope en el total
		total, err := payRepo.SumBySale(sale.ID)
		if err != nil {
			return err
		}
		paid := decimal.Min(total, sale.GrandTotal)
		newOutstanding := sale.GrandTotal.Sub(paid)
		if err := saleRepo.UpdatePaymentTotals(sale.ID, paid, newOutstanding); err != nil {
			return err
		}

		resp = &dto.AddPaymentResponse{
			SaleID:      sale.ID,
			Paid:        paid,
			Outstanding: newOutstanding,
			Settled:     newOutstanding.IsZero(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
