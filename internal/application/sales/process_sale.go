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

// overPaymentTolerance margen por redondeo al cobrar deuda: un exceso por
// debajo de un centavo se absorbe, un centavo o más se rechaza.
var overPaymentTolerance = decimal.NewFromFloat(0.01)

// UseCase motor de ventas: creación transaccional, cobro de deuda y borrado
// con restauración de stock.
type UseCase struct {
	txRunner    SalesTxRunner
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
	payRepo     repository.PaymentRepository
}

// NewUseCase construye el caso de uso con los repos atados al pool.
func NewUseCase(
	txRunner SalesTxRunner,
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	payRepo repository.PaymentRepository,
) *UseCase {
	return &UseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		saleRepo:    saleRepo,
		payRepo:     payRepo,
	}
}

// ProcessSale procesa una venta completa: valida el carrito, descuenta stock
// bajo bloqueo de fila, persiste cabecera, líneas y pagos iniciales, y deja
// paid/outstanding coherentes. Todo o nada: cualquier fallo revierte la
// transacción entera.
func (uc *UseCase) ProcessSale(ctx context.Context, input dto.CreateSaleRequest) (*dto.CreateSaleResponse, error) {
	if len(input.Lines) == 0 {
		return nil, domain.ErrEmptySale
	}
	for _, l := range input.Lines {
		if l.ProductID == "" || l.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	// Pre-validación fuera de la transacción: falla rápido sin tomar
	// candados. La verificación vinculante se repite bajo FOR UPDATE.
	for _, l := range input.Lines {
		product, err := uc.productRepo.GetByID(l.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrProductNotFound
		}
		if product.StockQty < l.Quantity {
			return nil, fmt.Errorf("%w: %s (stock %d, pedido %d)",
				domain.ErrInsufficientStock, product.Name, product.StockQty, l.Quantity)
		}
	}

	date := time.Now()
	if input.Date != nil {
		date = *input.Date
	}

	var resp *dto.CreateSaleResponse
	err := uc.txRunner.RunSale(ctx, func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
		payRepo repository.PaymentRepository,
	) error {
		sale := &entity.Sale{
			ClientID:  input.ClientID,
			Date:      date,
			NetTotal:  decimal.Zero,
			TaxTotal:  decimal.Zero,
			Paid:      decimal.Zero,
			CreatedAt: time.Now(),
		}
		if err := saleRepo.Create(sale); err != nil {
			return err
		}

		netTotal := decimal.Zero
		for _, l := range input.Lines {
			product, err := productRepo.GetForUpdate(l.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrProductNotFound
			}
			// verificación autoritativa: el stock pudo cambiar desde la
			// pre-validación
			if product.StockQty < l.Quantity {
				return fmt.Errorf("%w: %s (stock %d, pedido %d)",
					domain.ErrInsufficientStock, product.Name, product.StockQty, l.Quantity)
			}
			if err := productRepo.UpdateStock(product.ID, product.StockQty-l.Quantity); err != nil {
				return err
			}

			// precio de la línea: el indicado por el cajero, o el del
			// producto si no viene (o no es positivo)
			unitPrice := product.SalePrice
			if l.UnitPrice != nil && l.UnitPrice.GreaterThan(decimal.Zero) {
				unitPrice = *l.UnitPrice
			}

			qty := decimal.NewFromInt(int64(l.Quantity))
			subtotal := unitPrice.Mul(qty)
			margin := unitPrice.Sub(product.PurchasePrice).Mul(qty)
			line := &entity.SaleLine{
				SaleID:        sale.ID,
				ProductID:     product.ID,
				Quantity:      l.Quantity,
				UnitSalePrice: unitPrice,
				PurchasePrice: product.PurchasePrice,
				Subtotal:      subtotal,
				Margin:        margin,
			}
			if err := saleRepo.CreateLine(line); err != nil {
				return err
			}
			netTotal = netTotal.Add(subtotal)
		}

		// un carrito cuyas líneas no suman nada no es una venta
		if !netTotal.GreaterThan(decimal.Zero) {
			return domain.ErrEmptySale
		}

		// sin impuestos: el total a pagar es el neto
		grandTotal := netTotal
		if err := saleRepo.UpdateTotals(sale.ID, netTotal, decimal.Zero, grandTotal); err != nil {
			return err
		}

		tendered := decimal.Zero
		for _, p := range input.Payments {
			if !p.Amount.GreaterThan(decimal.Zero) {
				continue
			}
			payment := &entity.Payment{
				SaleID: sale.ID,
				Amount: p.Amount,
				Mode:   entity.ValidPaymentMode(p.Mode),
				Date:   date,
			}
			if err := payRepo.Create(payment); err != nil {
				return err
			}
			tendered = tendered.Add(p.Amount)
		}

		// paid nunca excede el total; el exceso es vuelto, no crédito
		paid := decimal.Min(tendered, grandTotal)
		outstanding := grandTotal.Sub(paid)
		if err := saleRepo.UpdatePaymentTotals(sale.ID, paid, outstanding); err != nil {
			return err
		}

		changeDue := decimal.Max(tendered.Sub(grandTotal), decimal.Zero)
		resp = &dto.CreateSaleResponse{
			SaleID:      sale.ID,
			NetTotal:    netTotal,
			TaxTotal:    decimal.Zero,
			GrandTotal:  grandTotal,
			Paid:        paid,
			Outstanding: outstanding,
			ChangeDue:   changeDue,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
