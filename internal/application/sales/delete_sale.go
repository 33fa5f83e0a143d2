package sales

import (
	"context"

	"github.com/tu-usuario/ventas-pro/internal/domain"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

// DeleteSale elimina una venta restaurando el stock de cada línea bajo el
// candado de la fila del producto. Borra hijos antes que la cabecera
// (pagos, líneas, venta) en una sola transacción.
func (uc *UseCase) DeleteSale(ctx context.Context, saleID string) error {
	return uc.txRunner.RunSale(ctx, func(
		productRepo repository.ProductRepository,
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

		lines, err := saleRepo.ListLines(saleID)
		if err != nil {
			return err
		}
		for _, line := range lines {
			product, err := productRepo.GetForUpdate(line.ProductID)
			if err != nil {
				return err
			}
			// producto borrado entre tanto: no hay stock que devolver
			if product == nil {
				continue
			}
			if err := productRepo.UpdateStock(product.ID, product.StockQty+line.Quantity); err != nil {
				return err
			}
		}

		if err := payRepo.DeleteBySale(saleID); err != nil {
			return err
		}
		if err := saleRepo.DeleteLines(saleID); err != nil {
			return err
		}
		deleted, err := saleRepo.Delete(saleID)
		if err != nil {
			return err
		}
		if !deleted {
			return domain.ErrSaleNotFound
		}
		return nil
	})
}
