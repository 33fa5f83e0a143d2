package sales

import (
	"context"

	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

// SalesTxRunner abre una transacción y ejecuta fn con los repos que necesita
// el motor de ventas, atados a ella. Commit si fn retorna nil; Rollback si no.
type SalesTxRunner interface {
	RunSale(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
		payRepo repository.PaymentRepository,
	) error) error
}

// ReceiptPDFGenerator genera el ticket/recibo de una venta en PDF.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(
		ctx context.Context,
		sale *entity.Sale,
		clientName string,
		lines []*repository.SaleLineWithProduct,
		payments []*entity.Payment,
	) ([]byte, error)
}
