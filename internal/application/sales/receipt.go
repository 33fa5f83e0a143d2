package sales

import (
	"context"
	"fmt"

	"github.com/tu-usuario/ventas-pro/internal/domain"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

// ReceiptUseCase genera el recibo PDF de una venta.
type ReceiptUseCase struct {
	saleRepo   repository.SaleRepository
	payRepo    repository.PaymentRepository
	clientRepo repository.ClientRepository
	generator  ReceiptPDFGenerator
}

// NewReceiptUseCase construye el caso de uso inyectando sus dependencias.
func NewReceiptUseCase(
	saleRepo repository.SaleRepository,
	payRepo repository.PaymentRepository,
	clientRepo repository.ClientRepository,
	generator ReceiptPDFGenerator,
) *ReceiptUseCase {
	return &ReceiptUseCase{
		saleRepo:   saleRepo,
		payRepo:    payRepo,
		clientRepo: clientRepo,
		generator:  generator,
	}
}

// DownloadReceiptPDF recupera la venta completa y genera el recibo.
// Retorna los bytes del PDF y el nombre de archivo sugerido.
func (uc *ReceiptUseCase) DownloadReceiptPDF(ctx context.Context, saleID string) ([]byte, string, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: obtener venta: %w", err)
	}
	if sale == nil {
		return nil, "", domain.ErrSaleNotFound
	}

	clientName := "Cliente de mostrador"
	if sale.ClientID != nil {
		client, err := uc.clientRepo.GetByID(*sale.ClientID)
		if err == nil && client != nil {
			clientName = client.Name
		}
	}

	lines, err := uc.saleRepo.ListLinesWithProduct(saleID)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: obtener líneas: %w", err)
	}
	payments, err := uc.payRepo.ListBySale(saleID)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: obtener pagos: %w", err)
	}

	pdfBytes, err := uc.generator.GenerateReceiptPDF(ctx, sale, clientName, lines, payments)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: generación fallida: %w", err)
	}

	filename := fmt.Sprintf("recibo_%s.pdf", sale.ID)
	return pdfBytes, filename, nil
}
