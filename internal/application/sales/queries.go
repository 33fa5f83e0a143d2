package sales

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/ventas-pro/internal/application/dto"
	"github.com/tu-usuario/ventas-pro/internal/domain"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

// ListSales lista las ventas, opcionalmente filtradas por nombre de cliente,
// junto con el total pendiente de cobro del listado.
func (uc *UseCase) ListSales(clientName string) (*dto.SaleListResponse, error) {
	sales, err := uc.saleRepo.List(repository.SaleFilter{ClientName: clientName})
	if err != nil {
		return nil, err
	}
	out := &dto.SaleListResponse{
		Sales:            make([]dto.SaleSummaryResponse, 0, len(sales)),
		TotalOutstanding: decimal.Zero,
	}
	for _, s := range sales {
		out.Sales = append(out.Sales, dto.SaleSummaryResponse{
			ID:          s.ID,
			ClientID:    s.ClientID,
			ClientName:  s.ClientName,
			Date:        s.Date,
			GrandTotal:  s.GrandTotal,
			Paid:        s.Paid,
			Outstanding: s.Outstanding,
		})
		out.TotalOutstanding = out.TotalOutstanding.Add(s.Outstanding)
	}
	return out, nil
}

// GetSale devuelve el detalle completo de una venta: cabecera, líneas con
// nombre de producto y pagos.
func (uc *UseCase) GetSale(saleID string) (*dto.SaleDetailResponse, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrSaleNotFound
	}

	lines, err := uc.saleRepo.ListLinesWithProduct(saleID)
	if err != nil {
		return nil, err
	}
	payments, err := uc.payRepo.ListBySale(saleID)
	if err != nil {
		return nil, err
	}

	detail := &dto.SaleDetailResponse{
		ID:          sale.ID,
		ClientID:    sale.ClientID,
		Date:        sale.Date,
		NetTotal:    sale.NetTotal,
		TaxTotal:    sale.TaxTotal,
		GrandTotal:  sale.GrandTotal,
		Paid:        sale.Paid,
		Outstanding: sale.Outstanding,
		Lines:       make([]dto.SaleLineResponse, 0, len(lines)),
		Payments:    make([]dto.SalePaymentResponse, 0, len(payments)),
	}
	for _, l := range lines {
		detail.Lines = append(detail.Lines, dto.SaleLineResponse{
			ID:            l.ID,
			ProductID:     l.ProductID,
			ProductName:   l.ProductName,
			Quantity:      l.Quantity,
			UnitSalePrice: l.UnitSalePrice,
			Subtotal:      l.Subtotal,
			Margin:        l.Margin,
		})
	}
	for _, p := range payments {
		detail.Payments = append(detail.Payments, dto.SalePaymentResponse{
			ID:     p.ID,
			Amount: p.Amount,
			Mode:   p.Mode,
			Date:   p.Date,
		})
	}
	return detail, nil
}
