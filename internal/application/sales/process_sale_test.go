package sales

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/ventas-pro/internal/application/dto"
	"github.com/tu-usuario/ventas-pro/internal/domain"
)

func TestProcessSale_FullPayment(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", "Cuaderno", "3.50", "2.00", 10)
	seedProduct(store, "p2", "Lápiz", "1.25", "0.50", 20)
	uc := newTestUseCase(store)

	out, err := uc.ProcessSale(context.Background(), dto.CreateSaleRequest{
		Lines: []dto.SaleLineRequest{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p2", Quantity: 4},
		},
		Payments: []dto.PaymentRequest{{Amount: decimal.RequireFromString("12.00"), Mode: "cash"}},
	})
	require.NoError(t, err)

	// 2*3.50 + 4*1.25 = 12.00
	assert.True(t, out.NetTotal.Equal(decimal.RequireFromString("12.00")), "net=%s", out.NetTotal)
	assert.True(t, out.GrandTotal.Equal(out.NetTotal), "sin impuestos el total es el neto")
	assert.True(t, out.TaxTotal.IsZero())
	assert.True(t, out.Paid.Equal(out.GrandTotal))
	assert.True(t, out.Outstanding.IsZero())
	assert.True(t, out.ChangeDue.IsZero())

	assert.Equal(t, 8, store.products["p1"].StockQty)
	assert.Equal(t, 16, store.products["p2"].StockQty)
	assert.Len(t, store.lines, 2)
	assert.Len(t, store.payments, 1)
}

func TestProcessSale_PartialPaymentLeavesDebt(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", "Cuaderno", "10.00", "6.00", 5)
	uc := newTestUseCase(store)

	out, err := uc.ProcessSale(context.Background(), dto.CreateSaleRequest{
		Lines:    []dto.SaleLineRequest{{ProductID: "p1", Quantity: 3}},
		Payments: []dto.PaymentRequest{{Amount: decimal.RequireFromString("20.00")}},
	})
	require.NoError(t, err)

	assert.True(t, out.GrandTotal.Equal(decimal.RequireFromString("30.00")))
	assert.True(t, out.Paid.Equal(decimal.RequireFromString("20.00")))
	assert.True(t, out.Outstanding.Equal(decimal.RequireFromString("10.00")))

	sale := store.sales[out.SaleID]
	assert.True(t, sale.Paid.Equal(out.Paid))
	assert.True(t, sale.Outstanding.Equal(out.Outstanding))
}

func TestProcessSale_OverTenderGivesChange(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", "Cuaderno", "7.00", "4.00", 5)
	uc := newTestUseCase(store)

	out, err := uc.ProcessSale(context.Background(), dto.CreateSaleRequest{
		Lines:    []dto.SaleLineRequest{{ProductID: "p1", Quantity: 1}},
		Payments: []dto.PaymentRequest{{Amount: decimal.RequireFromString("10.00"), Mode: "cash"}},
	})
	require.NoError(t, err)

	// el exceso es vuelto, nunca crédito a favor
	assert.True(t, out.Paid.Equal(decimal.RequireFromString("7.00")))
	assert.True(t, out.Outstanding.IsZero())
	assert.True(t, out.ChangeDue.Equal(decimal.RequireFromString("3.00")))
}

func TestProcessSale_NoPaymentsIsCreditSale(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", "Cuaderno", "5.00", "3.00", 5)
	uc := newTestUseCase(store)

	out, err := uc.ProcessSale(context.Background(), dto.CreateSaleRequest{
		Lines: []dto.SaleLineRequest{{ProductID: "p1", Quantity: 2}},
	})
	require.NoError(t, err)

	assert.True(t, out.Paid.IsZero())
	assert.True(t, out.Outstanding.Equal(out.GrandTotal))
}

func TestProcessSale_SkipsNonPositivePayments(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", "Cuaderno", "5.00", "3.00", 5)
	uc := newTestUseCase(store)

	out, err := uc.ProcessSale(context.Background(), dto.CreateSaleRequest{
		Lines: []dto.SaleLineRequest{{ProductID: "p1", Quantity: 1}},
		Payments: []dto.PaymentRequest{
			{Amount: decimal.Zero},
			{Amount: decimal.RequireFromString("-2.00")},
			{Amount: decimal.RequireFromString("5.00")},
		},
	})
	require.NoError(t, err)

	assert.Len(t, store.payments, 1, "solo el pago positivo se persiste")
	assert.True(t, out.Paid.Equal(decimal.RequireFromString("5.00")))
}

func TestProcessSale_EmptyCart(t *testing.T) {
	uc := newTestUseCase(newMemStore())

	_, err := uc.ProcessSale(context.Background(), dto.CreateSaleRequest{})
	assert.ErrorIs(t, err, domain.ErrEmptySale)
}

func TestProcessSale_InvalidLine(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", "Cuaderno", "5.00", "3.00", 5)
	uc := newTestUseCase(store)

	_, err := uc.ProcessSale(context.Background(), dto.CreateSaleRequest{
		Lines: []dto.SaleLineRequest{{ProductID: "p1", Quantity: 0}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProcessSale_UnknownProduct(t *testing.T) {
	uc := newTestUseCase(newMemStore())

	_, err := uc.ProcessSale(context.Background(), dto.CreateSaleRequest{
		Lines: []dto.SaleLineRequest{{ProductID: "nope", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProcessSale_InsufficientStockRollsBackEverything(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", "Cuaderno", "5.00", "3.00", 10)
	seedProduct(store, "p2", "Lápiz", "1.00", "0.50", 1)
	uc := newTestUseCase(store)

	// la segunda línea pide más de lo que hay; la primera ya descontó
	// dentro de la tx y debe revertirse
	_, err := uc.ProcessSale(context.Background(), dto.CreateSaleRequest{
		Lines: []dto.SaleLineRequest{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p2", Quantity: 5},
		},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, 10, store.products["p1"].StockQty, "el stock de la primera línea vuelve atrás")
	assert.Equal(t, 1, store.products["p2"].StockQty)
	assert.Empty(t, store.sales)
	assert.Empty(t, store.lines)
	assert.Empty(t, store.payments)
}

func TestProcessSale_LineUnitPriceOverride(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", "Cuaderno", "5.00", "3.00", 10)
	uc := newTestUseCase(store)

	// el cajero vende a 4.00 en lugar del precio configurado de 5.00
	discounted := decimal.RequireFromString("4.00")
	out, err := uc.ProcessSale(context.Background(), dto.CreateSaleRequest{
		Lines: []dto.SaleLineRequest{{ProductID: "p1", Quantity: 2, UnitPrice: &discounted}},
	})
	require.NoError(t, err)

	assert.True(t, out.GrandTotal.Equal(decimal.RequireFromString("8.00")), "grand=%s", out.GrandTotal)

	require.Len(t, store.lines, 1)
	line := store.lines[0]
	assert.True(t, line.UnitSalePrice.Equal(discounted), "la línea fotografía el precio cobrado")
	assert.True(t, line.Subtotal.Equal(decimal.RequireFromString("8.00")))
	assert.True(t, line.Margin.Equal(decimal.RequireFromString("2.00")), "margen = (4.00 - 3.00) * 2")
}

func TestProcessSale_NonPositiveUnitPriceFallsBackToProduct(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", "Cuaderno", "5.00", "3.00", 10)
	uc := newTestUseCase(store)

	zero := decimal.Zero
	out, err := uc.ProcessSale(context.Background(), dto.CreateSaleRequest{
		Lines: []dto.SaleLineRequest{{ProductID: "p1", Quantity: 1, UnitPrice: &zero}},
	})
	require.NoError(t, err)

	assert.True(t, out.GrandTotal.Equal(decimal.RequireFromString("5.00")),
		"precio no positivo cae al precio del producto")
}

func TestProcessSale_ZeroTotalCartIsRejected(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", "Muestra gratis", "0.00", "0.00", 10)
	uc := newTestUseCase(store)

	// todas las líneas suman cero: no hay venta que registrar
	_, err := uc.ProcessSale(context.Background(), dto.CreateSaleRequest{
		Lines: []dto.SaleLineRequest{{ProductID: "p1", Quantity: 2}},
	})
	require.ErrorIs(t, err, domain.ErrEmptySale)

	assert.Equal(t, 10, store.products["p1"].StockQty, "el descuento de stock se revierte")
	assert.Empty(t, store.sales)
	assert.Empty(t, store.lines)
}

func TestProcessSale_LineSnapshotsPrices(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", "Cuaderno", "5.00", "3.00", 10)
	uc := newTestUseCase(store)

	out, err := uc.ProcessSale(context.Background(), dto.CreateSaleRequest{
		Lines: []dto.SaleLineRequest{{ProductID: "p1", Quantity: 2}},
	})
	require.NoError(t, err)

	require.Len(t, store.lines, 1)
	line := store.lines[0]
	assert.Equal(t, out.SaleID, line.SaleID)
	assert.True(t, line.UnitSalePrice.Equal(decimal.RequireFromString("5.00")))
	assert.True(t, line.PurchasePrice.Equal(decimal.RequireFromString("3.00")))
	assert.True(t, line.Subtotal.Equal(decimal.RequireFromString("10.00")))
	assert.True(t, line.Margin.Equal(decimal.RequireFromString("4.00")), "margen = (venta - compra) * cantidad")
}
