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

func TestDeleteSale_RestoresStockAndRemovesEverything(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", "Cuaderno", "5.00", "3.00", 10)
	seedProduct(store, "p2", "Lápiz", "1.00", "0.50", 8)
	uc := newTestUseCase(store)

	out, err := uc.ProcessSale(context.Background(), dto.CreateSaleRequest{
		Lines: []dto.SaleLineRequest{
			{ProductID: "p1", Quantity: 3},
			{ProductID: "p2", Quantity: 2},
		},
		Payments: []dto.PaymentRequest{{Amount: decimal.RequireFromString("17.00")}},
	})
	require.NoError(t, err)
	require.Equal(t, 7, store.products["p1"].StockQty)
	require.Equal(t, 6, store.products["p2"].StockQty)

	require.NoError(t, uc.DeleteSale(context.Background(), out.SaleID))

	assert.Equal(t, 10, store.products["p1"].StockQty, "el stock vendido vuelve")
	assert.Equal(t, 8, store.products["p2"].StockQty)
	assert.Empty(t, store.sales)
	assert.Empty(t, store.lines)
	assert.Empty(t, store.payments)
}

func TestDeleteSale_NotFound(t *testing.T) {
	uc := newTestUseCase(newMemStore())

	err := uc.DeleteSale(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrSaleNotFound)
}

func TestDeleteSale_ProductGoneSkipsRestore(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", "Cuaderno", "5.00", "3.00", 10)
	uc := newTestUseCase(store)

	out, err := uc.ProcessSale(context.Background(), dto.CreateSaleRequest{
		Lines: []dto.SaleLineRequest{{ProductID: "p1", Quantity: 2}},
	})
	require.NoError(t, err)

	// el producto se borró después de la venta
	delete(store.products, "p1")

	require.NoError(t, uc.DeleteSale(context.Background(), out.SaleID))
	assert.Empty(t, store.sales)
	assert.Empty(t, store.lines)
}
