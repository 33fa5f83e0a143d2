package sales

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/ventas-pro/internal/application/dto"
	"github.com/tu-usuario/ventas-pro/internal/domain"
	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
)

func seedSaleWithDebt(store *memStore, id string, grand, paid string) {
	g := decimal.RequireFromString(grand)
	p := decimal.RequireFromString(paid)
	store.sales[id] = &entity.Sale{
		ID:          id,
		NetTotal:    g,
		GrandTotal:  g,
		Paid:        p,
		Outstanding: g.Sub(p),
	}
	if p.GreaterThan(decimal.Zero) {
		store.payments = append(store.payments, &entity.Payment{
			ID: id + "-initial", SaleID: id, Amount: p, Mode: entity.PaymentModeCash,
		})
	}
}

func TestAddPayment_ReducesOutstanding(t *testing.T) {
	store := newMemStore()
	seedSaleWithDebt(store, "s1", "100.00", "40.00")
	uc := newTestUseCase(store)

	out, err := uc.AddPayment(context.Background(), "s1", dto.AddPaymentRequest{
		Amount: decimal.RequireFromString("30.00"),
		Mode:   "card",
	})
	require.NoError(t, err)

	assert.True(t, out.Paid.Equal(decimal.RequireFromString("70.00")))
	assert.True(t, out.Outstanding.Equal(decimal.RequireFromString("30.00")))
	assert.False(t, out.Settled)
}

func TestAddPayment_SettlesSale(t *testing.T) {
	store := newMemStore()
	seedSaleWithDebt(store, "s1", "100.00", "40.00")
	uc := newTestUseCase(store)

	out, err := uc.AddPayment(context.Background(), "s1", dto.AddPaymentRequest{
		Amount: decimal.RequireFromString("60.00"),
	})
	require.NoError(t, err)

	assert.True(t, out.Outstanding.IsZero())
	assert.True(t, out.Settled)
}

func TestAddPayment_ToleratesRoundingOverPayment(t *testing.T) {
	store := newMemStore()
	seedSaleWithDebt(store, "s1", "100.00", "40.00")
	uc := newTestUseCase(store)

	// menos de un centavo por encima de la deuda entra, pero paid queda topado
	out, err := uc.AddPayment(context.Background(), "s1", dto.AddPaymentRequest{
		Amount: decimal.RequireFromString("60.005"),
	})
	require.NoError(t, err)

	assert.True(t, out.Paid.Equal(decimal.RequireFromString("100.00")), "paid nunca excede el total")
	assert.True(t, out.Outstanding.IsZero())
}

func TestAddPayment_RejectsOverPayment(t *testing.T) {
	store := newMemStore()
	seedSaleWithDebt(store, "s1", "100.00", "40.00")
	uc := newTestUseCase(store)

	// un centavo completo por encima de la deuda ya es sobrepago
	for _, amount := range []string{"60.01", "60.02"} {
		_, err := uc.AddPayment(context.Background(), "s1", dto.AddPaymentRequest{
			Amount: decimal.RequireFromString(amount),
		})
		require.ErrorIs(t, err, domain.ErrOverPayment, "amount=%s", amount)
	}

	// nada persistido
	sale := store.sales["s1"]
	assert.True(t, sale.Paid.Equal(decimal.RequireFromString("40.00")))
	assert.Len(t, store.payments, 1)
}

func TestAddPayment_SettledSaleRejectsOneCent(t *testing.T) {
	store := newMemStore()
	seedSaleWithDebt(store, "s1", "200.00", "200.00")
	uc := newTestUseCase(store)

	_, err := uc.AddPayment(context.Background(), "s1", dto.AddPaymentRequest{
		Amount: decimal.RequireFromString("0.01"),
	})
	require.ErrorIs(t, err, domain.ErrOverPayment)
	assert.Len(t, store.payments, 1, "la venta saldada no admite más pagos")
}

func TestAddPayment_RejectsNonPositiveAmount(t *testing.T) {
	store := newMemStore()
	seedSaleWithDebt(store, "s1", "100.00", "0.00")
	uc := newTestUseCase(store)

	for _, amount := range []string{"0", "-5.00"} {
		_, err := uc.AddPayment(context.Background(), "s1", dto.AddPaymentRequest{
			Amount: decimal.RequireFromString(amount),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidAmount, "amount=%s", amount)
	}
}

func TestAddPayment_SaleNotFound(t *testing.T) {
	uc := newTestUseCase(newMemStore())

	_, err := uc.AddPayment(context.Background(), "nope", dto.AddPaymentRequest{
		Amount: decimal.RequireFromString("10.00"),
	})
	assert.ErrorIs(t, err, domain.ErrSaleNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAddPayment_RecomputesFromPaymentSum(t *testing.T) {
	store := newMemStore()
	seedSaleWithDebt(store, "s1", "100.00", "40.00")
	// cabecera desincronizada a propósito: la suma de pagos manda
	store.sales["s1"].Paid = decimal.RequireFromString("35.00")
	store.sales["s1"].Outstanding = decimal.RequireFromString("65.00")
	uc := newTestUseCase(store)

	out, err := uc.AddPayment(context.Background(), "s1", dto.AddPaymentRequest{
		Amount: decimal.RequireFromString("10.00"),
	})
	require.NoError(t, err)

	// 40 (pago sembrado) + 10, no 35 + 10
	assert.True(t, out.Paid.Equal(decimal.RequireFromString("50.00")))
	assert.True(t, out.Outstanding.Equal(decimal.RequireFromString("50.00")))
}
