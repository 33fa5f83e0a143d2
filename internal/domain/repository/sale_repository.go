package repository

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
)

// SaleFilter filtros para el listado de ventas.
type SaleFilter struct {
	ClientName string // LIKE sobre el nombre del cliente
}

// SaleWithClient cabecera de venta enriquecida con el nombre del cliente.
type SaleWithClient struct {
	entity.Sale
	ClientName string
}

// SaleLineWithProduct línea de venta enriquecida con el nombre del producto.
type SaleLineWithProduct struct {
	entity.SaleLine
	ProductName string
}

// SaleRepository puerto de persistencia para ventas, líneas incluidas.
// GetForUpdate bloquea la cabecera; es el candado que serializa pagos
// concurrentes contra la misma venta.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	GetForUpdate(id string) (*entity.Sale, error)
	// UpdateTotals escribe los totales calculados a partir de las líneas.
	UpdateTotals(id string, net, tax, grand decimal.Decimal) error
	UpdatePaymentTotals(id string, paid, outstanding decimal.Decimal) error
	List(filter SaleFilter) ([]*SaleWithClient, error)
	// Delete borra solo la cabecera y reporta si existía.
	Delete(id string) (bool, error)

	CreateLine(line *entity.SaleLine) error
	ListLines(saleID string) ([]*entity.SaleLine, error)
	ListLinesWithProduct(saleID string) ([]*SaleLineWithProduct, error)
	DeleteLines(saleID string) error
}
