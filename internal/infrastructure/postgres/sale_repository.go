package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

const saleColumns = `id, client_id, date, net_total, tax_total, grand_total, paid, outstanding, created_at`

// SaleRepo implementación de SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la cabecera de la venta.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	if sale.ID == "" {
		sale.ID = uuid.New().String()
	}
	query := `
		INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.ClientID, sale.Date,
		sale.NetTotal, sale.TaxTotal, sale.GrandTotal,
		sale.Paid, sale.Outstanding, sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtiene una cabecera de venta por ID.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get sale")
}

// GetForUpdate obtiene la cabecera y bloquea la fila (SELECT ... FOR UPDATE).
// Es el candado que serializa pagos concurrentes contra la misma venta.
func (r *SaleRepo) GetForUpdate(id string) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get sale for update")
}

// UpdateTotals escribe los totales calculados a partir de las líneas.
func (r *SaleRepo) UpdateTotals(id string, net, tax, grand decimal.Decimal) error {
	query := `UPDATE sales SET net_total = $2, tax_total = $3, grand_total = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, net, tax, grand)
	if err != nil {
		return fmt.Errorf("update sale totals: %w", err)
	}
	return nil
}

// UpdatePaymentTotals escribe paid/outstanding recalculados.
func (r *SaleRepo) UpdatePaymentTotals(id string, paid, outstanding decimal.Decimal) error {
	query := `UPDATE sales SET paid = $2, outstanding = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, paid, outstanding)
	if err != nil {
		return fmt.Errorf("update sale payment totals: %w", err)
	}
	return nil
}

// List lista las ventas (más recientes primero) con el nombre del cliente,
// filtrable por nombre.
func (r *SaleRepo) List(filter repository.SaleFilter) ([]*repository.SaleWithClient, error) {
	query := `
		SELECT s.id, s.client_id, s.date, s.net_total, s.tax_total, s.grand_total, s.paid, s.outstanding, s.created_at,
		       COALESCE(c.name, '')
		FROM sales s
		LEFT JOIN clients c ON c.id = s.client_id
		WHERE 1=1`
	args := []any{}
	if filter.ClientName != "" {
		query += " AND c.name ILIKE $1"
		args = append(args, "%"+filter.ClientName+"%")
	}
	query += " ORDER BY s.date DESC, s.created_at DESC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*repository.SaleWithClient
	for rows.Next() {
		var s repository.SaleWithClient
		if err := rows.Scan(
			&s.ID, &s.ClientID, &s.Date, &s.NetTotal, &s.TaxTotal,
			&s.GrandTotal, &s.Paid, &s.Outstanding, &s.CreatedAt, &s.ClientName,
		); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Delete borra la cabecera y reporta si existía. Pagos y líneas se borran
// antes (orden referencial: hijos primero).
func (r *SaleRepo) Delete(id string) (bool, error) {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete sale: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// CreateLine persiste una línea de venta.
func (r *SaleRepo) CreateLine(line *entity.SaleLine) error {
	if line.ID == "" {
		line.ID = uuid.New().String()
	}
	query := `
		INSERT INTO sale_lines (id, sale_id, product_id, quantity, unit_sale_price, purchase_price, subtotal, margin)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		line.ID, line.SaleID, line.ProductID, line.Quantity,
		line.UnitSalePrice, line.PurchasePrice, line.Subtotal, line.Margin,
	)
	if err != nil {
		return fmt.Errorf("insert sale line: %w", err)
	}
	return nil
}

// ListLines obtiene las líneas de una venta.
func (r *SaleRepo) ListLines(saleID string) ([]*entity.SaleLine, error) {
	query := `
		SELECT id, sale_id, product_id, quantity, unit_sale_price, purchase_price, subtotal, margin
		FROM sale_lines WHERE sale_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale lines: %w", err)
	}
	defer rows.Close()
	var list []*entity.SaleLine
	for rows.Next() {
		var l entity.SaleLine
		if err := rows.Scan(&l.ID, &l.SaleID, &l.ProductID, &l.Quantity,
			&l.UnitSalePrice, &l.PurchasePrice, &l.Subtotal, &l.Margin); err != nil {
			return nil, fmt.Errorf("scan sale line: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// ListLinesWithProduct obtiene las líneas con el nombre del producto (detalle de venta).
func (r *SaleRepo) ListLinesWithProduct(saleID string) ([]*repository.SaleLineWithProduct, error) {
	query := `
		SELECT l.id, l.sale_id, l.product_id, l.quantity, l.unit_sale_price, l.purchase_price, l.subtotal, l.margin,
		       COALESCE(p.name, '')
		FROM sale_lines l
		LEFT JOIN products p ON p.id = l.product_id
		WHERE l.sale_id = $1 ORDER BY l.id`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale lines: %w", err)
	}
	defer rows.Close()
	var list []*repository.SaleLineWithProduct
	for rows.Next() {
		var l repository.SaleLineWithProduct
		if err := rows.Scan(&l.ID, &l.SaleID, &l.ProductID, &l.Quantity,
			&l.UnitSalePrice, &l.PurchasePrice, &l.Subtotal, &l.Margin, &l.ProductName); err != nil {
			return nil, fmt.Errorf("scan sale line: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// DeleteLines borra todas las líneas de una venta.
func (r *SaleRepo) DeleteLines(saleID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM sale_lines WHERE sale_id = $1`, saleID)
	if err != nil {
		return fmt.Errorf("delete sale lines: %w", err)
	}
	return nil
}

func (r *SaleRepo) scanOne(row pgx.Row, op string) (*entity.Sale, error) {
	var s entity.Sale
	err := row.Scan(
		&s.ID, &s.ClientID, &s.Date, &s.NetTotal, &s.TaxTotal,
		&s.GrandTotal, &s.Paid, &s.Outstanding, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &s, nil
}
