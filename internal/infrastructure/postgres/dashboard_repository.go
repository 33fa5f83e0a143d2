package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas agregadas de solo lectura. Siempre va contra el
// pool (nunca dentro de una tx) porque el caso de uso las lanza en paralelo.
type DashboardRepo struct {
	q Querier
}

func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

func (r *DashboardRepo) CountProducts(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM products`)
}

func (r *DashboardRepo) CountLowStock(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM products WHERE stock_qty <= alert_threshold`)
}

func (r *DashboardRepo) CountClients(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM clients`)
}

func (r *DashboardRepo) CountSuppliers(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM suppliers`)
}

// RecentMovements últimos movimientos de stock con nombre de producto.
func (r *DashboardRepo) RecentMovements(ctx context.Context, limit int) ([]*repository.MovementWithProduct, error) {
	query := `
		SELECT m.id, m.product_id, m.type, m.quantity, m.counterpart, m.reason, m.notes, m.purchase_price, m.created_at,
		       COALESCE(p.name, '')
		FROM stock_movements m
		LEFT JOIN products p ON p.id = m.product_id
		ORDER BY m.created_at DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("recent movements: %w", err)
	}
	defer rows.Close()
	var list []*repository.MovementWithProduct
	for rows.Next() {
		var m repository.MovementWithProduct
		if err := rows.Scan(
			&m.ID, &m.ProductID, &m.Type, &m.Quantity, &m.Counterpart,
			&m.Reason, &m.Notes, &m.PurchasePrice, &m.CreatedAt, &m.ProductName,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// TopProducts productos más vendidos por unidades en líneas de venta.
func (r *DashboardRepo) TopProducts(ctx context.Context, limit int) ([]repository.TopProductResult, error) {
	query := `
		SELECT l.product_id, COALESCE(p.name, ''), SUM(l.quantity)::int
		FROM sale_lines l
		LEFT JOIN products p ON p.id = l.product_id
		GROUP BY l.product_id, p.name
		ORDER BY SUM(l.quantity) DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}
	defer rows.Close()
	var list []repository.TopProductResult
	for rows.Next() {
		var t repository.TopProductResult
		if err := rows.Scan(&t.ProductID, &t.ProductName, &t.UnitsSold); err != nil {
			return nil, fmt.Errorf("scan top product: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// MonthlySeries unidades vendidas vs entradas por mes, ventana de N meses.
func (r *DashboardRepo) MonthlySeries(ctx context.Context, months int) ([]repository.MonthlyPoint, error) {
	query := `
		WITH sold AS (
			SELECT to_char(s.date, 'YYYY-MM') AS month, SUM(l.quantity)::int AS units
			FROM sale_lines l
			JOIN sales s ON s.id = l.sale_id
			WHERE s.date >= date_trunc('month', now()) - ($1 - 1) * interval '1 month'
			GROUP BY 1
		), entered AS (
			SELECT to_char(created_at, 'YYYY-MM') AS month, SUM(quantity)::int AS units
			FROM stock_movements
			WHERE type = 'entry'
			  AND created_at >= date_trunc('month', now()) - ($1 - 1) * interval '1 month'
			GROUP BY 1
		)
		SELECT COALESCE(sold.month, entered.month),
		       COALESCE(sold.units, 0),
		       COALESCE(entered.units, 0)
		FROM sold
		FULL OUTER JOIN entered ON entered.month = sold.month
		ORDER BY 1`
	rows, err := r.q.Query(ctx, query, months)
	if err != nil {
		return nil, fmt.Errorf("monthly series: %w", err)
	}
	defer rows.Close()
	var list []repository.MonthlyPoint
	for rows.Next() {
		var p repository.MonthlyPoint
		if err := rows.Scan(&p.Month, &p.UnitsSold, &p.UnitsIn); err != nil {
			return nil, fmt.Errorf("scan monthly point: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *DashboardRepo) count(ctx context.Context, query string) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("dashboard count: %w", err)
	}
	return n, nil
}
