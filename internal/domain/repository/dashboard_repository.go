package repository

import "context"

// TopProductResult producto más vendido (suma de cantidades en líneas de venta).
type TopProductResult struct {
	ProductID   string
	ProductName string
	UnitsSold   int
}

// MonthlyPoint punto de la serie mensual del dashboard.
type MonthlyPoint struct {
	Month     string // YYYY-MM
	UnitsSold int    // cantidades vendidas (líneas de venta)
	UnitsIn   int    // cantidades entradas (movimientos entry)
}

// DashboardRepository consultas de solo lectura para el dashboard.
// Van con contexto porque el caso de uso las lanza en paralelo.
type DashboardRepository interface {
	CountProducts(ctx context.Context) (int, error)
	CountLowStock(ctx context.Context) (int, error)
	CountClients(ctx context.Context) (int, error)
	CountSuppliers(ctx context.Context) (int, error)
	RecentMovements(ctx context.Context, limit int) ([]*MovementWithProduct, error)
	TopProducts(ctx context.Context, limit int) ([]TopProductResult, error)
	MonthlySeries(ctx context.Context, months int) ([]MonthlyPoint, error)
}
