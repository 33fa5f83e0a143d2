package dto

// MonthlyPointDTO punto de la serie mensual entradas vs salidas.
type MonthlyPointDTO struct {
	Month     string `json:"month"` // YYYY-MM
	UnitsSold int    `json:"units_sold"`
	UnitsIn   int    `json:"units_in"`
}

// TopProductDTO producto más vendido para el widget del dashboard.
type TopProductDTO struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	UnitsSold   int    `json:"units_sold"`
}

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
type DashboardSummaryDTO struct {
	TotalProducts   int                `json:"total_products"`
	LowStockCount   int                `json:"low_stock_count"`
	TotalClients    int                `json:"total_clients"`
	TotalSuppliers  int                `json:"total_suppliers"`
	RecentMovements []MovementResponse `json:"recent_movements"`
	TopProducts     []TopProductDTO    `json:"top_products"`
	MonthlySeries   []MonthlyPointDTO  `json:"monthly_series"`
}
