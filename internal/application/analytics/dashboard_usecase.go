// Package analytics contiene el caso de uso del dashboard de la tienda.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/ventas-pro/internal/application/dto"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
	"github.com/tu-usuario/ventas-pro/internal/infrastructure/cache"
	"github.com/tu-usuario/ventas-pro/pkg/logger"
)

const (
	dashboardRecentMovements = 5 // movimientos en el widget de actividad
	dashboardTopProducts     = 5  // productos en el ranking de ventas
	dashboardSeriesMonths    = 6  // meses de la serie entradas vs salidas

	summaryCacheKey = "dashboard:summary"
	summaryCacheTTL = 60 * time.Second
)

// DashboardUseCase construye el resumen del dashboard: contadores, actividad
// reciente, top de ventas y serie mensual. Cachea el resultado (cache-aside)
// porque son las consultas más caras y el dashboard se consulta a cada rato.
type DashboardUseCase struct {
	dashRepo repository.DashboardRepository
	cache    cache.SummaryCache
	log      *logger.Logger
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(dashRepo repository.DashboardRepository, summaryCache cache.SummaryCache, log *logger.Logger) *DashboardUseCase {
	return &DashboardUseCase{dashRepo: dashRepo, cache: summaryCache, log: log}
}

// GetSummary devuelve el resumen, de caché si está fresco.
//
// Las consultas van en paralelo en cuatro goroutines:
//  1. contadores (productos, stock bajo, clientes, proveedores)
//  2. movimientos recientes
//  3. top de productos vendidos
//  4. serie mensual entradas vs salidas
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	if cached, ok, err := uc.cache.Get(ctx, summaryCacheKey); err == nil && ok {
		return cached, nil
	} else if err != nil {
		uc.log.Warn().Err(err).Msg("dashboard: caché no disponible, consultando DB")
	}

	type countsResult struct {
		products, lowStock, clients, suppliers int
		err                                    error
	}
	type movementsResult struct {
		movements []*repository.MovementWithProduct
		err       error
	}
	type topResult struct {
		top []repository.TopProductResult
		err error
	}
	type seriesResult struct {
		series []repository.MonthlyPoint
		err    error
	}

	countsCh := make(chan countsResult, 1)
	movementsCh := make(chan movementsResult, 1)
	topCh := make(chan topResult, 1)
	seriesCh := make(chan seriesResult, 1)

	go func() {
		var r countsResult
		if r.products, r.err = uc.dashRepo.CountProducts(ctx); r.err != nil {
			countsCh <- r
			return
		}
		if r.lowStock, r.err = uc.dashRepo.CountLowStock(ctx); r.err != nil {
			countsCh <- r
			return
		}
		if r.clients, r.err = uc.dashRepo.CountClients(ctx); r.err != nil {
			countsCh <- r
			return
		}
		r.suppliers, r.err = uc.dashRepo.CountSuppliers(ctx)
		countsCh <- r
	}()
	go func() {
		movements, err := uc.dashRepo.RecentMovements(ctx, dashboardRecentMovements)
		movementsCh <- movementsResult{movements, err}
	}()
	go func() {
		top, err := uc.dashRepo.TopProducts(ctx, dashboardTopProducts)
		topCh <- topResult{top, err}
	}()
	go func() {
		series, err := uc.dashRepo.MonthlySeries(ctx, dashboardSeriesMonths)
		seriesCh <- seriesResult{series, err}
	}()

	counts := <-countsCh
	movements := <-movementsCh
	top := <-topCh
	series := <-seriesCh

	if counts.err != nil {
		return nil, fmt.Errorf("dashboard: contadores: %w", counts.err)
	}
	if movements.err != nil {
		return nil, fmt.Errorf("dashboard: movimientos recientes: %w", movements.err)
	}
	if top.err != nil {
		return nil, fmt.Errorf("dashboard: top productos: %w", top.err)
	}
	if series.err != nil {
		return nil, fmt.Errorf("dashboard: serie mensual: %w", series.err)
	}

	summary := &dto.DashboardSummaryDTO{
		TotalProducts:   counts.products,
		LowStockCount:   counts.lowStock,
		TotalClients:    counts.clients,
		TotalSuppliers:  counts.suppliers,
		RecentMovements: make([]dto.MovementResponse, 0, len(movements.movements)),
		TopProducts:     make([]dto.TopProductDTO, 0, len(top.top)),
		MonthlySeries:   make([]dto.MonthlyPointDTO, 0, len(series.series)),
	}
	for _, m := range movements.movements {
		summary.RecentMovements = append(summary.RecentMovements, dto.ToMovementResponse(m))
	}
	for _, t := range top.top {
		summary.TopProducts = append(summary.TopProducts, dto.TopProductDTO{
			ProductID:   t.ProductID,
			ProductName: t.ProductName,
			UnitsSold:   t.UnitsSold,
		})
	}
	for _, p := range series.series {
		summary.MonthlySeries = append(summary.MonthlySeries, dto.MonthlyPointDTO{
			Month:     p.Month,
			UnitsSold: p.UnitsSold,
			UnitsIn:   p.UnitsIn,
		})
	}

	if err := uc.cache.Set(ctx, summaryCacheKey, summary, summaryCacheTTL); err != nil {
		uc.log.Warn().Err(err).Msg("dashboard: no se pudo escribir la caché")
	}
	return summary, nil
}
