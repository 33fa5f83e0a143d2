package stock

import (
	"context"

	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

// TxRunner abre una transacción y ejecuta fn con repos atados a ella.
// Commit si fn retorna nil; Rollback si retorna error.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
	) error) error
}
