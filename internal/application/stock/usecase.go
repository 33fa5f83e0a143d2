package stock

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/ventas-pro/internal/application/dto"
	"github.com/tu-usuario/ventas-pro/internal/domain"
	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

// UseCase registra, corrige y elimina movimientos de stock de forma
// transaccional, con bloqueo de fila del producto (SELECT FOR UPDATE).
type UseCase struct {
	txRunner TxRunner
	movRepo  repository.StockMovementRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner TxRunner, movRepo repository.StockMovementRepository) *UseCase {
	return &UseCase{txRunner: txRunner, movRepo: movRepo}
}

// AdjustStock registra un movimiento manual (entry o exit) y actualiza el
// stock del producto en la misma transacción.
func (uc *UseCase) AdjustStock(ctx context.Context, input dto.AdjustStockRequest) (*dto.AdjustStockResponse, error) {
	if input.ProductID == "" || input.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if input.Type != entity.MovementTypeEntry && input.Type != entity.MovementTypeExit {
		return nil, domain.ErrInvalidInput
	}

	var resp *dto.AdjustStockResponse
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
	) error {
		r, err := uc.AdjustStockInTx(productRepo, movRepo, input)
		if err != nil {
			return err
		}
		resp = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// AdjustStockInTx aplica el ajuste con los repos ya atados a una transacción
// abierta. Bloquea la fila del producto, valida el stock resultante, escribe
// el nuevo stock y persiste el movimiento.
func (uc *UseCase) AdjustStockInTx(
	productRepo repository.ProductRepository,
	movRepo repository.StockMovementRepository,
	input dto.AdjustStockRequest,
) (*dto.AdjustStockResponse, error) {
	product, err := productRepo.GetForUpdate(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}

	movement := &entity.StockMovement{
		ProductID:     input.ProductID,
		Type:          input.Type,
		Quantity:      input.Quantity,
		Counterpart:   input.Counterpart,
		Reason:        input.Reason,
		Notes:         input.Notes,
		PurchasePrice: input.PurchasePrice,
		CreatedAt:     time.Now(),
	}

	oldQty := product.StockQty
	newQty := oldQty + movement.SignedDelta()
	if newQty < 0 {
		return nil, fmt.Errorf("%w: stock %d, salida %d", domain.ErrInsufficientStock, oldQty, input.Quantity)
	}

	if err := productRepo.UpdateStock(product.ID, newQty); err != nil {
		return nil, err
	}
	if err := movRepo.Create(movement); err != nil {
		return nil, err
	}

	return &dto.AdjustStockResponse{
		MovementID: movement.ID,
		ProductID:  product.ID,
		OldQty:     oldQty,
		NewQty:     newQty,
	}, nil
}

// UpdateMovement corrige un movimiento existente. Revierte el efecto del
// movimiento original sobre el stock y aplica el nuevo, todo bajo el
// candado de la fila del producto.
func (uc *UseCase) UpdateMovement(ctx context.Context, movementID string, input dto.UpdateMovementRequest) error {
	if input.Quantity <= 0 {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
	) error {
		movement, err := movRepo.GetByID(movementID)
		if err != nil {
			return err
		}
		if movement == nil {
			return domain.ErrMovementNotFound
		}

		product, err := productRepo.GetForUpdate(movement.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}

		// deshacer el delta original y aplicar el corregido
		updated := *movement
		updated.Quantity = input.Quantity
		updated.Reason = input.Reason
		updated.Notes = input.Notes

		newQty := product.StockQty - movement.SignedDelta() + updated.SignedDelta()
		if newQty < 0 {
			return fmt.Errorf("%w: la corrección dejaría el stock en %d", domain.ErrInsufficientStock, newQty)
		}

		if err := productRepo.UpdateStock(product.ID, newQty); err != nil {
			return err
		}
		return movRepo.Update(&updated)
	})
}

// DeleteMovement elimina un movimiento y revierte su efecto sobre el stock.
func (uc *UseCase) DeleteMovement(ctx context.Context, movementID string) error {
	return uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
	) error {
		movement, err := movRepo.GetByID(movementID)
		if err != nil {
			return err
		}
		if movement == nil {
			return domain.ErrMovementNotFound
		}

		product, err := productRepo.GetForUpdate(movement.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}

		newQty := product.StockQty - movement.SignedDelta()
		if newQty < 0 {
			return fmt.Errorf("%w: revertir la entrada dejaría el stock en %d", domain.ErrInsufficientStock, newQty)
		}

		if err := productRepo.UpdateStock(product.ID, newQty); err != nil {
			return err
		}
		return movRepo.Delete(movementID)
	})
}

// History devuelve el historial de movimientos con filtros opcionales.
func (uc *UseCase) History(query dto.MovementHistoryQuery) ([]dto.MovementResponse, error) {
	filter := repository.MovementFilter{
		Type:      query.Type,
		ProductID: query.ProductID,
	}
	if query.From != "" {
		t, err := time.Parse("2006-01-02", query.From)
		if err != nil {
			return nil, fmt.Errorf("%w: fecha desde inválida", domain.ErrInvalidInput)
		}
		filter.From = &t
	}
	if query.To != "" {
		t, err := time.Parse("2006-01-02", query.To)
		if err != nil {
			return nil, fmt.Errorf("%w: fecha hasta inválida", domain.ErrInvalidInput)
		}
		filter.To = &t
	}

	movements, err := uc.movRepo.List(filter)
	if err != nil {
		return nil, err
	}
	result := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		result = append(result, dto.ToMovementResponse(m))
	}
	return result, nil
}
