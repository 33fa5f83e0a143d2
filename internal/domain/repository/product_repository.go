package repository

import "github.com/tu-usuario/ventas-pro/internal/domain/entity"

// ProductRepository puerto de persistencia para productos.
// GetForUpdate bloquea la fila (SELECT ... FOR UPDATE) y solo tiene sentido
// dentro de una transacción; serializa a los mutadores concurrentes del
// mismo producto.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetForUpdate(id string) (*entity.Product, error)
	List() ([]*entity.Product, error)
	ListLowStock() ([]*entity.Product, error)
	Update(product *entity.Product) error
	UpdateStock(id string, qty int) error
	Delete(id string) error
}
