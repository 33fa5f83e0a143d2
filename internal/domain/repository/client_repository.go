package repository

import "github.com/tu-usuario/ventas-pro/internal/domain/entity"

// ClientRepository puerto de persistencia para clientes.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	List(nameFilter string) ([]*entity.Client, error)
	Update(client *entity.Client) error
	Delete(id string) error
}
