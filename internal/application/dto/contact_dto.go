package dto

import (
	"time"

	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
)

// ContactRequest entrada para crear o actualizar un cliente o proveedor.
type ContactRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// ClientResponse salida de un cliente.
type ClientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func ToClientResponse(c *entity.Client) ClientResponse {
	return ClientResponse{
		ID: c.ID, Name: c.Name, Phone: c.Phone,
		Email: c.Email, Address: c.Address, CreatedAt: c.CreatedAt,
	}
}

func ToSupplierResponse(s *entity.Supplier) SupplierResponse {
	return SupplierResponse{
		ID: s.ID, Name: s.Name, Phone: s.Phone,
		Email: s.Email, Address: s.Address, CreatedAt: s.CreatedAt,
	}
}
