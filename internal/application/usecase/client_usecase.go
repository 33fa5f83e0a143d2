package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/ventas-pro/internal/application/dto"
	"github.com/tu-usuario/ventas-pro/internal/domain"
	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

// ClientUseCase casos de uso CRUD para clientes.
type ClientUseCase struct {
	repo repository.ClientRepository
}

func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

func (uc *ClientUseCase) Create(in dto.ContactRequest) (*dto.ClientResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	client := &entity.Client{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Phone:     in.Phone,
		Email:     in.Email,
		Address:   in.Address,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(client); err != nil {
		return nil, err
	}
	resp := dto.ToClientResponse(client)
	return &resp, nil
}

func (uc *ClientUseCase) GetByID(id string) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.ToClientResponse(client)
	return &resp, nil
}

// List lista clientes, filtrables por nombre.
func (uc *ClientUseCase) List(nameFilter string) ([]dto.ClientResponse, error) {
	clients, err := uc.repo.List(nameFilter)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ClientResponse, 0, len(clients))
	for _, c := range clients {
		result = append(result, dto.ToClientResponse(c))
	}
	return result, nil
}

func (uc *ClientUseCase) Update(id string, in dto.ContactRequest) (*dto.ClientResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	client.Name = in.Name
	client.Phone = in.Phone
	client.Email = in.Email
	client.Address = in.Address
	if err := uc.repo.Update(client); err != nil {
		return nil, err
	}
	resp := dto.ToClientResponse(client)
	return &resp, nil
}

func (uc *ClientUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}
