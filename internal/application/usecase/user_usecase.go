package usecase

import (
	"github.com/tu-usuario/ventas-pro/internal/application/dto"
	"github.com/tu-usuario/ventas-pro/internal/domain"
	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

// UserUseCase administración de usuarios (solo admin).
type UserUseCase struct {
	repo repository.UserRepository
}

func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List lista todos los usuarios sin exponer hashes.
func (uc *UserUseCase) List() ([]dto.UserResponse, error) {
	users, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	result := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		result = append(result, dto.ToUserResponse(u))
	}
	return result, nil
}

// UpdateRole cambia el rol de un usuario. Un admin no puede degradarse a sí
// mismo: siempre debe quedar al menos su propia cuenta con acceso total.
func (uc *UserUseCase) UpdateRole(actorID, targetID, role string) error {
	if role != entity.RoleAdmin && role != entity.RoleVendedor {
		return domain.ErrInvalidInput
	}
	if actorID == targetID && role != entity.RoleAdmin {
		return domain.ErrForbidden
	}
	return uc.repo.UpdateRole(targetID, role)
}

// Delete elimina un usuario. Un admin puede borrar a cualquier otro usuario,
// incluidos otros admins, pero nunca a sí mismo.
func (uc *UserUseCase) Delete(actorID, targetID string) error {
	if actorID == targetID {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(targetID)
}
