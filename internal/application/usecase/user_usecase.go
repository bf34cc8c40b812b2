package usecase

import (
	"github.com/jhoicas/electrostock-api/internal/application/dto"
	"github.com/jhoicas/electrostock-api/internal/domain/repository"
)

// UserUseCase directorio de usuarios: lecturas para administración y para
// enriquecer registros con nombres de operador/vendedor.
type UserUseCase struct {
	userRepo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo}
}

// List devuelve todos los usuarios sin el hash de password.
func (uc *UserUseCase) List() ([]dto.UserResponse, error) {
	users, err := uc.userRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.UserResponse{
			ID:        u.ID,
			Username:  u.Username,
			Name:      u.Name,
			Role:      u.Role,
			Status:    u.Status,
			CreatedAt: u.CreatedAt,
		})
	}
	return out, nil
}

// GetByID devuelve un usuario o nil si no existe.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	u, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Name:      u.Name,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
	}, nil
}
