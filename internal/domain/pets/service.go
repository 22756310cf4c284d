package pets

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	Name      string
	Type      string
	Age       int
	OwnerName string
}

// validate aplica las reglas del modelo antes de tocar el repositorio:
// un Pet inválido nunca llega al puerto.
func (in CreateInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return ErrInvalidInput
	}
	if !ValidType(Type(in.Type)) {
		return ErrInvalidInput
	}
	if in.Age <= 0 {
		return ErrInvalidInput
	}
	if strings.TrimSpace(in.OwnerName) == "" {
		return ErrInvalidInput
	}
	return nil
}

func (in CreateInput) toPet(id int64) Pet {
	return Pet{
		ID:        id,
		Name:      strings.TrimSpace(in.Name),
		Type:      Type(in.Type),
		Age:       in.Age,
		OwnerName: strings.TrimSpace(in.OwnerName),
	}
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	if err := in.validate(); err != nil {
		return Pet{}, err
	}
	return s.repo.Create(ctx, in.toPet(0))
}

func (s *Service) GetByID(ctx context.Context, id int64) (Pet, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetAll(ctx context.Context) ([]Pet, error) {
	return s.repo.GetAll(ctx)
}

// Update reemplaza el registro completo (full replace, no merge).
// El id viene de la ruta; cualquier id del body se ignora.
func (s *Service) Update(ctx context.Context, id int64, in CreateInput) (Pet, error) {
	if err := in.validate(); err != nil {
		return Pet{}, err
	}
	return s.repo.Update(ctx, in.toPet(id))
}

// Delete elimina y devuelve el registro eliminado.
func (s *Service) Delete(ctx context.Context, id int64) (Pet, error) {
	return s.repo.Delete(ctx, id)
}
