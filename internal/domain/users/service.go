package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"pets-users-service/internal/ports/password"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo   Repository
	hasher password.Hasher
	tokens TokenStore
	now    func() time.Time
}

func NewService(repo Repository, hasher password.Hasher, tokens TokenStore) *Service {
	return &Service{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
		now:    time.Now,
	}
}

type CreateInput struct {
	Username    string
	Password    string
	Email       string
	DNI         string
	FullName    string
	PhoneNumber string
	Status      string
}

func (in CreateInput) validate() error {
	if strings.TrimSpace(in.Username) == "" {
		return ErrInvalidInput
	}
	if strings.TrimSpace(in.Password) == "" {
		return ErrInvalidInput
	}
	if !validEmail(in.Email) {
		return ErrInvalidInput
	}
	if strings.TrimSpace(in.DNI) == "" {
		return ErrInvalidInput
	}
	if strings.TrimSpace(in.FullName) == "" {
		return ErrInvalidInput
	}
	if strings.TrimSpace(in.PhoneNumber) == "" {
		return ErrInvalidInput
	}
	return nil
}

// toUser hashea el password de entrada; el plaintext nunca llega al repositorio.
func (s *Service) toUser(id int64, in CreateInput) (User, error) {
	digest, err := s.hasher.Hash(in.Password)
	if err != nil {
		return User{}, err
	}

	status := strings.TrimSpace(in.Status)
	if status == "" {
		status = StatusPorVerificar
	}

	return User{
		ID:          id,
		Username:    strings.TrimSpace(in.Username),
		Password:    digest,
		Email:       strings.TrimSpace(in.Email),
		DNI:         strings.TrimSpace(in.DNI),
		FullName:    strings.TrimSpace(in.FullName),
		PhoneNumber: strings.TrimSpace(in.PhoneNumber),
		Status:      status,
	}, nil
}

func (s *Service) Create(ctx context.Context, in CreateInput) (User, error) {
	if err := in.validate(); err != nil {
		return User{}, err
	}

	u, err := s.toUser(0, in)
	if err != nil {
		return User{}, err
	}
	return s.repo.Create(ctx, u)
}

func (s *Service) GetByID(ctx context.Context, id int64) (User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetAll(ctx context.Context) ([]User, error) {
	return s.repo.GetAll(ctx)
}

// Update reemplaza el registro completo (full replace, no merge).
// El id viene de la ruta; cualquier id del body se ignora.
func (s *Service) Update(ctx context.Context, id int64, in CreateInput) (User, error) {
	if err := in.validate(); err != nil {
		return User{}, err
	}

	u, err := s.toUser(id, in)
	if err != nil {
		return User{}, err
	}
	return s.repo.Update(ctx, u)
}

// PatchFields aplica solo los campos presentes; los ausentes quedan intactos.
// Un patch vacío es error del caller y se rechaza en el boundary HTTP,
// no aquí.
func (s *Service) PatchFields(ctx context.Context, id int64, p Patch) (User, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return User{}, err
	}
	return s.repo.Update(ctx, p.apply(current))
}

func (s *Service) Delete(ctx context.Context, id int64) (User, error) {
	return s.repo.Delete(ctx, id)
}

// Count cuenta sobre el snapshot de GetAll; no hay contador mantenido.
func (s *Service) Count(ctx context.Context) (int, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return 0, err
	}
	return len(all), nil
}

// Reset vacía la colección a través del puerto, nunca tocando
// internals del adapter, para que funcione igual en memoria y en Postgres.
func (s *Service) Reset(ctx context.Context) error {
	return s.repo.DeleteAll(ctx)
}
