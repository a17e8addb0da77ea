package service

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"HeritagePartage/internal/model"
	"HeritagePartage/internal/repo"

	"gorm.io/gorm"
)

// UserService owns the identification rules: first names are unique
// case-insensitively, roles come from a closed set, users never change.
type UserService struct {
	users repo.UserRepository
}

func NewUserService(users repo.UserRepository) *UserService {
	return &UserService{users: users}
}

// List returns all members sorted by name, case-insensitively.
func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}

// Get returns one member or ErrNotFound.
func (s *UserService) Get(ctx context.Context, id int64) (*model.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

// Create registers a new member. The name must be 2..50 runes after
// trimming and free of case-insensitive duplicates.
func (s *UserService) Create(ctx context.Context, name, role string) (*model.User, error) {
	name = strings.TrimSpace(name)
	if n := utf8.RuneCountInString(name); n < 2 || n > 50 {
		return nil, Validationf("le prénom doit faire entre 2 et 50 caractères")
	}
	if role != model.RoleParent && role != model.RoleEnfant {
		return nil, Validationf("rôle invalide: %q", role)
	}

	if _, err := s.users.GetByName(ctx, name); err == nil {
		return nil, ErrConflict
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return s.users.CreateUser(ctx, &model.User{Name: name, Role: role})
}
