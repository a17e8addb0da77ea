package repo

import (
	"context"

	"HeritagePartage/internal/model"

	"gorm.io/gorm"
)

// UserRepository is the minimal contract the service layer needs for users.
type UserRepository interface {
	// CreateUser inserts a new user and returns it with the assigned ID.
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)

	// GetByID returns the user or gorm.ErrRecordNotFound.
	GetByID(ctx context.Context, id int64) (*model.User, error)

	// GetByName finds a user by name, case-insensitively.
	GetByName(ctx context.Context, name string) (*model.User, error)

	// List returns all users sorted by name, case-insensitively.
	List(ctx context.Context) ([]model.User, error)
}

type userRepo struct {
	db *gorm.DB
}

// NewUserRepository creates the gorm-backed user repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) GetByName(ctx context.Context, name string) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).
		Order("LOWER(name) ASC").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}
