package repository

import (
	"context"

	"clinic-records-api/internal/domain/entity"
)

// UserRepository is the user half of the store. Finders return (nil, nil)
// when nothing matches.
type UserRepository interface {
	FindAll(ctx context.Context) ([]entity.User, error)
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByIDNumber(ctx context.Context, idNumber int64) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id string) error
}
