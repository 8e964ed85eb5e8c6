package repository

import (
	"context"

	"clinic-records-api/internal/domain/entity"
)

type LabTestRepository interface {
	FindAll(ctx context.Context) ([]entity.LabTest, error)
	FindByID(ctx context.Context, id string) (*entity.LabTest, error)
	FindByReference(ctx context.Context, reference string) (*entity.LabTest, error)
	// FindOneByUser returns any one test owned by userID.
	FindOneByUser(ctx context.Context, userID string) (*entity.LabTest, error)
	Create(ctx context.Context, test *entity.LabTest) error
	Update(ctx context.Context, test *entity.LabTest) error
	Delete(ctx context.Context, id string) error
}
