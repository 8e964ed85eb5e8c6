package postgres

import (
	"context"
	"errors"

	"clinic-records-api/internal/domain/entity"
	domainRepo "clinic-records-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type labTestRepository struct {
	db *gorm.DB
}

func NewLabTestRepository(db *gorm.DB) domainRepo.LabTestRepository {
	return &labTestRepository{db: db}
}

func (r *labTestRepository) FindAll(ctx context.Context) ([]entity.LabTest, error) {
	var tests []entity.LabTest
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&tests).Error
	return tests, err
}

func (r *labTestRepository) FindByID(ctx context.Context, id string) (*entity.LabTest, error) {
	if !validID(id) {
		return nil, nil
	}
	return r.first(ctx, "id = ?", id)
}

func (r *labTestRepository) FindByReference(ctx context.Context, reference string) (*entity.LabTest, error) {
	return r.first(ctx, "reference = ?", reference)
}

func (r *labTestRepository) FindOneByUser(ctx context.Context, userID string) (*entity.LabTest, error) {
	if !validID(userID) {
		return nil, nil
	}
	return r.first(ctx, "user_id = ?", userID)
}

func (r *labTestRepository) first(ctx context.Context, query string, arg interface{}) (*entity.LabTest, error) {
	var test entity.LabTest
	err := r.db.WithContext(ctx).Where(query, arg).First(&test).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &test, nil
}

func (r *labTestRepository) Create(ctx context.Context, test *entity.LabTest) error {
	test.ID = uuid.NewString()
	return translateError(r.db.WithContext(ctx).Create(test).Error)
}

func (r *labTestRepository) Update(ctx context.Context, test *entity.LabTest) error {
	if !validID(test.ID) {
		return domainRepo.ErrNotFound
	}
	result := r.db.WithContext(ctx).
		Model(&entity.LabTest{}).
		Where("id = ?", test.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(test)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainRepo.ErrNotFound
	}
	return nil
}

func (r *labTestRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return domainRepo.ErrNotFound
	}
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.LabTest{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainRepo.ErrNotFound
	}
	return nil
}
