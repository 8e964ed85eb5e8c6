package memory

import (
	"context"
	"sort"
	"time"

	"clinic-records-api/internal/domain/entity"
	domainRepo "clinic-records-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/hashicorp/go-memdb"
)

type labTestRepository struct {
	db *memdb.MemDB
}

func NewLabTestRepository(db *memdb.MemDB) domainRepo.LabTestRepository {
	return &labTestRepository{db: db}
}

func (r *labTestRepository) FindAll(ctx context.Context) ([]entity.LabTest, error) {
	txn := r.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(testsTable, indexID)
	if err != nil {
		return nil, err
	}

	var tests []entity.LabTest
	for obj := it.Next(); obj != nil; obj = it.Next() {
		tests = append(tests, *obj.(*entity.LabTest).Clone())
	}
	sort.SliceStable(tests, func(i, j int) bool {
		return tests[i].CreatedAt.Before(tests[j].CreatedAt)
	})
	return tests, nil
}

func (r *labTestRepository) FindByID(ctx context.Context, id string) (*entity.LabTest, error) {
	return r.first(indexID, id)
}

func (r *labTestRepository) FindByReference(ctx context.Context, reference string) (*entity.LabTest, error) {
	return r.first(indexReference, reference)
}

func (r *labTestRepository) FindOneByUser(ctx context.Context, userID string) (*entity.LabTest, error) {
	return r.first(indexUser, userID)
}

func (r *labTestRepository) first(index string, value interface{}) (*entity.LabTest, error) {
	txn := r.db.Txn(false)
	defer txn.Abort()

	obj, err := txn.First(testsTable, index, value)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, nil
	}
	return obj.(*entity.LabTest).Clone(), nil
}

func (r *labTestRepository) Create(ctx context.Context, test *entity.LabTest) error {
	txn := r.db.Txn(true)
	defer txn.Abort()

	test.ID = uuid.NewString()
	if err := checkUnique(txn, testsTable, indexReference, domainRepo.FieldReference, test.ID, test.Reference); err != nil {
		return err
	}

	now := time.Now()
	test.CreatedAt = now
	test.UpdatedAt = now

	if err := txn.Insert(testsTable, test.Clone()); err != nil {
		return err
	}
	txn.Commit()
	return nil
}

func (r *labTestRepository) Update(ctx context.Context, test *entity.LabTest) error {
	txn := r.db.Txn(true)
	defer txn.Abort()

	existing, err := txn.First(testsTable, indexID, test.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return domainRepo.ErrNotFound
	}
	if err := checkUnique(txn, testsTable, indexReference, domainRepo.FieldReference, test.ID, test.Reference); err != nil {
		return err
	}

	test.CreatedAt = existing.(*entity.LabTest).CreatedAt
	test.UpdatedAt = time.Now()

	if err := txn.Insert(testsTable, test.Clone()); err != nil {
		return err
	}
	txn.Commit()
	return nil
}

func (r *labTestRepository) Delete(ctx context.Context, id string) error {
	txn := r.db.Txn(true)
	defer txn.Abort()

	n, err := txn.DeleteAll(testsTable, indexID, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return domainRepo.ErrNotFound
	}
	txn.Commit()
	return nil
}
