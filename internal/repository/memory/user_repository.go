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

type userRepository struct {
	db *memdb.MemDB
}

func NewUserRepository(db *memdb.MemDB) domainRepo.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindAll(ctx context.Context) ([]entity.User, error) {
	txn := r.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(usersTable, indexID)
	if err != nil {
		return nil, err
	}

	var users []entity.User
	for obj := it.Next(); obj != nil; obj = it.Next() {
		users = append(users, *obj.(*entity.User).Clone())
	}
	sort.SliceStable(users, func(i, j int) bool {
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})
	return users, nil
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	return r.first(indexID, id)
}

func (r *userRepository) FindByIDNumber(ctx context.Context, idNumber int64) (*entity.User, error) {
	return r.first(indexIDNumber, idNumber)
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.first(indexEmail, email)
}

func (r *userRepository) first(index string, value interface{}) (*entity.User, error) {
	txn := r.db.Txn(false)
	defer txn.Abort()

	obj, err := txn.First(usersTable, index, value)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, nil
	}
	return obj.(*entity.User).Clone(), nil
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	txn := r.db.Txn(true)
	defer txn.Abort()

	user.ID = uuid.NewString()
	if err := r.checkUnique(txn, user); err != nil {
		return err
	}

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	user.ApplyDefaults()

	if err := txn.Insert(usersTable, user.Clone()); err != nil {
		return err
	}
	txn.Commit()
	return nil
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	txn := r.db.Txn(true)
	defer txn.Abort()

	existing, err := txn.First(usersTable, indexID, user.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return domainRepo.ErrNotFound
	}
	if err := r.checkUnique(txn, user); err != nil {
		return err
	}

	user.CreatedAt = existing.(*entity.User).CreatedAt
	user.UpdatedAt = time.Now()
	user.ApplyDefaults()

	if err := txn.Insert(usersTable, user.Clone()); err != nil {
		return err
	}
	txn.Commit()
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	txn := r.db.Txn(true)
	defer txn.Abort()

	n, err := txn.DeleteAll(usersTable, indexID, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return domainRepo.ErrNotFound
	}
	txn.Commit()
	return nil
}

func (r *userRepository) checkUnique(txn *memdb.Txn, user *entity.User) error {
	if err := checkUnique(txn, usersTable, indexIDNumber, domainRepo.FieldIDNumber, user.ID, user.IDNumber); err != nil {
		return err
	}
	return checkUnique(txn, usersTable, indexEmail, domainRepo.FieldEmail, user.ID, user.Email)
}
