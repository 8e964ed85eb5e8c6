package memory

import (
	"context"
	"errors"
	"fmt"

	"clinic-records-api/internal/domain/entity"
	"clinic-records-api/internal/domain/repository"

	"github.com/hashicorp/go-memdb"
)

const (
	usersTable = "users"
	testsTable = "tests"

	indexID        = "id"
	indexIDNumber  = "idNumber"
	indexEmail     = "email"
	indexReference = "reference"
	indexUser      = "user"
)

// errDuplicate is wrapped in repository.DuplicateKeyError; go-memdb does not
// reject duplicates on secondary unique indexes by itself, so every write
// transaction checks them before inserting.
var errDuplicate = errors.New("unique index violation")

func schema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			usersTable: {
				Name: usersTable,
				Indexes: map[string]*memdb.IndexSchema{
					indexID: {
						Name:    indexID,
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "ID"},
					},
					indexIDNumber: {
						Name:    indexIDNumber,
						Unique:  true,
						Indexer: &memdb.IntFieldIndex{Field: "IDNumber"},
					},
					indexEmail: {
						Name:         indexEmail,
						Unique:       true,
						AllowMissing: true,
						Indexer:      &memdb.StringFieldIndex{Field: "Email"},
					},
				},
			},
			testsTable: {
				Name: testsTable,
				Indexes: map[string]*memdb.IndexSchema{
					indexID: {
						Name:    indexID,
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "ID"},
					},
					indexReference: {
						Name:         indexReference,
						Unique:       true,
						AllowMissing: true,
						Indexer:      &memdb.StringFieldIndex{Field: "Reference"},
					},
					indexUser: {
						Name:         indexUser,
						AllowMissing: true,
						Indexer:      &memdb.StringFieldIndex{Field: "UserID"},
					},
				},
			},
		},
	}
}

// NewStore returns a store kept entirely in process memory. Data is lost when
// the process exits.
func NewStore() (*repository.Store, error) {
	db, err := memdb.NewMemDB(schema())
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory database: %w", err)
	}

	return &repository.Store{
		Users:    NewUserRepository(db),
		LabTests: NewLabTestRepository(db),
		Ping:     func(ctx context.Context) error { return nil },
		Close:    func(ctx context.Context) error { return nil },
	}, nil
}

// checkUnique fails when another record (by id) already holds value in index.
func checkUnique(txn *memdb.Txn, table, index, field, id string, value interface{}) error {
	existing, err := txn.First(table, index, value)
	if err != nil {
		return err
	}
	if existing == nil {
		return nil
	}
	if recordID(existing) == id {
		return nil
	}
	return &repository.DuplicateKeyError{Field: field, Err: errDuplicate}
}

func recordID(obj interface{}) string {
	switch v := obj.(type) {
	case *entity.User:
		return v.ID
	case *entity.LabTest:
		return v.ID
	}
	return ""
}
