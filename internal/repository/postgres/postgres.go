package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"clinic-records-api/internal/domain/entity"
	"clinic-records-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Unique constraint names created by AutoMigrate, mapped to the field they
// guard.
var uniqueConstraints = map[string]string{
	"idx_users_id_number": repository.FieldIDNumber,
	"idx_users_email":     repository.FieldEmail,
	"idx_tests_reference": repository.FieldReference,
}

// AutoMigrate creates or updates the users and tests tables.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entity.User{}, &entity.LabTest{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// NewStore wraps an open gorm connection. Close closes the underlying pool.
func NewStore(db *gorm.DB) *repository.Store {
	return &repository.Store{
		Users:    NewUserRepository(db),
		LabTests: NewLabTestRepository(db),
		Ping: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
		Close: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	}
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique violation
// on the specified constraint
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.EqualFold(pgErr.ConstraintName, constraintName) {
			return true
		}
	}
	return false
}

func translateError(err error) error {
	if err == nil {
		return nil
	}
	for constraint, field := range uniqueConstraints {
		if isDuplicateKeyError(err, constraint) {
			return &repository.DuplicateKeyError{Field: field, Err: err}
		}
	}
	return err
}

// validID reports whether id can be compared against a uuid column without
// postgres rejecting the query.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
