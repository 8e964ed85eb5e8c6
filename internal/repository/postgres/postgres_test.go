package postgres

import (
	"errors"
	"fmt"
	"testing"

	"clinic-records-api/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateError_UniqueViolation(t *testing.T) {
	cases := map[string]string{
		"idx_users_id_number": repository.FieldIDNumber,
		"idx_users_email":     repository.FieldEmail,
		"idx_tests_reference": repository.FieldReference,
	}

	for constraint, field := range cases {
		t.Run(constraint, func(t *testing.T) {
			pgErr := &pgconn.PgError{Code: "23505", ConstraintName: constraint}
			err := translateError(fmt.Errorf("insert: %w", pgErr))

			var dup *repository.DuplicateKeyError
			require.True(t, errors.As(err, &dup))
			assert.Equal(t, field, dup.Field)
			assert.ErrorIs(t, err, pgErr)
		})
	}
}

func TestTranslateError_PassThrough(t *testing.T) {
	assert.NoError(t, translateError(nil))

	fk := &pgconn.PgError{Code: "23503", ConstraintName: "idx_users_email"}
	assert.Same(t, error(fk), translateError(fk))

	other := errors.New("connection reset")
	assert.Same(t, other, translateError(other))
}

func TestValidID(t *testing.T) {
	assert.True(t, validID("6f1c1f0e-8f0a-4d7e-9b1e-2f4b0f6a9c11"))
	assert.False(t, validID("64b7f0c2e1a2b3c4d5e6f7a8"))
	assert.False(t, validID(""))
}
