package mongodb

import (
	"context"
	"fmt"
	"strings"

	"clinic-records-api/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	usersCollection = "users"
	testsCollection = "tests"

	indexUsersIDNumber  = "users_idNumber_unique"
	indexUsersEmail     = "users_email_unique"
	indexTestsReference = "tests_reference_unique"
	indexTestsUser      = "tests_user"
)

var uniqueIndexes = map[string]string{
	indexUsersIDNumber:  repository.FieldIDNumber,
	indexUsersEmail:     repository.FieldEmail,
	indexTestsReference: repository.FieldReference,
}

// EnsureIndexes creates the indexes the repositories rely on. Creating an
// index that already exists with the same definition is a no-op.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(usersCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "idNumber", Value: 1}},
			Options: options.Index().SetName(indexUsersIDNumber).SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName(indexUsersEmail).SetUnique(true),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create users indexes: %w", err)
	}

	_, err = db.Collection(testsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "reference", Value: 1}},
			Options: options.Index().SetName(indexTestsReference).SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "user", Value: 1}},
			Options: options.Index().SetName(indexTestsUser),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create tests indexes: %w", err)
	}
	return nil
}

// NewStore serves both repositories from the named database. Close
// disconnects client.
func NewStore(client *mongo.Client, database string) *repository.Store {
	db := client.Database(database)
	return &repository.Store{
		Users:    NewUserRepository(db),
		LabTests: NewLabTestRepository(db),
		Ping: func(ctx context.Context) error {
			return client.Ping(ctx, readpref.Primary())
		},
		Close: func(ctx context.Context) error {
			return client.Disconnect(ctx)
		},
	}
}

// translateError turns an E11000 error into a DuplicateKeyError naming the
// field whose index was violated.
func translateError(err error) error {
	if err == nil || !mongo.IsDuplicateKeyError(err) {
		return err
	}
	msg := err.Error()
	for index, field := range uniqueIndexes {
		if strings.Contains(msg, index) {
			return &repository.DuplicateKeyError{Field: field, Err: err}
		}
	}
	return err
}
