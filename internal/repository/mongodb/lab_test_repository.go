package mongodb

import (
	"context"
	"errors"
	"time"

	"clinic-records-api/internal/domain/entity"
	domainRepo "clinic-records-api/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type labTestRepository struct {
	coll *mongo.Collection
}

func NewLabTestRepository(db *mongo.Database) domainRepo.LabTestRepository {
	return &labTestRepository{coll: db.Collection(testsCollection)}
}

func (r *labTestRepository) FindAll(ctx context.Context) ([]entity.LabTest, error) {
	cursor, err := r.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, err
	}

	var tests []entity.LabTest
	if err := cursor.All(ctx, &tests); err != nil {
		return nil, err
	}
	return tests, nil
}

func (r *labTestRepository) FindByID(ctx context.Context, id string) (*entity.LabTest, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *labTestRepository) FindByReference(ctx context.Context, reference string) (*entity.LabTest, error) {
	return r.findOne(ctx, bson.M{"reference": reference})
}

func (r *labTestRepository) FindOneByUser(ctx context.Context, userID string) (*entity.LabTest, error) {
	return r.findOne(ctx, bson.M{"user": userID})
}

func (r *labTestRepository) findOne(ctx context.Context, filter bson.M) (*entity.LabTest, error) {
	var test entity.LabTest
	err := r.coll.FindOne(ctx, filter).Decode(&test)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &test, nil
}

func (r *labTestRepository) Create(ctx context.Context, test *entity.LabTest) error {
	now := time.Now().UTC()
	test.ID = primitive.NewObjectID().Hex()
	test.CreatedAt = now
	test.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, test)
	return translateError(err)
}

func (r *labTestRepository) Update(ctx context.Context, test *entity.LabTest) error {
	test.UpdatedAt = time.Now().UTC()

	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": test.ID}, test)
	if err != nil {
		return translateError(err)
	}
	if result.MatchedCount == 0 {
		return domainRepo.ErrNotFound
	}
	return nil
}

func (r *labTestRepository) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return domainRepo.ErrNotFound
	}
	return nil
}
