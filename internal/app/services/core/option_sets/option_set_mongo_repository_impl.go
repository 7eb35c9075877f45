package optionSets

import (
	"context"
	"intake-report-service/internal/app/contracts"
	"intake-report-service/internal/app/models"
	"intake-report-service/internal/pkg/constvars"
	"intake-report-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type OptionSetMongoRepository struct {
	Collection *mongo.Collection
}

func NewOptionSetMongoRepository(db *mongo.Database) contracts.OptionSetRepository {
	return &OptionSetMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionOptionSets),
	}
}

func (repo *OptionSetMongoRepository) FindAll(ctx context.Context) ([]models.OptionSet, error) {
	var optionSets []models.OptionSet
	cursor, err := repo.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &optionSets)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return optionSets, nil
}

func (repo *OptionSetMongoRepository) FindByKindAndLanguage(ctx context.Context, kind, language string) (*models.OptionSet, error) {
	var optionSet models.OptionSet
	err := repo.Collection.FindOne(ctx, bson.M{"kind": kind, "language": language}).Decode(&optionSet)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &optionSet, nil
}

func (repo *OptionSetMongoRepository) Upsert(ctx context.Context, optionSet models.OptionSet) error {
	filter := bson.M{"kind": optionSet.Kind, "language": optionSet.Language}
	update := bson.M{"$set": bson.M{"options": optionSet.Options}}
	opts := options.Update().SetUpsert(true)

	_, err := repo.Collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}
