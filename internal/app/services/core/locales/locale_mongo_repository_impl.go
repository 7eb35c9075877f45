package locales

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

type LocaleMongoRepository struct {
	Collection *mongo.Collection
}

func NewLocaleMongoRepository(db *mongo.Database) contracts.LocaleRepository {
	return &LocaleMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionLocaleBundles),
	}
}

func (repo *LocaleMongoRepository) FindByLanguageAndScope(ctx context.Context, language, scope string) (*models.LocaleBundle, error) {
	var bundle models.LocaleBundle
	err := repo.Collection.FindOne(ctx, bson.M{"language": language, "scope": scope}).Decode(&bundle)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &bundle, nil
}

func (repo *LocaleMongoRepository) Upsert(ctx context.Context, bundle models.LocaleBundle) error {
	filter := bson.M{"language": bundle.Language, "scope": bundle.Scope}
	update := bson.M{"$set": bson.M{"strings": bundle.Strings, "aboutClinic": bundle.AboutClinic}}
	opts := options.Update().SetUpsert(true)

	_, err := repo.Collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}
