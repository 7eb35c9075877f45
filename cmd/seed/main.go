package main

import (
	"context"
	"intake-report-service/internal/app/config"
	"intake-report-service/internal/app/drivers/database"
	"intake-report-service/internal/app/services/core/locales"
	optionSets "intake-report-service/internal/app/services/core/option_sets"
	"time"

	"github.com/sirupsen/logrus"
)

// Seeds the option set and locale bundle collections with the built-in
// defaults. Safe to run repeatedly, every document is upserted by key.
func main() {
	driverConfig := config.NewDriverConfig()

	mongoDB := database.NewMongoDB(driverConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	optionSetRepository := optionSets.NewOptionSetMongoRepository(mongoDB)
	for _, optionSet := range optionSets.DefaultOptionSets() {
		if err := optionSetRepository.Upsert(ctx, optionSet); err != nil {
			logrus.Fatalf("Failed to seed option set %s/%s: %v", optionSet.Kind, optionSet.Language, err)
		}
		logrus.Printf("Seeded option set %s/%s", optionSet.Kind, optionSet.Language)
	}

	localeRepository := locales.NewLocaleMongoRepository(mongoDB)
	for _, bundle := range locales.DefaultLocaleBundles() {
		if err := localeRepository.Upsert(ctx, bundle); err != nil {
			logrus.Fatalf("Failed to seed locale bundle %s/%s: %v", bundle.Language, bundle.Scope, err)
		}
		logrus.Printf("Seeded locale bundle %s/%s", bundle.Language, bundle.Scope)
	}

	logrus.Println("Seeding complete")
}
