package database

import (
	"errors"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
	"gorm.io/plugin/dbresolver"

	"abled.ai/abled-api-gateway/app/utils/logger"
	"abled.ai/abled-api-gateway/config/environment_variables"
)

var SchemaRegistry []interface{}

func RegisterSchemaForAutoMigrate(models ...interface{}) {
	SchemaRegistry = append(SchemaRegistry, models...)
}

var DB *gorm.DB

func NewDB() (*gorm.DB, error) {
	env := &environment_variables.EnvironmentVariables
	if env.DB_POSTGRESQL_WRITE_DSN == "" {
		// Persistence routes are always registered, so a missing DSN has
		// to stop startup instead of surfacing as a nil-DB panic later.
		return nil, errors.New("DB_POSTGRESQL_WRITE_DSN is not set")
	}

	db, err := gorm.Open(postgres.Open(env.DB_POSTGRESQL_WRITE_DSN), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			SingularTable: true,
		},
	})
	if err != nil {
		logger.GetLogger().
			WithField("error_code", "e8c7cfd4-bd88-4df0-9b70-5a0d8dc3f6ae").
			Fatalf("unable to connect to database: %v", err)
		return nil, err
	}

	if env.DB_POSTGRESQL_READ1_DSN != "" {
		err = db.Use(dbresolver.Register(dbresolver.Config{
			Replicas: []gorm.Dialector{postgres.Open(env.DB_POSTGRESQL_READ1_DSN)},
			Policy:   dbresolver.RandomPolicy{},
		}))
		if err != nil {
			logger.GetLogger().
				WithField("error_code", "2f1c0df7-6a4e-4d37-9e01-c2a54cf17e41").
				Fatalf("unable to setup replica: %v", err)
			return nil, err
		}
	}

	for _, model := range SchemaRegistry {
		if err := db.AutoMigrate(model); err != nil {
			logger.GetLogger().
				WithField("error_code", "9b08a0cf-0e46-4b11-8f46-3b54a7f53a77").
				Fatalf("failed to auto migrate schema: %T, error: %v", model, err)
			return nil, err
		}
	}

	DB = db
	return DB, nil
}
