package main

import (
	"github.com/ericogr/deckbattle/internal/catalog"
	"github.com/ericogr/deckbattle/internal/config"
	"github.com/ericogr/deckbattle/internal/constants"
	"github.com/ericogr/deckbattle/internal/logging"
	"github.com/ericogr/deckbattle/internal/storage"
)

func loadConfigOrExit(path string) *config.Config {
	cfg, err := config.Load(path)
	if err != nil {
		logging.Fatal("Missing or invalid deckbattle configuration", err, logging.Fields{constants.LogFieldPath: path})
	}
	return cfg
}

func buildCatalogOrExit(cfg *config.Config) *catalog.Catalog {
	cat, err := catalog.New(cfg.CardList)
	if err != nil {
		logging.Fatal("Failed to build card catalog", err, nil)
	}
	logging.Info("card catalog loaded", logging.Fields{constants.LogFieldCount: len(cat.List())})
	return cat
}

func createRepositoryOrExit(dbPath string) storage.Repository {
	db, err := storage.OpenAndMigrate(dbPath)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, logging.Fields{constants.LogFieldPath: dbPath})
	}
	return storage.NewSQLiteRepository(db)
}
