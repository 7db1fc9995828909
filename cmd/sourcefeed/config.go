package main

import (
	"github.com/dmitrymomot/sourcefeed/pkg/config"
	"github.com/dmitrymomot/sourcefeed/pkg/cookie"
	"github.com/dmitrymomot/sourcefeed/pkg/httpserver"
	"github.com/dmitrymomot/sourcefeed/pkg/mongo"
	"github.com/dmitrymomot/sourcefeed/pkg/pg"
	"github.com/dmitrymomot/sourcefeed/pkg/redis"
	"github.com/dmitrymomot/sourcefeed/svc/session"
)

// Item store drivers accepted by Config.ItemStore.
const (
	itemDriverMemory   = "memory"
	itemDriverPostgres = "postgres"
	itemDriverMongo    = "mongo"
)

// Config holds the application settings. Connection settings of the
// backing stores are loaded separately, only for the drivers in use.
type Config struct {
	Env             string `env:"APP_ENV" envDefault:"development"`
	Name            string `env:"APP_NAME" envDefault:"sourcefeed"`
	ItemStore       string `env:"ITEM_STORE" envDefault:"memory"`
	MongoCollection string `env:"ITEM_MONGO_COLLECTION" envDefault:"items"`
	CatalogFile     string `env:"CATALOG_FILE"`

	HTTP    httpserver.Config
	Cookie  cookie.Config
	Session session.Config
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) usesPostgres() bool {
	return c.ItemStore == itemDriverPostgres || c.Session.Driver == session.DriverPostgres
}

func loadPostgresConfig() (pg.Config, error) {
	var cfg pg.Config
	err := config.Load(&cfg)
	return cfg, err
}

func loadRedisConfig() (redis.Config, error) {
	var cfg redis.Config
	err := config.Load(&cfg)
	return cfg, err
}

func loadMongoConfig() (mongo.Config, error) {
	var cfg mongo.Config
	err := config.Load(&cfg)
	return cfg, err
}
