package main

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"ktlogistics/config"
	"ktlogistics/db"
	"ktlogistics/db/mongo"
	"ktlogistics/db/postgres"
	"ktlogistics/handlers"
	"ktlogistics/repository"
	"ktlogistics/routes"
)

func main() {
	// Load config from .env or config file
	cfg := config.LoadConfig()
	cfg.ConfigureLogging()

	var loadingAdvanceRepo repository.LoadingAdvanceRepository
	var ackRepo repository.AcknowledgementRepository
	var refRepo repository.ReferenceRepository
	var rateCardRepo repository.RateCardRepository

	switch cfg.DBType {
	case string(db.Postgres):
		// Migrations only apply to the postgres backend
		db.RunMigrations()

		pg := postgres.NewPostgresDB(cfg.PostgresURL)
		if err := pg.Connect(); err != nil {
			logrus.Fatalf("postgres connect failed: %v", err)
		}
		defer pg.Disconnect()

		loadingAdvanceRepo = repository.NewPostgresLoadingAdvanceRepo(pg.Conn)
		ackRepo = repository.NewPostgresAcknowledgementRepo(pg.Conn)
		refRepo = repository.NewPostgresReferenceRepo(pg.Conn)
		rateCardRepo = repository.NewPostgresRateCardRepo(pg.Conn)

	case string(db.Mongo):
		mg := mongo.NewMongoDB(cfg.MongoURL)
		if err := mg.Connect(); err != nil {
			logrus.Fatalf("mongo connect failed: %v", err)
		}
		defer mg.Disconnect()

		loadingAdvanceRepo = repository.NewMongoLoadingAdvanceRepo(mg.Client)
		ackRepo = repository.NewMongoAcknowledgementRepo(mg.Client)
		refRepo = repository.NewMongoReferenceRepo(mg.Client)
		rateCardRepo = repository.NewMongoRateCardRepo(mg.Client)

	default:
		logrus.Fatalf("DB_TYPE %q not supported", cfg.DBType)
	}

	// Handlers
	loadingAdvanceHandler := &handlers.LoadingAdvanceHandler{
		Repo:          loadingAdvanceRepo,
		RefRepo:       refRepo,
		DefaultBranch: cfg.Branch,
	}
	ackHandler := &handlers.AcknowledgementHandler{Repo: ackRepo}
	refHandler := &handlers.ReferenceHandler{Repo: refRepo}
	rateCardHandler := &handlers.RateCardHandler{Repo: rateCardRepo}

	router := routes.SetupRoutes(loadingAdvanceHandler, ackHandler, refHandler, rateCardHandler)

	logrus.Infof("server running on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}
