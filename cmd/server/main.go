package main

import (
	"log/slog"
	"net/http"
	"os"

	"biomedico/auth"
	"biomedico/config"
	"biomedico/db"
	"biomedico/db/mongo"
	"biomedico/db/postgres"
	"biomedico/handlers"
	"biomedico/repository"
	"biomedico/routes"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	// Load config from .env or config file
	cfg := config.LoadConfig()

	var userRepo repository.UserRepository
	var pacienteRepo repository.PacienteRepository
	var ensayoRepo repository.EnsayoRepository
	var clinicRepo repository.ClinicInfoRepository

	switch cfg.DBType {
	case "postgres":
		// Migrations only apply to the Postgres backend
		db.RunMigrations()

		pg := postgres.NewPostgresDB(cfg.PostgresURL)
		if err := pg.Connect(); err != nil {
			panic(err)
		}
		defer pg.Disconnect()

		userRepo = repository.NewPostgresUserRepo(pg.Conn)
		pacienteRepo = repository.NewPostgresPacienteRepo(pg.Conn)
		ensayoRepo = repository.NewPostgresEnsayoRepo(pg.Conn)
		clinicRepo = repository.NewPostgresClinicInfoRepo(pg.Conn)

	case "mongo":
		mg := mongo.NewMongoDB(cfg.MongoURL)
		if err := mg.Connect(); err != nil {
			panic(err)
		}
		defer mg.Disconnect()

		userRepo = repository.NewMongoUserRepo(mg.Client)
		pacienteRepo = repository.NewMongoPacienteRepo(mg.Client)
		ensayoRepo = repository.NewMongoEnsayoRepo(mg.Client)
		clinicRepo = repository.NewMongoClinicInfoRepo(mg.Client)

	default:
		panic("DB_TYPE not supported")
	}

	sessions := auth.NewSessionManager(cfg.SessionSecret)
	views := handlers.NewViews(cfg.TemplatesDir)

	authHandler := &handlers.AuthHandler{
		Repo:     userRepo,
		Auth:     auth.NewAuthenticator(userRepo),
		Sessions: sessions,
		Views:    views,
	}
	pacienteHandler := &handlers.PacienteHandler{
		Pacientes: pacienteRepo,
		Users:     userRepo,
		Views:     views,
	}
	ensayoHandler := &handlers.EnsayoHandler{Repo: ensayoRepo}
	excelHandler := &handlers.ExcelHandler{
		Users:     userRepo,
		Pacientes: pacienteRepo,
		UploadDir: cfg.UploadDir,
	}

	// Report handler with combined repository
	reportRepo := repository.NewReportRepository(pacienteRepo, clinicRepo)
	reportHandler := &handlers.ReportHandler{
		Reports:      reportRepo,
		TemplatesDir: cfg.TemplatesDir,
		PDFSavePath:  cfg.PDFSavePath,
	}
	pageHandler := &handlers.PageHandler{
		Users:     userRepo,
		Pacientes: pacienteRepo,
		Ensayos:   ensayoRepo,
		Views:     views,
	}

	routes.SetupRoutes(sessions, views, authHandler, pacienteHandler, ensayoHandler, excelHandler, reportHandler, pageHandler)

	slog.Info("server running", slog.String("port", cfg.Port), slog.String("db", cfg.DBType))
	if err := http.ListenAndServe(":"+cfg.Port, nil); err != nil {
		panic(err)
	}
}
