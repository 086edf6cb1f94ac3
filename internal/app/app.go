package app

import (
	"net/http"

	"github.com/psn74720-cell/Sree-Janani-Transillers-rms/internal/config"
	"github.com/psn74720-cell/Sree-Janani-Transillers-rms/internal/db"
	productiondomain "github.com/psn74720-cell/Sree-Janani-Transillers-rms/internal/domain/production"
	profiledomain "github.com/psn74720-cell/Sree-Janani-Transillers-rms/internal/domain/profile"
	"github.com/psn74720-cell/Sree-Janani-Transillers-rms/internal/domain/refresh"
	salesdomain "github.com/psn74720-cell/Sree-Janani-Transillers-rms/internal/domain/sales"
	statsdomain "github.com/psn74720-cell/Sree-Janani-Transillers-rms/internal/domain/stats"
	productionrepo "github.com/psn74720-cell/Sree-Janani-Transillers-rms/internal/repository/postgres/production"
	profilerepo "github.com/psn74720-cell/Sree-Janani-Transillers-rms/internal/repository/postgres/profile"
	salesrepo "github.com/psn74720-cell/Sree-Janani-Transillers-rms/internal/repository/postgres/sales"
	statsrepo "github.com/psn74720-cell/Sree-Janani-Transillers-rms/internal/repository/postgres/stats"
	"github.com/psn74720-cell/Sree-Janani-Transillers-rms/internal/transport/httpserver"
	"github.com/psn74720-cell/Sree-Janani-Transillers-rms/internal/transport/httpserver/handler"
	authmw "github.com/psn74720-cell/Sree-Janani-Transillers-rms/internal/transport/httpserver/middleware"
	"github.com/psn74720-cell/Sree-Janani-Transillers-rms/pkg/clients/supabase"
	"github.com/psn74720-cell/Sree-Janani-Transillers-rms/pkg/logger"
	"gorm.io/gorm"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
}

func New(log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log.Info("app: initializing database")
	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		return nil, err
	}

	log.Info("app: running migrations")
	if err := db.Migrate(dbConn); err != nil {
		return nil, err
	}

	identity := supabase.NewClient(supabase.Config{
		URL:     cfg.Supabase.URL,
		APIKey:  cfg.Supabase.AnonKey,
		Timeout: cfg.Supabase.AuthTimeout,
	})

	tracker := refresh.NewTracker()

	profileService := profiledomain.NewService(profilerepo.NewPostgres(dbConn))
	productionService := productiondomain.NewService(productionrepo.NewPostgres(dbConn), tracker)
	salesService := salesdomain.NewService(salesrepo.NewPostgres(dbConn), tracker)
	statsService := statsdomain.NewService(statsrepo.NewPostgres(dbConn), tracker)

	handlers := handler.New(identity, profileService, productionService, salesService, statsService, log)
	auth := authmw.NewAuth(cfg.Supabase, identity, profileService, log)

	log.Info("app: initializing router")
	router := httpserver.NewRouter(cfg, handlers, auth)

	return &App{
		cfg:        cfg,
		httpServer: httpserver.New(cfg, router),
		db:         dbConn,
	}, nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
