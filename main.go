package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"gitea.com/go-chi/session"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/questboard/gamelink/config"
	"github.com/questboard/gamelink/connections"
	"github.com/questboard/gamelink/controllers"
	"github.com/questboard/gamelink/database"
	authmiddleware "github.com/questboard/gamelink/middleware"
	"github.com/questboard/gamelink/repositories"
	"github.com/questboard/gamelink/services"
	"github.com/questboard/gamelink/statetoken"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize database
	if err := database.InitializeDatabase(cfg.DatabasePath); err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}
	defer database.CloseDB()

	db := database.GetDB()

	// Initialize repositories
	repos := repositories.NewRepositories(db)

	// State codec shared by all connectors
	states, err := statetoken.NewCodec(cfg.StateSecret, statetoken.DefaultTTL)
	if err != nil {
		logger.Fatal("failed to initialize state codec", zap.Error(err))
	}

	// Provider connectors
	xbox, err := connections.NewXbox(connections.Settings{
		ClientID:     cfg.Xbox.ClientID,
		ClientSecret: cfg.Xbox.ClientSecret,
	}, cfg.PublicURL, states, repos.Connection, logger)
	if err != nil {
		logger.Fatal("failed to initialize xbox connector", zap.Error(err))
	}
	registry := connections.NewRegistry(xbox)

	// Initialize services
	srvs := services.NewServices(repos, registry, logger)

	// Initialize controllers
	ctrl := controllers.NewControllers(srvs, logger)

	// Set up router
	r, err := setupRouter(ctrl, cfg)
	if err != nil {
		logger.Fatal("failed to setup router", zap.Error(err))
	}

	logger.Info("gamelink starting",
		zap.String("port", cfg.Port),
		zap.String("public_url", cfg.PublicURL),
		zap.String("database", cfg.DatabasePath))

	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.DevAuth {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// setupRouter configures all routes
func setupRouter(ctrl *controllers.Controllers, cfg *config.Config) (*chi.Mux, error) {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second)) // callbacks run three upstream calls

	// Session middleware
	sessionHandler, err := session.Sessioner(session.Options{
		Provider:    "memory",
		CookieName:  "gamelink_session",
		Secure:      cfg.UseHTTPS,
		Gclifetime:  3600,
		Maxlifetime: 3600,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session: %w", err)
	}
	r.Use(sessionHandler)

	// PUBLIC ROUTES
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status": "healthy", "service": "gamelink"}`)
	})

	// Local-development session stand-in; the real platform owns sessions.
	if cfg.DevAuth {
		r.Get("/login", ctrl.Auth.Login)
		r.Get("/logout", ctrl.Auth.Logout)
	}

	r.Route("/connections", func(r chi.Router) {
		// The provider redirect carries the user identity inside the signed
		// state token, so it works without an active session.
		r.Get("/{provider}/callback", ctrl.Connections.Callback)

		// PROTECTED ROUTES (host platform session required)
		r.Group(func(r chi.Router) {
			r.Use(authmiddleware.RequireAuth)

			r.Get("/", ctrl.Connections.Index)
			r.Get("/{provider}/authorize", ctrl.Connections.Authorize)
			r.Post("/{provider}/{id}/delete", ctrl.Connections.Delete)
		})
	})

	return r, nil
}
