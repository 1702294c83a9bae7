// Package server assembles the gophblog application: storage, services,
// handlers, and the middleware chain.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/vblinov/gophblog/internal/server/auth"
	"github.com/vblinov/gophblog/internal/server/blog"
	"github.com/vblinov/gophblog/internal/server/config"
	"github.com/vblinov/gophblog/internal/server/handlers"
	"github.com/vblinov/gophblog/internal/server/middleware"
	"github.com/vblinov/gophblog/internal/server/session"
	"github.com/vblinov/gophblog/internal/server/storage/sqlite"
)

// App wires together all server components
type App struct {
	logger   *slog.Logger
	cfg      *config.Config
	storage  *sqlite.Storage
	sessions *session.Manager

	authHandler   *handlers.AuthHandler
	blogHandler   *handlers.BlogHandler
	healthHandler *handlers.HealthHandler
}

// New создает приложение: открывает БД (с миграциями) и собирает сервисы
func New(ctx context.Context, logger *slog.Logger, cfg *config.Config) (*App, error) {
	store, err := sqlite.New(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to init storage: %w", err)
	}

	sessions := session.NewManager(cfg.SessionSecret, cfg.SessionTTL)
	credentials := auth.NewService(logger, store)
	posts := blog.NewService(logger, store)

	return &App{
		logger:        logger,
		cfg:           cfg,
		storage:       store,
		sessions:      sessions,
		authHandler:   handlers.NewAuthHandler(logger, credentials, sessions),
		blogHandler:   handlers.NewBlogHandler(logger, posts),
		healthHandler: handlers.NewHealthHandler(logger),
	}, nil
}

// Routes возвращает полный handler приложения с middleware chain:
// recovery -> logging -> identity -> mux
func (a *App) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", a.blogHandler.Index)
	mux.HandleFunc("GET /health", a.healthHandler.Health)
	mux.Handle("GET /static/style.css", handlers.Static())

	mux.HandleFunc("/auth/register", a.authHandler.Register)
	mux.HandleFunc("/auth/login", a.authHandler.Login)
	mux.HandleFunc("GET /auth/logout", a.authHandler.Logout)

	// Мутации доступны только аутентифицированным пользователям
	mux.Handle("/create", middleware.RequireAuth(http.HandlerFunc(a.blogHandler.Create)))
	mux.Handle("/{id}/update", middleware.RequireAuth(http.HandlerFunc(a.blogHandler.Update)))
	mux.Handle("POST /{id}/delete", middleware.RequireAuth(http.HandlerFunc(a.blogHandler.Delete)))

	var handler http.Handler = mux
	handler = middleware.Identity(a.logger, a.sessions, a.storage)(handler)
	handler = middleware.Logging(a.logger)(handler)
	handler = middleware.Recovery(a.logger)(handler)

	return handler
}

// Run starts the HTTP server and blocks until ctx is canceled
// or the server fails
func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         a.cfg.Addr,
		Handler:      a.Routes(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  time.Minute,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("starting server", slog.String("addr", a.cfg.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// Close releases application resources
func (a *App) Close() error {
	return a.storage.Close()
}
