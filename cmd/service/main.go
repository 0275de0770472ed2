package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/society-service/internal/acs"
	"github.com/s21platform/society-service/internal/config"
	"github.com/s21platform/society-service/internal/infra"
	"github.com/s21platform/society-service/internal/pkg/jwt"
	"github.com/s21platform/society-service/internal/pkg/tx"
	db "github.com/s21platform/society-service/internal/repository/postgres"
	"github.com/s21platform/society-service/internal/rest"
	"github.com/s21platform/society-service/internal/service"
	"github.com/s21platform/society-service/internal/ws"
)

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	dbRepo := db.New(cfg)
	defer dbRepo.Close()

	jwtGenerator := jwt.New(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	chatService := service.New(dbRepo)
	guard := acs.NewGuard(dbRepo)
	hub := ws.NewHub(chatService, logger)

	handler := rest.New(dbRepo, chatService, guard, hub.Dispatcher, hub.Router, hub, chatService)
	router := chi.NewRouter()

	router.Use(infra.AuthInterceptorHTTP(jwtGenerator))
	router.Use(func(next http.Handler) http.Handler {
		return infra.LoggerHTTP(next, logger)
	})
	router.Use(tx.TxMiddlewareHTTP(dbRepo))

	rest.AttachRoutes(router, handler)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Service.Port),
		Handler: router,
	}

	g, _ := errgroup.WithContext(context.Background())

	g.Go(func() error {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %v", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("server error: %v", err))
	}
}
