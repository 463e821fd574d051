package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/manchego/internal/app"
	"github.com/MrJamesThe3rd/manchego/internal/config"
	manchegoHttp "github.com/MrJamesThe3rd/manchego/internal/http"
	accountHandler "github.com/MrJamesThe3rd/manchego/internal/http/account"
	"github.com/MrJamesThe3rd/manchego/internal/http/auth"
	importsHandler "github.com/MrJamesThe3rd/manchego/internal/http/imports"
	ledgerHandler "github.com/MrJamesThe3rd/manchego/internal/http/ledger"
	"github.com/MrJamesThe3rd/manchego/internal/logging"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	log := logging.Setup(cfg.Log.Level, cfg.Log.Format)

	a, err := app.Open(cfg, log)
	if err != nil {
		log.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer a.Close()

	opts := manchegoHttp.Options{AllowedOrigins: cfg.Server.AllowedOrigins}

	if cfg.Server.JWTSecret != "" {
		opts.Auth, err = auth.New(cfg.Server.JWTSecret)
		if err != nil {
			log.Error("failed to configure auth", "error", err)
			os.Exit(1)
		}
	} else {
		log.Warn("API_JWT_SECRET is not set, API runs without authentication")
	}

	var (
		accountH = accountHandler.NewHandler()
		ledgerH  = ledgerHandler.NewHandler(a.Ledger)
		importsH = importsHandler.NewHandler(a.Importer)
	)

	router := manchegoHttp.New(accountH, ledgerH, importsH, opts)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	log.Info("starting server", "addr", srv.Addr, "driver", a.Driver)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server failed", "error", err)
		os.Exit(1)
	}
}
