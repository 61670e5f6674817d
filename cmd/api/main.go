package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/inflybi/warehouse/internal/auth"
	authStore "github.com/inflybi/warehouse/internal/auth/store"
	"github.com/inflybi/warehouse/internal/config"
	"github.com/inflybi/warehouse/internal/database"
	warehouseHttp "github.com/inflybi/warehouse/internal/http"
	authHandler "github.com/inflybi/warehouse/internal/http/auth"
	reportHandler "github.com/inflybi/warehouse/internal/http/report"
	"github.com/inflybi/warehouse/internal/report"
	reportStore "github.com/inflybi/warehouse/internal/report/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if cfg.Auth.Secret == "" {
		slog.Error("AUTH_SECRET is required")
		os.Exit(1)
	}

	db, err := database.OpenWarehouse(cfg.WarehouseDSN())
	if err != nil {
		slog.Error("failed to connect to warehouse", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	users := authStore.New(db)
	if err := users.Migrate(context.Background()); err != nil {
		slog.Error("failed to migrate users table", "error", err)
		os.Exit(1)
	}

	var (
		authService   = auth.NewService(users, cfg.Auth.Secret, cfg.Auth.TokenTTL)
		reportService = report.NewService(reportStore.New(db))
	)

	var (
		authH   = authHandler.NewHandler(authService)
		reportH = reportHandler.NewHandler(reportService)
	)

	router := warehouseHttp.New(authH, reportH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
