package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/inflybi/warehouse/internal/config"
	"github.com/inflybi/warehouse/internal/database"
	"github.com/inflybi/warehouse/internal/etl"
	"github.com/inflybi/warehouse/internal/etl/load"
	"github.com/inflybi/warehouse/internal/etl/source"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	src, err := database.OpenSource(cfg.SourceDSN())
	if err != nil {
		slog.Error("failed to connect to source database", "error", err)
		os.Exit(1)
	}
	defer src.Close()

	dw, err := database.OpenWarehouse(cfg.WarehouseDSN())
	if err != nil {
		slog.Error("failed to connect to warehouse", "error", err)
		os.Exit(1)
	}
	defer dw.Close()

	pipeline := etl.NewService(source.New(src), load.New(dw))

	if err := pipeline.Run(context.Background()); err != nil {
		slog.Error("pipeline failed", "error", err)
		os.Exit(1)
	}

	slog.Info("pipeline finished")
}
