package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/jcmexdev/invoice-gateway/internal/config"
	"github.com/jcmexdev/invoice-gateway/internal/core/invoicing"
	"github.com/jcmexdev/invoice-gateway/internal/core/ports"
	"github.com/jcmexdev/invoice-gateway/internal/core/selection"
	"github.com/jcmexdev/invoice-gateway/internal/infra/adapters/fake"
	"github.com/jcmexdev/invoice-gateway/internal/infra/adapters/yxapi"
	"github.com/jcmexdev/invoice-gateway/internal/infra/httpx"
	"github.com/jcmexdev/invoice-gateway/internal/journal"
	journalsqlite "github.com/jcmexdev/invoice-gateway/internal/journal/sqlite"
	"github.com/jcmexdev/invoice-gateway/internal/pkg/telemetry"
)

func main() {
	cfg := config.Load()
	telemetry.InitLogger(cfg.LogLevel)

	ctx := context.Background()

	shutdown, err := telemetry.SetupTracer(ctx, "invoice-gateway")
	if err != nil {
		slog.Error("failed to set up tracing", "error", err)
		os.Exit(1)
	}
	defer func() { _ = shutdown(context.Background()) }()

	var journalRepo journal.Repository
	if cfg.JournalPath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.JournalPath), 0o755); err != nil {
			slog.Error("failed to create journal directory", "path", cfg.JournalPath, "error", err)
			os.Exit(1)
		}
		repo, err := journalsqlite.Open(cfg.JournalPath)
		if err != nil {
			slog.Error("failed to open submission journal", "path", cfg.JournalPath, "error", err)
			os.Exit(1)
		}
		defer repo.Close()
		journalRepo = repo
	}

	var gateway ports.OrderGateway
	if cfg.UseFakeVendor {
		slog.Warn("using the in-memory fake vendor gateway, vendor calls will not leave the process")
		gateway = fake.NewGateway()
	} else {
		gateway = yxapi.NewClient(cfg.VendorBaseURL, cfg.VendorRoutingID, yxapi.WithPageSize(cfg.PageSize))
	}

	sessions := selection.NewManager()
	invoicer := invoicing.NewService(gateway, journalRepo)

	handler := httpx.NewHandler(gateway, sessions, invoicer)
	router := httpx.NewRouter(handler)

	slog.Info("invoice gateway listening", "addr", cfg.ListenAddr, "vendor", cfg.VendorBaseURL)
	if err := http.ListenAndServe(cfg.ListenAddr, router); err != nil {
		slog.Error("http server failed", "error", err)
		os.Exit(1)
	}
}
