package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"storefront/internal/clients/indexer"
	"storefront/internal/clients/withdrawal"
	"storefront/internal/clock"
	"storefront/internal/database"
	payment "storefront/internal/paymentService"
	pending "storefront/internal/pendingRegistry"
	"storefront/internal/repository"
	"storefront/internal/server"
	"storefront/utils"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

const (
	shutdownTimeout = 15 * time.Second
	sweepInterval   = time.Minute
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API until SIGINT or SIGTERM",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve(ctx context.Context) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer database.Close(db)

	if cfg.DBAutoMigrate {
		if err := database.Migrate(db); err != nil {
			return err
		}
	}

	repo := repository.NewGormRepo(db, repository.Options{
		Serializable: cfg.DBSerializable,
		MaxAttempts:  cfg.DBMaxTxRetries,
	})
	services, registry := server.NewServices(server.Dependencies{
		Repo:        repo,
		Indexer:     indexer.NewClient(cfg.IndexerURL, cfg.HTTPClientTimeout),
		Gateway:     withdrawal.NewClient(cfg.WithdrawURL, cfg.HTTPClientTimeout),
		Clock:       clock.System(),
		TokenSecret: []byte(cfg.TokenSecret),
		PendingTTL:  cfg.PendingTTL,
		Payment: payment.Settings{
			ShopAddress:   cfg.ShopAddress,
			AssetID:       cfg.AssetID,
			AssetDecimals: cfg.AssetDecimals,
			ClaimTTL:      cfg.ClaimTTL,
		},
	})

	gin.SetMode(gin.ReleaseMode)
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           server.SetupRouter(services),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		utils.Info("starting storefront server", map[string]any{"addr": cfg.HTTPAddr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()
	go sweepPending(ctx, registry)

	select {
	case err := <-serveErr:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
		utils.Info("shutting down storefront server", map[string]any{"timeout": shutdownTimeout.String()})
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("serve: graceful shutdown failed: %w", err)
	}
	return nil
}

// sweepPending refunds wallet debits whose checkout was abandoned
func sweepPending(ctx context.Context, registry *pending.Registry) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			released, err := registry.ReleaseExpired(ctx)
			if err != nil {
				utils.Error("failed to release expired pending transactions", map[string]any{"error": err.Error()})
				continue
			}
			if released > 0 {
				utils.Info("released expired pending transactions", map[string]any{"count": released})
			}
		}
	}
}
