package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"example.com/solar-directory/app/internal/config"
	domview "example.com/solar-directory/app/internal/domain/view"
	"example.com/solar-directory/app/internal/infra/catalogapi"
	"example.com/solar-directory/app/internal/infra/logging"
	mysqlrepo "example.com/solar-directory/app/internal/infra/persistence/mysql"
	pgrepo "example.com/solar-directory/app/internal/infra/persistence/postgres"
	"example.com/solar-directory/app/internal/infra/security"
	apihttp "example.com/solar-directory/app/internal/interface/http"
	categoryuc "example.com/solar-directory/app/internal/usecase/category"
	companyuc "example.com/solar-directory/app/internal/usecase/company"
	directoryuc "example.com/solar-directory/app/internal/usecase/directory"
	productuc "example.com/solar-directory/app/internal/usecase/product"
	viewsuc "example.com/solar-directory/app/internal/usecase/views"
)

const (
	connectTimeout  = 5 * time.Second
	shutdownTimeout = 10 * time.Second
)

func newServeCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	return cmd
}

func serve(ctx context.Context, cfg *config.Config) error {
	logger, err := logging.New(cfg.Log.Level)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	db, err := sql.Open("mysql", cfg.MySQL.DSN)
	if err != nil {
		return fmt.Errorf("mysql open: %w", err)
	}
	defer db.Close()
	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		return fmt.Errorf("mysql ping: %w", err)
	}

	viewRepo, closeViews, err := openViewStore(ctx, cfg.Postgres.DSN)
	if err != nil {
		return err
	}
	defer closeViews()

	companyRepo := mysqlrepo.NewCompanyRepository(db)
	productRepo := mysqlrepo.NewProductRepository(db)
	categoryRepo := mysqlrepo.NewCategoryRepository(db)

	catalog := directoryuc.NewCatalogSource(companyRepo, productRepo, categoryRepo)
	var (
		entities   directoryuc.EntitySource   = catalog
		categories directoryuc.CategorySource = catalog
	)
	if cfg.Catalog.URL != "" {
		client, err := catalogapi.NewClient(cfg.Catalog.URL, cfg.Catalog.Timeout)
		if err != nil {
			return err
		}
		entities, categories = client, client
		logger.Info("using REST catalog", zap.String("url", cfg.Catalog.URL))
	}

	api := apihttp.NewAPI(apihttp.Dependencies{
		DirectoryService: directoryuc.NewService(entities, categories, cfg.Filter.Locale, logger),
		CategoryService:  categoryuc.NewService(categoryRepo),
		CompanyService:   companyuc.NewService(companyRepo),
		ProductService:   productuc.NewService(productRepo),
		ViewService:      newViewService(cfg, viewRepo, logger),
		Logger:           logger,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTP.Port,
		Handler:           api.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	return srv.Shutdown(shutdownCtx)
}

// openViewStore connects to Postgres and makes sure the saved view table
// exists. The returned func closes the pool.
func openViewStore(ctx context.Context, dsn string) (*pgrepo.ViewRepository, func(), error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("pg connect: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("pg ping: %w", err)
	}
	repo := pgrepo.NewViewRepository(pool)
	if err := repo.EnsureSchema(pingCtx); err != nil {
		pool.Close()
		return nil, nil, err
	}
	return repo, pool.Close, nil
}

func newViewService(cfg *config.Config, repo domview.Repository, logger *zap.Logger) *viewsuc.Service {
	return viewsuc.NewService(repo, security.NewJWTService(cfg.Share.Secret, cfg.Share.TTL), logger)
}
