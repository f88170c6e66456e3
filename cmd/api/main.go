package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/arka-distribution/arka-backend/internal/config"
	"github.com/arka-distribution/arka-backend/internal/logging"
	"github.com/arka-distribution/arka-backend/internal/modules/catalog"
	"github.com/arka-distribution/arka-backend/internal/modules/pricing"
	"github.com/arka-distribution/arka-backend/internal/modules/purchasing"
	"github.com/arka-distribution/arka-backend/internal/modules/stock"
)

func main() {
	// .env is optional; environment variables win.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := logging.New(string(cfg.AppEnv), cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer logging.Sync(logger)

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("open database", zap.Error(err))
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Fatal("ping database", zap.Error(err))
	}
	logger.Info("connected to database")

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	productRepo := catalog.NewProductPostgresRepository(db)
	categoryRepo := catalog.NewCategoryPostgresRepository(db)
	catalogService := catalog.NewService(productRepo, categoryRepo, logger)
	catalog.NewHandler(catalogService).RegisterRoutes(router)

	ledger := stock.NewPostgresLedger(db)
	stockService := stock.NewService(productRepo, ledger, logger)
	stock.NewHandler(stockService).RegisterRoutes(router)

	calc := pricing.NewCalculator()
	pricingService := pricing.NewService(productRepo, calc)
	pricing.NewHandler(pricingService).RegisterRoutes(router)

	purchasingService := purchasing.NewService(productRepo, calc, logger)
	purchasing.NewHandler(purchasingService).RegisterRoutes(router)

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: router}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("arka api server starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down", zap.Duration("timeout", cfg.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}
