package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"transfers/cmd"
	httpadapter "transfers/internal/adapters/in/http"
	"transfers/internal/adapters/out/postgres/orderrepo"
	"transfers/internal/adapters/out/postgres/productrepo"
	"transfers/internal/adapters/out/postgres/stockrepo"
	"transfers/internal/adapters/out/postgres/warehouserepo"
	"transfers/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := mustOpenDB(configs)

	app := cmd.NewCompositionRoot(configs, db)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(
		app.CreateReapStaleDraftsCommandHandler(),
		configs.ReaperSchedule,
		configs.ReaperDraftMaxAge,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:          goDotEnvVariable("HTTP_PORT"),
		DBHost:            goDotEnvVariable("DB_HOST"),
		DBPort:            goDotEnvVariable("DB_PORT"),
		DBUser:            goDotEnvVariable("DB_USER"),
		DBPassword:        goDotEnvVariable("DB_PASSWORD"),
		DBName:            goDotEnvVariable("DB_NAME"),
		DBSslMode:         goDotEnvVariable("DB_SSLMODE"),
		ReaperSchedule:    goDotEnvVariable("REAPER_SCHEDULE"),
		ReaperDraftMaxAge: reaperMaxAge(goDotEnvVariable("REAPER_DRAFT_MAX_AGE_DAYS")),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func reaperMaxAge(days string) time.Duration {
	n, err := strconv.Atoi(days)
	if err != nil || n <= 0 {
		log.Fatalf("REAPER_DRAFT_MAX_AGE_DAYS must be a positive number, got %q", days)
	}
	return time.Duration(n) * 24 * time.Hour
}

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	// TranslateError turns driver duplicate-key failures into
	// gorm.ErrDuplicatedKey, which the order repository relies on to report
	// numbering races as retryable conflicts.
	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.LineDTO{},
		&productrepo.ProductDTO{},
		&warehouserepo.WarehouseDTO{},
		&stockrepo.StockLevelDTO{},
		&stockrepo.StockMovementDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return db
}

func startWebServer(app *cmd.CompositionRoot, port string, logger *slog.Logger) {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Validator = httpadapter.NewRequestValidator()

	server := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateDeleteOrderCommandHandler(),
		app.CreateSendOrderCommandHandler(),
		app.CreateCloseOrderCommandHandler(),
		app.CreateMarkShippedCommandHandler(),
		app.CreateAddLineCommandHandler(),
		app.CreateUpdateLineQtyCommandHandler(),
		app.CreateDeleteLineCommandHandler(),
		app.CreateSetLineNoteCommandHandler(),
		app.CreateAddPreparedCommandHandler(),
		app.CreateSplitResidualCommandHandler(),
		app.CreateAdjustStockCommandHandler(),
		app.CreateListOrdersQueryHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateListWarehousesQueryHandler(),
		app.CreateGetStockQueryHandler(),
		app.CreateListShippedItemsQueryHandler(),
		app.CreateGetStatsQueryHandler(),
	)
	server.RegisterRoutes(e)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil {
			logger.Info("HTTP server stopped", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("Failed to shut down HTTP server: %v", err)
	}
}
