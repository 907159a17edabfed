package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"production/cmd"
	httpadapter "production/internal/adapters/in/http"
	"production/internal/adapters/out/label"
	"production/internal/adapters/out/postgres/orderrepo"
	"production/internal/adapters/out/postgres/packagerepo"
	"production/internal/adapters/out/postgres/slotrepo"
	"production/internal/adapters/out/scanner"
	"production/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := openDatabase(configs)
	migrateDatabase(gormDB)

	simScanner := buildScanner(configs)
	root := cmd.NewCompositionRoot(configs, gormDB, simScanner, label.NewPDFGenerator(), logger)

	jobManager := jobs.NewJobManager(root.CreateGetPendingBillingOrdersQueryHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:      goDotEnvVariable("HTTP_PORT"),
		DBHost:        goDotEnvVariable("DB_HOST"),
		DBPort:        goDotEnvVariable("DB_PORT"),
		DBUser:        goDotEnvVariable("DB_USER"),
		DBPassword:    goDotEnvVariable("DB_PASSWORD"),
		DBName:        goDotEnvVariable("DB_NAME"),
		DBSslMode:     goDotEnvVariable("DB_SSLMODE"),
		ScanDelayMs:   goDotEnvVariable("SCAN_DELAY_MS"),
		ScanFailEvery: goDotEnvVariable("SCAN_FAIL_EVERY"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func migrateDatabase(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&slotrepo.SlotDTO{},
		&packagerepo.PackageDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	slotRepo := slotrepo.NewGormSlotRepository(gormDB)
	if err = slotRepo.EnsureSlots(context.Background()); err != nil {
		log.Fatalf("Failed to ensure stage slots: %v", err)
	}
}

func buildScanner(configs cmd.Config) *scanner.SimulatedScanner {
	delayMs, err := strconv.Atoi(configs.ScanDelayMs)
	if err != nil {
		log.Fatalf("SCAN_DELAY_MS must be an integer: %v", err)
	}

	failEvery, err := strconv.Atoi(configs.ScanFailEvery)
	if err != nil {
		log.Fatalf("SCAN_FAIL_EVERY must be an integer: %v", err)
	}

	simScanner, err := scanner.NewSimulatedScanner(time.Duration(delayMs)*time.Millisecond, failEvery)
	if err != nil {
		log.Fatalf("Failed to build scanner: %v", err)
	}
	return simScanner
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	server := httpadapter.NewServer(
		root.CreateCreateOrderCommandHandler(),
		root.CreateVerifyOrderCommandHandler(),
		root.CreateAdmitOrderCommandHandler(),
		root.CreateCompleteOrderCommandHandler(),
		root.CreateDeactivateOrderCommandHandler(),
		root.CreateProposeBillingCommandHandler(),
		root.CreateConfirmBillingCommandHandler(),
		root.CreateForwardOrderCommandHandler(),
		root.CreateAddPackageCommandHandler(),
		root.CreateUpdatePackageCommandHandler(),
		root.CreateGetOrdersByStageQueryHandler(),
		root.CreateGetOrdersByStatusQueryHandler(),
		root.CreateGetPendingBillingOrdersQueryHandler(),
		root.CreateGetStageSlotsQueryHandler(),
		root.CreateGetPackagesForOrderQueryHandler(),
		root.CreateGetPackageQueryHandler(),
		root.Scanner(),
		root.LabelGenerator(),
		root.Logger(),
	)

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
