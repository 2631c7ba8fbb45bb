package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"fulfilment/cmd"
	httpin "fulfilment/internal/adapters/in/http"
	"fulfilment/internal/adapters/out/postgres/fulfilmentrepo"
	"fulfilment/internal/adapters/out/postgres/productrepo"
	"fulfilment/internal/adapters/out/postgres/storerepo"
	"fulfilment/internal/adapters/out/postgres/warehouserepo"
	"fulfilment/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	app, err := cmd.NewCompositionRoot(configs, gormDB)
	if err != nil {
		log.Fatalf("Failed to build composition root: %v", err)
	}

	jobManager := jobs.NewJobManager(app.LegacyGateway(), slog.Default())
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DBHost:             goDotEnvVariable("DB_HOST"),
		DBPort:             goDotEnvVariable("DB_PORT"),
		DBUser:             goDotEnvVariable("DB_USER"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD"),
		DBName:             goDotEnvVariable("DB_NAME"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE"),
		LegacyStoreManager: goDotEnvVariable("LEGACY_STORE_MANAGER_URL"),
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&warehouserepo.WarehouseDTO{},
		&fulfilmentrepo.AssignmentDTO{},
		&storerepo.StoreDTO{},
		&productrepo.ProductDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateCreateWarehouseCommandHandler(),
		app.CreateReplaceWarehouseCommandHandler(),
		app.CreateArchiveWarehouseCommandHandler(),
		app.CreateAssignFulfilmentCommandHandler(),
		app.CreateCreateStoreCommandHandler(),
		app.CreateUpdateStoreCommandHandler(),
		app.CreateCreateProductCommandHandler(),
		app.CreateGetActiveWarehousesQueryHandler(),
		app.CreateGetAllStoresQueryHandler(),
		app.CreateGetAllProductsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
