package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/BarinovG/EShop-API/cmd"
	httpin "github.com/BarinovG/EShop-API/internal/adapters/in/http"
	"github.com/BarinovG/EShop-API/internal/adapters/out/kafka"
	"github.com/BarinovG/EShop-API/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustOpenDatabase(configs)

	notifier, err := kafka.NewNotifier(
		[]string{configs.KafkaHost}, configs.KafkaOrderEventTopic, logger)
	if err != nil {
		log.Fatalf("Error creating kafka notifier: %v", err)
	}
	defer notifier.Close()

	app := cmd.NewCompositionRoot(configs, gormDB, notifier, logger)

	jobManager := app.CreateJobManager(configs)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:             goDotEnvVariable("HTTP_PORT"),
		DBHost:               goDotEnvVariable("DB_HOST"),
		DBPort:               goDotEnvVariable("DB_PORT"),
		DBUser:               goDotEnvVariable("DB_USER"),
		DBPassword:           goDotEnvVariable("DB_PASSWORD"),
		DBName:               goDotEnvVariable("DB_NAME"),
		DBSslMode:            goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:            goDotEnvVariable("KAFKA_HOST"),
		KafkaOrderEventTopic: goDotEnvVariable("KAFKA_ORDER_EVENT_TOPIC"),
		CartTTL:              parseCartTTL(goDotEnvVariable("CART_TTL")),
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

func parseCartTTL(raw string) time.Duration {
	ttl, err := time.ParseDuration(raw)
	if err != nil || ttl <= 0 {
		log.Fatalf("Invalid CART_TTL value: %q", raw)
	}
	return ttl
}

// mustOpenDatabase opens the connection through database/sql with the
// lib/pq driver and hands it to GORM, so storage errors keep their
// *pq.Error type and constraint violations stay classifiable upstream.
func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}

	gormDB, err := gorm.Open(gorm_postgres.New(gorm_postgres.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting gorm: %v", err)
	}

	if err = postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpin.NewServer(
		app.CreateAddItemCommandHandler(),
		app.CreateUpdateItemQuantityCommandHandler(),
		app.CreateRemoveItemCommandHandler(),
		app.CreatePlaceOrderCommandHandler(),
		app.CreateImportPriceListCommandHandler(),
		app.CreateChangeShopStateCommandHandler(),
		app.CreateAddContactCommandHandler(),
		app.CreateUpdateContactCommandHandler(),
		app.CreateDeleteContactCommandHandler(),
		app.CreateGetCartQueryHandler(),
		app.CreateGetCartItemQueryHandler(),
		app.CreateGetBuyerOrdersQueryHandler(),
		app.CreateGetSellerOrdersQueryHandler(),
		app.CreateSearchOffersQueryHandler(),
		app.CreateGetContactsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
