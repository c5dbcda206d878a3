package main

import (
	"fmt"
	"net/http"

	"ordering/cmd"
	"ordering/internal/adapters/out/postgres/addressrepo"
	"ordering/internal/adapters/out/postgres/catalog"
	"ordering/internal/adapters/out/postgres/orderrepo"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Money fields serialize as JSON numbers, matching the API contract.
	decimal.MarshalJSONWithoutQuotes = true

	config, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	gormDB, err := gorm.Open(gormpostgres.Open(config.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = migrateSchema(gormDB); err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	app := cmd.NewCompositionRoot(config, gormDB)
	startWebServer(&app, config.HTTPPort)
}

// migrateSchema keeps the order management tables in sync with the DTO
// definitions. The catalog tables are owned by another service; they are
// migrated here only so local development works against an empty database.
func migrateSchema(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&catalog.ProductDTO{},
		&catalog.ProductSizeDTO{},
		&addressrepo.AddressDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderProductDTO{},
	)
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	app.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
