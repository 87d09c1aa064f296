package routes

import (
	"time"

	"tms-lite/config"
	"tms-lite/constants"
	catalogController "tms-lite/controllers/catalog"
	"tms-lite/controllers/dashboard"
	driverController "tms-lite/controllers/driver"
	shipmentController "tms-lite/controllers/shipment"
	"tms-lite/logger"
	"tms-lite/metrics"
	"tms-lite/middleware"
	catalogService "tms-lite/services/catalog"
	driverService "tms-lite/services/driver"
	shipmentService "tms-lite/services/shipment"
	"tms-lite/views"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberLogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

// NewApp builds a fiber app with the shared middleware stack. A nil
// asyncLogger skips request auditing.
func NewApp(cfg config.Config, asyncLogger *logger.AsyncLogger) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadBufferSize:  32768, // 32KB read buffer
		WriteBufferSize: 32768, // 32KB write buffer
		ReadTimeout:     time.Second * 30,
		WriteTimeout:    time.Second * 30,
		BodyLimit:       4 * 1024 * 1024,
		Views:           views.New(),
	})

	app.Use(recover.New())
	app.Use(fiberLogger.New())
	origins := cfg.FrontendURL
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		// fiber rejects credentials together with a wildcard origin
		AllowCredentials: origins != "*",
	}))

	if cfg.RequestLog && asyncLogger != nil {
		app.Use(middleware.RequestLog(asyncLogger))
	}

	return app
}

// SetupTransportRoutes mounts the transport management app.
func SetupTransportRoutes(app *fiber.App, db *gorm.DB, cfg config.Config) {
	drivers := driverService.NewService(db)
	shipments := shipmentService.NewService(db)

	dashboardController := dashboard.NewDashboardController(drivers, shipments)
	driverCtrl := driverController.NewDriverController(drivers)
	shipmentCtrl := shipmentController.NewShipmentController(shipments)

	app.Get("/", dashboardController.Index)
	app.Get("/metrics", metrics.Handler())

	/*=============================================================================
	| Form Routes
	===============================================================================*/
	app.Post("/add_driver", driverCtrl.Store)
	app.Post("/delete_driver/:id", driverCtrl.Delete)

	app.Post("/add_shipment", shipmentCtrl.Store)
	app.Post("/delete_shipment/:id", shipmentCtrl.Delete)
	app.Post("/update_status/:id", shipmentCtrl.UpdateStatus)
	app.Post("/assign_driver/:id", shipmentCtrl.AssignDriver)
	app.Post("/add_box/:id", shipmentCtrl.AddBox)

	app.Get("/export/shipments.xlsx", shipmentCtrl.Export)

	/*=============================================================================
	| JSON API Routes
	===============================================================================*/
	api := app.Group("/api")
	read := middleware.RequirePermissions(cfg.JWTSecret, constants.PermTransportRead, constants.PermTransportWrite)
	write := middleware.RequirePermissions(cfg.JWTSecret, constants.PermTransportWrite)

	api.Get("/drivers", read, driverCtrl.Index)
	api.Post("/drivers/:id", write, driverCtrl.Update)

	api.Get("/shipments", read, shipmentCtrl.Index)
	api.Get("/shipments/:id", read, shipmentCtrl.Show)
	api.Get("/shipments/:id/history", read, shipmentCtrl.History)
}

// SetupCatalogRoutes mounts the trending catalog app.
func SetupCatalogRoutes(app *fiber.App, catalog *catalogService.Service) {
	catalogCtrl := catalogController.NewCatalogController(catalog)

	app.Get("/", catalogCtrl.Index)
	app.Get("/trending", catalogCtrl.Trending)
	app.Get("/brand/:brand", catalogCtrl.ByBrand)
	app.Get("/metrics", metrics.Handler())
}
