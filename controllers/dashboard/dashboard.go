package dashboard

import (
	"fmt"
	"time"

	"tms-lite/logger"
	shipmentModel "tms-lite/models/shipment"
	driverService "tms-lite/services/driver"
	shipmentService "tms-lite/services/shipment"
	shipmentTypes "tms-lite/types/shipment"
	"tms-lite/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

// DashboardController renders the transport management page
type DashboardController struct {
	Drivers   *driverService.Service
	Shipments *shipmentService.Service
	Now       func() time.Time
}

func NewDashboardController(drivers *driverService.Service, shipments *shipmentService.Service) *DashboardController {
	return &DashboardController{Drivers: drivers, Shipments: shipments, Now: time.Now}
}

// Index handles GET /
func (dc *DashboardController) Index(c *fiber.Ctx) error {
	ctx := c.UserContext()

	drivers, err := dc.Drivers.List(ctx)
	if err != nil {
		logger.Error("Failed to list drivers", err)
		return utils.SendError(c, err)
	}

	shipments, err := dc.Shipments.List(ctx)
	if err != nil {
		logger.Error("Failed to list shipments", err)
		return utils.SendError(c, err)
	}

	createdToday, err := dc.Shipments.CountCreatedSince(ctx, now.With(dc.Now()).BeginningOfDay())
	if err != nil {
		logger.Error("Failed to count today's shipments", err)
		return utils.SendError(c, err)
	}

	return c.Render("transport_index", fiber.Map{
		"Drivers":      drivers,
		"Shipments":    shipments,
		"Statuses":     shipmentModel.AllStatuses(),
		"Notice":       noticeText(c),
		"CreatedToday": createdToday,
	})
}

// noticeText turns the one-shot notice query into the banner text.
func noticeText(c *fiber.Ctx) string {
	switch c.Query("notice") {
	case shipmentTypes.NoticeDuplicateBox:
		if shipment := c.Query("shipment"); shipment != "" {
			return fmt.Sprintf("Box '%s' already exists on shipment #%s.", c.Query("code"), shipment)
		}
		return fmt.Sprintf("Box '%s' already exists on this shipment.", c.Query("code"))
	default:
		return ""
	}
}
