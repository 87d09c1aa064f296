package driver

import (
	"fmt"

	"tms-lite/logger"
	driverService "tms-lite/services/driver"
	"tms-lite/types"
	driverTypes "tms-lite/types/driver"
	"tms-lite/utils"

	"github.com/gofiber/fiber/v2"
)

// DriverController handles driver registry requests
type DriverController struct {
	Drivers *driverService.Service
}

func NewDriverController(drivers *driverService.Service) *DriverController {
	return &DriverController{Drivers: drivers}
}

// Store handles POST /add_driver
func (dc *DriverController) Store(c *fiber.Ctx) error {
	var req driverTypes.DriverRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return utils.BadRequest(c, "Invalid request body")
	}

	if _, err := dc.Drivers.Create(c.UserContext(), req); err != nil {
		return utils.SendError(c, err)
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

// Delete handles POST /delete_driver/:id
func (dc *DriverController) Delete(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}

	if err := dc.Drivers.Delete(c.UserContext(), id); err != nil {
		return utils.SendError(c, err)
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

// Index handles GET /api/drivers
func (dc *DriverController) Index(c *fiber.Ctx) error {
	drivers, err := dc.Drivers.List(c.UserContext())
	if err != nil {
		logger.Error("Failed to list drivers", err)
		return utils.SendError(c, err)
	}
	return c.JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Drivers retrieved successfully",
		Data:    drivers,
	})
}

// Update handles POST /api/drivers/:id
func (dc *DriverController) Update(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}

	var req driverTypes.DriverRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	d, err := dc.Drivers.Update(c.UserContext(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: fmt.Sprintf("Driver %d updated successfully", d.ID),
		Data:    d,
	})
}
