package shipment

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"tms-lite/logger"
	shipmentModel "tms-lite/models/shipment"
	shipmentService "tms-lite/services/shipment"
	"tms-lite/types"
	shipmentTypes "tms-lite/types/shipment"
	"tms-lite/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

// ShipmentController handles shipment lifecycle requests
type ShipmentController struct {
	Shipments *shipmentService.Service
}

func NewShipmentController(shipments *shipmentService.Service) *ShipmentController {
	return &ShipmentController{Shipments: shipments}
}

// Store handles POST /add_shipment
func (sc *ShipmentController) Store(c *fiber.Ctx) error {
	var req shipmentTypes.CreateShipmentRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return utils.BadRequest(c, "Invalid request body")
	}

	if _, err := sc.Shipments.Create(c.UserContext(), req); err != nil {
		return utils.SendError(c, err)
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

// Delete handles POST /delete_shipment/:id
func (sc *ShipmentController) Delete(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}

	if err := sc.Shipments.Delete(c.UserContext(), id); err != nil {
		return utils.SendError(c, err)
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

// UpdateStatus handles POST /update_status/:id
func (sc *ShipmentController) UpdateStatus(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}

	var req shipmentTypes.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	if _, err := sc.Shipments.ChangeStatus(c.UserContext(), id, shipmentModel.Status(req.Status)); err != nil {
		return utils.SendError(c, err)
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

// AssignDriver handles POST /assign_driver/:id; an empty driver_id unassigns.
func (sc *ShipmentController) AssignDriver(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}

	var req shipmentTypes.AssignDriverRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return utils.BadRequest(c, err.Error())
	}
	driverID, _ := shipmentTypes.ParseDriverRef(req.DriverID)

	if _, err := sc.Shipments.AssignDriver(c.UserContext(), id, driverID); err != nil {
		return utils.SendError(c, err)
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

// AddBox handles POST /add_box/:id. A duplicate code is not an error: the
// redirect carries a one-shot notice instead.
func (sc *ShipmentController) AddBox(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}

	var req shipmentTypes.AddBoxRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	result, err := sc.Shipments.AddBox(c.UserContext(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	if result.Duplicate {
		q := url.Values{}
		q.Set("notice", shipmentTypes.NoticeDuplicateBox)
		q.Set("code", result.Code)
		q.Set("shipment", strconv.FormatUint(uint64(id), 10))
		return c.Redirect("/?"+q.Encode(), fiber.StatusSeeOther)
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

// Index handles GET /api/shipments
func (sc *ShipmentController) Index(c *fiber.Ctx) error {
	shipments, err := sc.Shipments.List(c.UserContext())
	if err != nil {
		logger.Error("Failed to list shipments", err)
		return utils.SendError(c, err)
	}
	return c.JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Shipments retrieved successfully",
		Data:    shipments,
	})
}

// Show handles GET /api/shipments/:id
func (sc *ShipmentController) Show(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}

	shipment, err := sc.Shipments.Get(c.UserContext(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Shipment retrieved successfully",
		Data:    shipment,
	})
}

// History handles GET /api/shipments/:id/history?since=today
func (sc *ShipmentController) History(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}

	since, err := utils.ParseSince(c.Query("since"), time.Now())
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}

	history, err := sc.Shipments.History(c.UserContext(), id, since)
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Shipment history retrieved successfully",
		Data:    history,
	})
}

// Export handles GET /export/shipments.xlsx
func (sc *ShipmentController) Export(c *fiber.Ctx) error {
	shipments, err := sc.Shipments.List(c.UserContext())
	if err != nil {
		return utils.SendError(c, err)
	}

	f, err := buildWorkbook(shipments)
	if err != nil {
		logger.Error("Failed to build shipment export", err)
		return utils.SendError(c, err)
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		logger.Error("Failed to write shipment export", err)
		return utils.SendError(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="shipments.xlsx"`)
	return c.Send(buf.Bytes())
}

const (
	shipmentsSheet = "Shipments"
	historySheet   = "History"
)

func buildWorkbook(shipments []shipmentModel.Shipment) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", shipmentsSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(historySheet); err != nil {
		return nil, err
	}

	header := []interface{}{"ID", "Customer", "Origin", "Destination", "Status", "Driver", "Truck", "Boxes", "Created At"}
	if err := f.SetSheetRow(shipmentsSheet, "A1", &header); err != nil {
		return nil, err
	}
	historyHeader := []interface{}{"Shipment ID", "Action", "At"}
	if err := f.SetSheetRow(historySheet, "A1", &historyHeader); err != nil {
		return nil, err
	}

	historyRow := 2
	for i, s := range shipments {
		driverName, truck := "", ""
		if s.Driver != nil {
			driverName, truck = s.Driver.Name, s.Driver.TruckNumber
		}
		row := []interface{}{s.ID, s.CustomerName, s.Origin, s.Destination, s.Status.String(), driverName, truck, len(s.Boxes), s.CreatedAt.Format(time.RFC3339)}
		if err := f.SetSheetRow(shipmentsSheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return nil, err
		}

		for _, h := range s.History {
			hrow := []interface{}{s.ID, h.Action, h.CreatedAt.Format(time.RFC3339)}
			if err := f.SetSheetRow(historySheet, fmt.Sprintf("A%d", historyRow), &hrow); err != nil {
				return nil, err
			}
			historyRow++
		}
	}
	return f, nil
}
