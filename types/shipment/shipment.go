package shipment

import (
	"fmt"
	"strconv"
	"strings"

	"tms-lite/types"
)

// NoticeDuplicateBox is the ?notice= key the index page shows after a rejected box.
const NoticeDuplicateBox = "duplicate_box"

// CreateShipmentRequest is the form payload of POST /add_shipment.
type CreateShipmentRequest struct {
	CustomerName string `form:"customer_name" json:"customer_name" validate:"required,max=255"`
	Origin       string `form:"origin" json:"origin" validate:"required,max=255"`
	Destination  string `form:"destination" json:"destination" validate:"required,max=255"`
	// Empty means unassigned
	DriverID string `form:"driver_id" json:"driver_id"`
}

func (r *CreateShipmentRequest) Validate() error {
	r.CustomerName = strings.TrimSpace(r.CustomerName)
	r.Origin = strings.TrimSpace(r.Origin)
	r.Destination = strings.TrimSpace(r.Destination)
	r.DriverID = strings.TrimSpace(r.DriverID)
	if err := types.ValidateStruct(r); err != nil {
		return err
	}
	_, err := r.DriverRef()
	return err
}

// DriverRef parses DriverID; nil means no driver.
func (r CreateShipmentRequest) DriverRef() (*uint, error) {
	return ParseDriverRef(r.DriverID)
}

// UpdateStatusRequest is the form payload of POST /update_status/:id.
type UpdateStatusRequest struct {
	Status string `form:"status" json:"status" validate:"required"`
}

func (r *UpdateStatusRequest) Validate() error {
	r.Status = strings.TrimSpace(r.Status)
	return types.ValidateStruct(r)
}

// AddBoxRequest is the form payload of POST /add_box/:id.
type AddBoxRequest struct {
	Code string `form:"code" json:"code" validate:"required,max=100"`
}

func (r *AddBoxRequest) Validate() error {
	r.Code = strings.TrimSpace(r.Code)
	return types.ValidateStruct(r)
}

// AssignDriverRequest is the form payload of POST /assign_driver/:id.
type AssignDriverRequest struct {
	DriverID string `form:"driver_id" json:"driver_id"`
}

func (r *AssignDriverRequest) Validate() error {
	r.DriverID = strings.TrimSpace(r.DriverID)
	_, err := ParseDriverRef(r.DriverID)
	return err
}

func ParseDriverRef(raw string) (*uint, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return nil, fmt.Errorf("driver_id must be a positive number")
	}
	ref := uint(id)
	return &ref, nil
}
