package driver

import (
	"strings"

	"tms-lite/types"
)

// DriverRequest is the form payload for creating or updating a driver.
type DriverRequest struct {
	Name        string `form:"name" json:"name" validate:"required,max=255"`
	TruckNumber string `form:"truck_number" json:"truck_number" validate:"required,max=50"`
}

func (r *DriverRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.TruckNumber = strings.TrimSpace(r.TruckNumber)
	return types.ValidateStruct(r)
}
