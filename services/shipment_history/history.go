package shipment_history

import (
	"fmt"

	shipmentModel "tms-lite/models/shipment"

	"gorm.io/gorm"
)

// Append writes one history line for the shipment. Callers pass the
// transaction that performs the lifecycle change so both commit together.
func Append(tx *gorm.DB, shipmentID uint, action string) error {
	entry := shipmentModel.History{
		ShipmentID: shipmentID,
		Action:     action,
	}
	return tx.Create(&entry).Error
}

func CreatedAction(customer string) string {
	return fmt.Sprintf("Shipment created for %s", customer)
}

func StatusChangedAction(status shipmentModel.Status) string {
	return fmt.Sprintf("Status changed to '%s'", status)
}

func BoxAddedAction(code string) string {
	return fmt.Sprintf("Box '%s' added", code)
}

func DriverAssignedAction(name string) string {
	return fmt.Sprintf("Driver '%s' assigned", name)
}

func DriverUnassignedAction() string {
	return "Driver unassigned"
}
