package shipment

import (
	"time"

	"tms-lite/models/driver"
)

// Shipment is a tracked consignment. It owns its boxes and history rows;
// the driver is only referenced.
type Shipment struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerName string `gorm:"type:varchar(255);not null" json:"customer_name"`
	Origin       string `gorm:"type:varchar(255);not null" json:"origin"`
	Destination  string `gorm:"type:varchar(255);not null" json:"destination"`
	Status       Status `gorm:"size:20;not null;default:Pending" json:"status"`

	// Nullable: cleared when the driver is removed
	DriverID *uint          `gorm:"index" json:"driver_id,omitempty"`
	Driver   *driver.Driver `gorm:"foreignKey:DriverID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"driver,omitempty"`

	Boxes   []Box     `gorm:"foreignKey:ShipmentID;constraint:OnDelete:CASCADE" json:"boxes"`
	History []History `gorm:"foreignKey:ShipmentID;constraint:OnDelete:CASCADE" json:"history"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
