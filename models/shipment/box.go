package shipment

import "time"

// Box is a scanned unit of a shipment. Codes are unique per shipment.
type Box struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ShipmentID uint      `gorm:"not null;uniqueIndex:idx_boxes_shipment_code" json:"shipment_id"`
	Code       string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_boxes_shipment_code" json:"code"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}
