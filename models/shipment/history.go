package shipment

import "time"

// History is one append-only audit line of a shipment's lifecycle.
type History struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ShipmentID uint      `gorm:"not null;index" json:"shipment_id"`
	Action     string    `gorm:"type:text;not null" json:"action"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName sets the table name for the History model
func (History) TableName() string {
	return "shipment_histories"
}
