package driver

import "time"

// Driver is a truck driver that shipments may be assigned to.
type Driver struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	TruckNumber string    `gorm:"type:varchar(50);not null" json:"truck_number"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
