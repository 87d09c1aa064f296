package catalog

import "time"

// Item is a branded catalog product with a re-randomized popularity score.
type Item struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Brand       string    `gorm:"type:varchar(120);not null;index" json:"brand"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Category    string    `gorm:"type:varchar(120);not null" json:"category"`
	Price       float64   `gorm:"type:decimal(10,2)" json:"price"`
	ImageURL    string    `gorm:"type:text" json:"image"`
	Popularity  int       `gorm:"not null;index" json:"popularity"`
	LastUpdated time.Time `json:"last_updated"`
}
