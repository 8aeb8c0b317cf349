package models

import (
	"time"

	"gorm.io/datatypes"
)

type Event struct {
	ID          uint                        `gorm:"primaryKey" json:"id"`
	Name        string                      `gorm:"not null" json:"name"`
	Description string                      `json:"description"`
	Date        time.Time                   `gorm:"not null" json:"date"`
	Location    string                      `json:"location"`
	Price       float64                     `gorm:"not null" json:"price"`
	Tags        datatypes.JSONSlice[string] `json:"tags"`
	ImageURLs   datatypes.JSONSlice[string] `json:"image_urls"`
	CreatedAt   time.Time                   `json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`
}
