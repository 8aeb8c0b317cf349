package models

import (
	"time"

	"gorm.io/datatypes"
)

// Conventionally recognized package tags. Tags are free-form; these two
// get special placement on the public site.
const (
	TagFeatured     = "Featured"
	TagLimitedOffer = "Limited Offer"
)

type Package struct {
	ID          uint                        `gorm:"primaryKey" json:"id"`
	Name        string                      `gorm:"not null" json:"name"`
	Price       float64                     `gorm:"not null" json:"price"`
	Description string                      `json:"description"`
	Itinerary   datatypes.JSONSlice[string] `json:"itinerary"`
	Included    datatypes.JSONSlice[string] `json:"included"`
	Excluded    datatypes.JSONSlice[string] `json:"excluded"`
	Tags        datatypes.JSONSlice[string] `json:"tags"`
	ImageURLs   datatypes.JSONSlice[string] `json:"image_urls"`
	Destination string                      `json:"destination"`
	Duration    string                      `json:"duration"`
	CategoryID  uint                        `gorm:"not null;index" json:"category_id"`
	// Snapshot of the category name at create/update time. Renaming the
	// category does not cascade here.
	CategoryName string    `json:"category_name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CoverImage returns the first image URL, the one shown on listing cards.
func (p *Package) CoverImage() string {
	if len(p.ImageURLs) == 0 {
		return ""
	}
	return p.ImageURLs[0]
}
