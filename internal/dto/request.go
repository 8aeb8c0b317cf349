package dto

import (
	"time"

	"github.com/tripvista/travel-api/internal/models"
)

type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
}

type CreatePackageRequest struct {
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Itinerary   []string `json:"itinerary"`
	Included    []string `json:"included"`
	Excluded    []string `json:"excluded"`
	Tags        []string `json:"tags"`
	ImageURLs   []string `json:"image_urls"`
	Destination string   `json:"destination"`
	Duration    string   `json:"duration"`
	CategoryID  uint     `json:"category_id"`
}

type UpdatePackageRequest struct {
	Name        *string   `json:"name,omitempty"`
	Price       *float64  `json:"price,omitempty"`
	Description *string   `json:"description,omitempty"`
	Itinerary   *[]string `json:"itinerary,omitempty"`
	Included    *[]string `json:"included,omitempty"`
	Excluded    *[]string `json:"excluded,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
	ImageURLs   *[]string `json:"image_urls,omitempty"`
	Destination *string   `json:"destination,omitempty"`
	Duration    *string   `json:"duration,omitempty"`
	CategoryID  *uint     `json:"category_id,omitempty"`
}

type CreateEventRequest struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	Price       float64   `json:"price"`
	Tags        []string  `json:"tags"`
	ImageURLs   []string  `json:"image_urls"`
}

type UpdateEventRequest struct {
	Name        *string    `json:"name,omitempty"`
	Description *string    `json:"description,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
	Location    *string    `json:"location,omitempty"`
	Price       *float64   `json:"price,omitempty"`
	Tags        *[]string  `json:"tags,omitempty"`
	ImageURLs   *[]string  `json:"image_urls,omitempty"`
}

type CreateBookingRequest struct {
	Type      models.BookingType `json:"type"`
	PackageID *uint              `json:"package_id,omitempty"`
	EventID   *uint              `json:"event_id,omitempty"`

	Travelers       int       `json:"travelers"`
	TravelDate      time.Time `json:"travel_date"`
	ContactNumber   string    `json:"contact_number"`
	SpecialRequests string    `json:"special_requests,omitempty"`

	// Accepted for wire compatibility but never trusted; the server
	// recomputes the total from the catalog price.
	TotalAmount float64 `json:"total_amount,omitempty"`
}

type UpdateBookingStatusRequest struct {
	Status models.BookingStatus `json:"status"`
}

type CreateContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}
