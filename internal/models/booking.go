package models

import "time"

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

type BookingType string

const (
	BookingTypePackage BookingType = "package"
	BookingTypeEvent   BookingType = "event"
)

// BookingDetails is embedded in Booking; the customer-entered trip data.
type BookingDetails struct {
	Travelers       int       `gorm:"not null" json:"travelers"`
	TravelDate      time.Time `gorm:"not null" json:"travel_date"`
	ContactNumber   string    `gorm:"not null" json:"contact_number"`
	SpecialRequests string    `json:"special_requests,omitempty"`
}

type Booking struct {
	ID        string      `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID    string      `gorm:"not null;index" json:"user_id"`
	UserEmail string      `gorm:"not null" json:"user_email"`
	UserName  string      `json:"user_name"`
	Type      BookingType `gorm:"type:varchar(10);not null" json:"type"`

	// Exactly one of PackageID/EventID is set, matching Type.
	PackageID *uint `gorm:"index" json:"package_id,omitempty"`
	EventID   *uint `gorm:"index" json:"event_id,omitempty"`
	// Snapshot of the booked subject's name, so invoices survive catalog edits.
	SubjectName string `json:"subject_name"`

	Details BookingDetails `gorm:"embedded;embeddedPrefix:detail_" json:"details"`

	// UnitPrice snapshots the catalog price at booking time;
	// TotalAmount = UnitPrice * Details.Travelers, computed server-side.
	UnitPrice   float64 `gorm:"not null" json:"unit_price"`
	TotalAmount float64 `gorm:"not null" json:"total_amount"`

	Status    BookingStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
