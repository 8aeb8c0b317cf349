package dto

import (
	"time"

	"github.com/tripvista/travel-api/internal/models"
)

type BookingResponse struct {
	ID          string                `json:"id"`
	Type        models.BookingType    `json:"type"`
	PackageID   *uint                 `json:"package_id,omitempty"`
	EventID     *uint                 `json:"event_id,omitempty"`
	SubjectName string                `json:"subject_name"`
	Details     models.BookingDetails `json:"details"`
	UnitPrice   float64               `json:"unit_price"`
	TotalAmount float64               `json:"total_amount"`
	Status      models.BookingStatus  `json:"status"`
	CreatedAt   time.Time             `json:"created_at"`
}

type UploadResponse struct {
	URL string `json:"url"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	return BookingResponse{
		ID:          b.ID,
		Type:        b.Type,
		PackageID:   b.PackageID,
		EventID:     b.EventID,
		SubjectName: b.SubjectName,
		Details:     b.Details,
		UnitPrice:   b.UnitPrice,
		TotalAmount: b.TotalAmount,
		Status:      b.Status,
		CreatedAt:   b.CreatedAt,
	}
}
