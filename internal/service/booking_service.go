package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/tripvista/travel-api/internal/auth"
	"github.com/tripvista/travel-api/internal/dto"
	"github.com/tripvista/travel-api/internal/models"
	"github.com/tripvista/travel-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrAuthRequired       = errors.New("authentication required")
	ErrInvalidEmail       = errors.New("a valid email address is required")
	ErrInvalidBookingData = errors.New("invalid booking data")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrBadTransition      = errors.New("status transition not allowed")
)

// RoutingKeyBookingCreated is published after a booking commits so the
// notifier can send the confirmation mail out of band.
const RoutingKeyBookingCreated = "booking.created"

// Publisher is the slice of pkg/rabbitmq.Publisher the booking flow needs.
type Publisher interface {
	Publish(routingKey string, payload any) error
}

type BookingService interface {
	CreateBooking(ctx context.Context, user *auth.User, req dto.CreateBookingRequest) (*models.Booking, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	ListBookings(ctx context.Context, status *models.BookingStatus) ([]models.Booking, error)
	ListUserBookings(ctx context.Context, userID string) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id string, status models.BookingStatus) (*models.Booking, error)
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	packageRepo repository.PackageRepository
	eventRepo   repository.EventRepository
	publisher   Publisher
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	packageRepo repository.PackageRepository,
	eventRepo repository.EventRepository,
	publisher Publisher,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		packageRepo: packageRepo,
		eventRepo:   eventRepo,
		publisher:   publisher,
	}
}

// CreateBooking validates the request, snapshots the catalog price and
// persists the booking as pending. The total is always recomputed from the
// catalog's current unit price; a caller-supplied total_amount is ignored.
func (s *bookingService) CreateBooking(ctx context.Context, user *auth.User, req dto.CreateBookingRequest) (*models.Booking, error) {
	if user == nil || user.ID == "" {
		return nil, ErrAuthRequired
	}
	if user.Email == "" || !strings.Contains(user.Email, "@") {
		return nil, ErrInvalidEmail
	}
	if req.Travelers < 1 {
		return nil, fmt.Errorf("%w: travelers must be at least 1", ErrInvalidBookingData)
	}
	if req.ContactNumber == "" {
		return nil, fmt.Errorf("%w: contact_number is required", ErrInvalidBookingData)
	}

	booking := &models.Booking{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		UserEmail: user.Email,
		UserName:  user.Name,
		Type:      req.Type,
		Details: models.BookingDetails{
			Travelers:       req.Travelers,
			TravelDate:      req.TravelDate,
			ContactNumber:   req.ContactNumber,
			SpecialRequests: req.SpecialRequests,
		},
		Status: models.StatusPending,
	}

	switch req.Type {
	case models.BookingTypePackage:
		if req.PackageID == nil {
			return nil, fmt.Errorf("%w: package_id is required for a package booking", ErrInvalidBookingData)
		}
		pkg, err := s.packageRepo.FindByID(ctx, *req.PackageID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrPackageNotFound
			}
			return nil, err
		}
		booking.PackageID = &pkg.ID
		booking.SubjectName = pkg.Name
		booking.UnitPrice = pkg.Price
	case models.BookingTypeEvent:
		if req.EventID == nil {
			return nil, fmt.Errorf("%w: event_id is required for an event booking", ErrInvalidBookingData)
		}
		event, err := s.eventRepo.FindByID(ctx, *req.EventID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrEventNotFound
			}
			return nil, err
		}
		booking.EventID = &event.ID
		booking.SubjectName = event.Name
		booking.UnitPrice = event.Price
	default:
		return nil, fmt.Errorf("%w: type must be package or event", ErrInvalidBookingData)
	}

	booking.TotalAmount = booking.UnitPrice * float64(req.Travelers)

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	// Best effort: the booking is committed; a lost notification is only a
	// missed email, never a failed booking.
	if s.publisher != nil {
		if err := s.publisher.Publish(RoutingKeyBookingCreated, booking); err != nil {
			log.Printf("[Booking] notify publish failed for %s: %v", booking.ID, err)
		}
	}

	return booking, nil
}

func (s *bookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) ListBookings(ctx context.Context, status *models.BookingStatus) ([]models.Booking, error) {
	return s.bookingRepo.FindAll(ctx, status)
}

func (s *bookingService) ListUserBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	return s.bookingRepo.FindByUserID(ctx, userID)
}

// allowedTransitions: a pending booking can be confirmed or cancelled, a
// confirmed one only cancelled. Cancelled is terminal.
var allowedTransitions = map[models.BookingStatus][]models.BookingStatus{
	models.StatusPending:   {models.StatusConfirmed, models.StatusCancelled},
	models.StatusConfirmed: {models.StatusCancelled},
}

func (s *bookingService) UpdateStatus(ctx context.Context, id string, status models.BookingStatus) (*models.Booking, error) {
	booking, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	ok := false
	for _, next := range allowedTransitions[booking.Status] {
		if next == status {
			ok = true
			break
		}
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s -> %s", ErrBadTransition, booking.Status, status)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("update booking status: %w", err)
	}
	booking.Status = status
	return booking, nil
}
