package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tripvista/travel-api/internal/auth"
	"github.com/tripvista/travel-api/internal/dto"
	"github.com/tripvista/travel-api/internal/models"
	"gorm.io/gorm"
)

// --- Mock BookingRepository ---

type mockBookingRepo struct {
	createFn       func(ctx context.Context, booking *models.Booking) error
	findByIDFn     func(ctx context.Context, id string) (*models.Booking, error)
	findAllFn      func(ctx context.Context, status *models.BookingStatus) ([]models.Booking, error)
	findByUserFn   func(ctx context.Context, userID string) ([]models.Booking, error)
	updateStatusFn func(ctx context.Context, id string, status models.BookingStatus) error
}

func (m *mockBookingRepo) Create(ctx context.Context, b *models.Booking) error {
	return m.createFn(ctx, b)
}
func (m *mockBookingRepo) FindByID(ctx context.Context, id string) (*models.Booking, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockBookingRepo) FindAll(ctx context.Context, status *models.BookingStatus) ([]models.Booking, error) {
	return m.findAllFn(ctx, status)
}
func (m *mockBookingRepo) FindByUserID(ctx context.Context, userID string) ([]models.Booking, error) {
	return m.findByUserFn(ctx, userID)
}
func (m *mockBookingRepo) UpdateStatus(ctx context.Context, id string, status models.BookingStatus) error {
	return m.updateStatusFn(ctx, id, status)
}

// --- Mock Publisher ---

type mockPublisher struct {
	err  error
	keys []string
}

func (m *mockPublisher) Publish(routingKey string, payload any) error {
	m.keys = append(m.keys, routingKey)
	return m.err
}

// --- Fixtures ---

func customer() *auth.User {
	return &auth.User{ID: "user-42", Email: "jane@example.com", Name: "Jane Doe", Role: auth.RoleCustomer}
}

func packageBookingReq() dto.CreateBookingRequest {
	id := uint(7)
	return dto.CreateBookingRequest{
		Type:          models.BookingTypePackage,
		PackageID:     &id,
		Travelers:     3,
		TravelDate:    time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		ContactNumber: "+66 800 000 000",
	}
}

func repoWithPackage(price float64) *mockPackageRepo {
	return &mockPackageRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Package, error) {
			return &models.Package{ID: id, Name: "Bali Beach Escape", Price: price}, nil
		},
	}
}

// --- Tests ---

func TestCreateBooking_ComputesTotalFromCatalog(t *testing.T) {
	var stored *models.Booking
	bookingRepo := &mockBookingRepo{
		createFn: func(ctx context.Context, b *models.Booking) error {
			stored = b
			return nil
		},
	}

	svc := NewBookingService(bookingRepo, repoWithPackage(100), nil, nil)

	req := packageBookingReq()
	// A lying client total must be ignored.
	req.TotalAmount = 1

	booking, err := svc.CreateBooking(context.Background(), customer(), req)

	require.NoError(t, err)
	assert.Equal(t, 100.0, booking.UnitPrice)
	assert.Equal(t, 300.0, booking.TotalAmount)
	assert.Equal(t, models.StatusPending, booking.Status)
	assert.Equal(t, "Bali Beach Escape", booking.SubjectName)
	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, stored, booking)
}

func TestCreateBooking_NoUser(t *testing.T) {
	svc := NewBookingService(&mockBookingRepo{}, repoWithPackage(100), nil, nil)
	_, err := svc.CreateBooking(context.Background(), nil, packageBookingReq())
	assert.ErrorIs(t, err, ErrAuthRequired)
}

func TestCreateBooking_InvalidEmail(t *testing.T) {
	svc := NewBookingService(&mockBookingRepo{}, repoWithPackage(100), nil, nil)

	user := customer()
	user.Email = "not-an-email"
	_, err := svc.CreateBooking(context.Background(), user, packageBookingReq())
	assert.ErrorIs(t, err, ErrInvalidEmail)

	user.Email = ""
	_, err = svc.CreateBooking(context.Background(), user, packageBookingReq())
	assert.ErrorIs(t, err, ErrInvalidEmail)
}

func TestCreateBooking_TravelersMustBePositive(t *testing.T) {
	svc := NewBookingService(&mockBookingRepo{}, repoWithPackage(100), nil, nil)

	req := packageBookingReq()
	req.Travelers = 0
	_, err := svc.CreateBooking(context.Background(), customer(), req)
	assert.ErrorIs(t, err, ErrInvalidBookingData)
}

func TestCreateBooking_PackageNotFound(t *testing.T) {
	packageRepo := &mockPackageRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Package, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := NewBookingService(&mockBookingRepo{}, packageRepo, nil, nil)
	_, err := svc.CreateBooking(context.Background(), customer(), packageBookingReq())
	assert.ErrorIs(t, err, ErrPackageNotFound)
}

func TestCreateBooking_EventSubject(t *testing.T) {
	eventRepo := &mockEventRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Event, error) {
			return &models.Event{ID: id, Name: "Lantern Festival", Price: 45}, nil
		},
	}
	bookingRepo := &mockBookingRepo{
		createFn: func(ctx context.Context, b *models.Booking) error { return nil },
	}

	eventID := uint(3)
	svc := NewBookingService(bookingRepo, nil, eventRepo, nil)
	booking, err := svc.CreateBooking(context.Background(), customer(), dto.CreateBookingRequest{
		Type:          models.BookingTypeEvent,
		EventID:       &eventID,
		Travelers:     2,
		TravelDate:    time.Date(2026, 11, 5, 0, 0, 0, 0, time.UTC),
		ContactNumber: "+1 555 0100",
	})

	require.NoError(t, err)
	assert.Equal(t, models.BookingTypeEvent, booking.Type)
	assert.Equal(t, 90.0, booking.TotalAmount)
	require.NotNil(t, booking.EventID)
	assert.Equal(t, eventID, *booking.EventID)
	assert.Nil(t, booking.PackageID)
}

func TestCreateBooking_MissingSubjectRef(t *testing.T) {
	svc := NewBookingService(&mockBookingRepo{}, repoWithPackage(100), nil, nil)

	req := packageBookingReq()
	req.PackageID = nil
	_, err := svc.CreateBooking(context.Background(), customer(), req)
	assert.ErrorIs(t, err, ErrInvalidBookingData)
}

func TestCreateBooking_PublishesAfterCommit(t *testing.T) {
	bookingRepo := &mockBookingRepo{
		createFn: func(ctx context.Context, b *models.Booking) error { return nil },
	}
	pub := &mockPublisher{}

	svc := NewBookingService(bookingRepo, repoWithPackage(100), nil, pub)
	_, err := svc.CreateBooking(context.Background(), customer(), packageBookingReq())

	require.NoError(t, err)
	assert.Equal(t, []string{RoutingKeyBookingCreated}, pub.keys)
}

func TestCreateBooking_PublishFailureDoesNotFailBooking(t *testing.T) {
	bookingRepo := &mockBookingRepo{
		createFn: func(ctx context.Context, b *models.Booking) error { return nil },
	}
	pub := &mockPublisher{err: errors.New("broker down")}

	svc := NewBookingService(bookingRepo, repoWithPackage(100), nil, pub)
	booking, err := svc.CreateBooking(context.Background(), customer(), packageBookingReq())

	assert.NoError(t, err)
	assert.NotNil(t, booking)
}

func TestUpdateStatus_AllowedTransition(t *testing.T) {
	bookingRepo := &mockBookingRepo{
		findByIDFn: func(ctx context.Context, id string) (*models.Booking, error) {
			return &models.Booking{ID: id, Status: models.StatusPending}, nil
		},
		updateStatusFn: func(ctx context.Context, id string, status models.BookingStatus) error {
			return nil
		},
	}

	svc := NewBookingService(bookingRepo, nil, nil, nil)
	booking, err := svc.UpdateStatus(context.Background(), "b-1", models.StatusConfirmed)

	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, booking.Status)
}

func TestUpdateStatus_CancelledIsTerminal(t *testing.T) {
	bookingRepo := &mockBookingRepo{
		findByIDFn: func(ctx context.Context, id string) (*models.Booking, error) {
			return &models.Booking{ID: id, Status: models.StatusCancelled}, nil
		},
	}

	svc := NewBookingService(bookingRepo, nil, nil, nil)
	_, err := svc.UpdateStatus(context.Background(), "b-1", models.StatusConfirmed)
	assert.ErrorIs(t, err, ErrBadTransition)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	bookingRepo := &mockBookingRepo{
		findByIDFn: func(ctx context.Context, id string) (*models.Booking, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := NewBookingService(bookingRepo, nil, nil, nil)
	_, err := svc.UpdateStatus(context.Background(), "missing", models.StatusConfirmed)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
