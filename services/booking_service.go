package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"pension-backend/models"
)

// BookingService is the write path: it re-checks availability, upserts the
// guest, prices the stay server-side and persists reservation + invoice in
// one transaction.
type BookingService struct {
	DB           *gorm.DB
	Availability *AvailabilityService
	Pricing      *PricingService
	Catalog      *CatalogService
	Logger       *zap.Logger

	locks *roomLocks
}

func NewBookingService(db *gorm.DB, availability *AvailabilityService, pricing *PricingService, catalog *CatalogService, logger *zap.Logger) *BookingService {
	return &BookingService{
		DB:           db,
		Availability: availability,
		Pricing:      pricing,
		Catalog:      catalog,
		Logger:       logger,
		locks:        newRoomLocks(),
	}
}

// GuestInfo is the identity the booker supplies. Email is the soft natural
// key for de-duplication.
type GuestInfo struct {
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	Nationality string
}

type CreateBookingInput struct {
	Guest             GuestInfo
	RoomTypeID        uint
	CheckIn           time.Time
	CheckOut          time.Time
	Adults            int
	Children          int
	BreakfastIncluded bool
	Notes             string
}

type BookingResult struct {
	ReservationID uint
	RoomNumber    string
	InvoiceNumber string
	TotalAmount   decimal.Decimal
}

// CreateBooking runs the whole booking attempt: validate, re-check conflict,
// upsert guest, price, persist reservation + invoice. The client-quoted
// total is never trusted; the price is always recomputed here.
func (s *BookingService) CreateBooking(in CreateBookingInput) (*BookingResult, error) {
	if err := validateGuestInfo(in.Guest); err != nil {
		return nil, err
	}
	if in.RoomTypeID == 0 {
		return nil, fmt.Errorf("%w: room type is required", ErrInvalidInput)
	}
	if in.Adults < 1 || in.Children < 0 {
		return nil, fmt.Errorf("%w: at least one adult, children must not be negative", ErrInvalidInput)
	}

	ci, co, err := validateStay(in.CheckIn, in.CheckOut)
	if err != nil {
		return nil, err
	}

	rt, err := s.Catalog.GetRoomType(in.RoomTypeID)
	if err != nil {
		return nil, err
	}
	if in.Adults+in.Children > rt.MaxOccupancy {
		return nil, fmt.Errorf("%w: party of %d exceeds max occupancy %d", ErrInvalidInput, in.Adults+in.Children, rt.MaxOccupancy)
	}

	quote, err := s.Pricing.Quote(in.RoomTypeID, ci, co, in.Adults, in.Children, in.BreakfastIncluded)
	if err != nil {
		return nil, err
	}

	candidates, err := s.Availability.FreeRoomsOfType(in.RoomTypeID, ci, co)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: no free room of type %d for the window", ErrRoomUnavailable, in.RoomTypeID)
	}

	// Rooms are tried lowest room number first. The per-room lock makes the
	// re-check and the insert atomic against concurrent in-process attempts;
	// the Postgres exclusion constraint covers everything else.
	for _, room := range candidates {
		result, err := s.bookRoom(room, in, quote, ci, co)
		if err == nil {
			s.Logger.Info("booking created",
				zap.Uint("reservation_id", result.ReservationID),
				zap.String("room", result.RoomNumber),
				zap.String("invoice", result.InvoiceNumber),
				zap.String("total", result.TotalAmount.String()),
			)
			return result, nil
		}
		if errors.Is(err, ErrRoomUnavailable) {
			// Another booking landed on this room since the candidate list
			// was built; try the next room of the type.
			continue
		}
		return nil, err
	}
	return nil, fmt.Errorf("%w: no free room of type %d for the window", ErrRoomUnavailable, in.RoomTypeID)
}

// bookRoom attempts the transactional write against one specific room.
func (s *BookingService) bookRoom(room models.Room, in CreateBookingInput, quote *PriceBreakdown, ci, co time.Time) (*BookingResult, error) {
	lock := s.locks.forRoom(room.ID)
	lock.Lock()
	defer lock.Unlock()

	var result BookingResult

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		conflict, err := s.Availability.RoomHasConflict(tx, room.ID, ci, co)
		if err != nil {
			return err
		}
		if conflict {
			return fmt.Errorf("%w: room %s already booked for the window", ErrRoomUnavailable, room.RoomNumber)
		}

		guest, err := upsertGuest(tx, in.Guest)
		if err != nil {
			return err
		}

		reservation := models.Reservation{
			GuestID:     guest.ID,
			RoomID:      room.ID,
			CheckIn:     ci,
			CheckOut:    co,
			Adults:      in.Adults,
			Children:    in.Children,
			Status:      models.ReservationStatusConfirmed,
			TotalAmount: quote.Total,
			Notes:       strings.TrimSpace(in.Notes),
		}
		if err := tx.Create(&reservation).Error; err != nil {
			if isConflictViolation(err) {
				return fmt.Errorf("%w: room %s already booked for the window", ErrRoomUnavailable, room.RoomNumber)
			}
			return storageErr("create reservation", err)
		}

		invoice, err := createInvoice(tx, &reservation, quote)
		if err != nil {
			return err
		}

		result = BookingResult{
			ReservationID: reservation.ID,
			RoomNumber:    room.RoomNumber,
			InvoiceNumber: invoice.InvoiceNumber,
			TotalAmount:   reservation.TotalAmount,
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return &result, nil
}

// upsertGuest reuses an existing guest row by email or creates a new one.
// Contact details of a returning guest are refreshed when supplied.
func upsertGuest(tx *gorm.DB, info GuestInfo) (*models.Guest, error) {
	email := strings.ToLower(strings.TrimSpace(info.Email))

	var guest models.Guest
	err := tx.Where("email = ?", email).First(&guest).Error
	switch {
	case err == nil:
		updates := map[string]interface{}{
			"first_name": strings.TrimSpace(info.FirstName),
			"last_name":  strings.TrimSpace(info.LastName),
		}
		if strings.TrimSpace(info.Phone) != "" {
			updates["phone"] = strings.TrimSpace(info.Phone)
		}
		if strings.TrimSpace(info.Nationality) != "" {
			updates["nationality"] = strings.TrimSpace(info.Nationality)
		}
		if err := tx.Model(&guest).Updates(updates).Error; err != nil {
			return nil, storageErr("update guest", err)
		}
		return &guest, nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		guest = models.Guest{
			FirstName:   strings.TrimSpace(info.FirstName),
			LastName:    strings.TrimSpace(info.LastName),
			Email:       email,
			Phone:       strings.TrimSpace(info.Phone),
			Nationality: strings.TrimSpace(info.Nationality),
		}
		if err := tx.Create(&guest).Error; err != nil {
			return nil, storageErr("create guest", err)
		}
		return &guest, nil

	default:
		return nil, storageErr("find guest", err)
	}
}

// createInvoice persists the invoice stub for a fresh reservation inside the
// same transaction. Invoice numbers are INV-<year>-<suffix>; collisions on
// the unique index are retried with a new suffix. Each attempt runs under a
// savepoint: Postgres aborts the whole transaction on a constraint violation,
// so without the rollback every retry after a collision would fail too.
func createInvoice(tx *gorm.DB, reservation *models.Reservation, quote *PriceBreakdown) (*models.Invoice, error) {
	const maxRetries = 5

	issueDate := dateOnly(time.Now())
	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		invoice := models.Invoice{
			ReservationID: reservation.ID,
			InvoiceNumber: newInvoiceNumber(issueDate.Year()),
			IssueDate:     issueDate,
			DueDate:       reservation.CheckIn,
			Subtotal:      quote.Subtotal,
			TaxAmount:     quote.TaxAmount,
			Total:         quote.Total,
			Status:        models.InvoiceStatusPending,
		}
		if err := tx.SavePoint("invoice_number").Error; err != nil {
			return nil, storageErr("invoice savepoint", err)
		}
		lastErr = tx.Create(&invoice).Error
		if lastErr == nil {
			return &invoice, nil
		}
		lc := strings.ToLower(lastErr.Error())
		if strings.Contains(lc, "duplicate") || strings.Contains(lc, "unique") {
			if err := tx.RollbackTo("invoice_number").Error; err != nil {
				return nil, storageErr("invoice savepoint rollback", err)
			}
			continue
		}
		return nil, storageErr("create invoice", lastErr)
	}
	return nil, storageErr("create invoice after retries", lastErr)
}

// invoiceSuffix is a hook so tests can force number collisions.
var invoiceSuffix = func() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
}

func newInvoiceNumber(year int) string {
	return fmt.Sprintf("INV-%d-%s", year, invoiceSuffix())
}

func validateGuestInfo(info GuestInfo) error {
	if strings.TrimSpace(info.FirstName) == "" ||
		strings.TrimSpace(info.LastName) == "" {
		return fmt.Errorf("%w: guest first and last name are required", ErrInvalidInput)
	}
	email := strings.TrimSpace(info.Email)
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: a valid guest email is required", ErrInvalidInput)
	}
	return nil
}
