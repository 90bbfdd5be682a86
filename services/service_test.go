package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pension-backend/config"
	"pension-backend/models"
)

// setupTestDB opens a per-test in-memory sqlite database. A single
// connection keeps every query on the same memory store.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))
	return db
}

type testServices struct {
	db           *gorm.DB
	catalog      *CatalogService
	availability *AvailabilityService
	pricing      *PricingService
	booking      *BookingService
	reservations *ReservationService
	invoices     *InvoiceService
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()

	db := setupTestDB(t)
	catalog := NewCatalogService(db)
	availability := NewAvailabilityService(db, catalog)
	pricing, err := NewPricingService(catalog, config.PricingConfig{
		TaxRate:       "0.21",
		BreakfastRate: "8",
	})
	require.NoError(t, err)

	return &testServices{
		db:           db,
		catalog:      catalog,
		availability: availability,
		pricing:      pricing,
		booking:      NewBookingService(db, availability, pricing, catalog, zap.NewNop()),
		reservations: NewReservationService(db),
		invoices:     NewInvoiceService(db),
	}
}

func createTestRoomType(t *testing.T, db *gorm.DB, name string, basePrice int64, maxOccupancy int) models.RoomType {
	t.Helper()
	rt := models.RoomType{
		Name:         name,
		BasePrice:    decimal.NewFromInt(basePrice),
		MaxOccupancy: maxOccupancy,
	}
	require.NoError(t, db.Create(&rt).Error)
	return rt
}

func createTestRoom(t *testing.T, db *gorm.DB, number string, roomTypeID uint, status string) models.Room {
	t.Helper()
	room := models.Room{
		RoomNumber: number,
		Floor:      1,
		Status:     status,
		RoomTypeID: roomTypeID,
	}
	require.NoError(t, db.Create(&room).Error)
	return room
}

func createTestReservation(t *testing.T, db *gorm.DB, roomID uint, checkIn, checkOut time.Time, status string) models.Reservation {
	t.Helper()
	guest := models.Guest{
		FirstName: "Jana",
		LastName:  "Veselá",
		Email:     "jana." + checkIn.Format("20060102") + "@example.cz",
	}
	require.NoError(t, db.Create(&guest).Error)

	reservation := models.Reservation{
		GuestID:     guest.ID,
		RoomID:      roomID,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		Adults:      2,
		Status:      status,
		TotalAmount: decimal.NewFromInt(1000),
	}
	require.NoError(t, db.Create(&reservation).Error)
	return reservation
}

// daysFromNow returns midnight n days ahead; validation rejects past
// check-ins, so tests book in the future.
func daysFromNow(n int) time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, n)
}

func testGuestInfo(email string) GuestInfo {
	return GuestInfo{
		FirstName: "Karel",
		LastName:  "Novák",
		Email:     email,
		Phone:     "+420123456789",
	}
}
