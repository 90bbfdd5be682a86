package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pension-backend/models"
)

// ConnectDatabase opens the Postgres connection, migrates the schema and
// installs the reservation overlap guard.
func ConnectDatabase(cfg *Config) (*gorm.DB, error) {
	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	SeedDatabase(db)
	return db, nil
}

// Migrate runs AutoMigrate in parent->child order, then the raw-SQL pieces
// AutoMigrate cannot express.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.RoomType{},
		&models.Room{},
		&models.Guest{},
		&models.Reservation{},
		&models.Invoice{},
	); err != nil {
		return err
	}
	return installOverlapConstraint(db)
}

// installOverlapConstraint adds the GiST exclusion constraint that makes
// double-booking impossible at the storage level, even for writers outside
// this process. Postgres only; the sqlite test databases rely on the
// application-level guard alone.
func installOverlapConstraint(db *gorm.DB) error {
	if db.Dialector.Name() != "postgres" {
		return nil
	}

	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS btree_gist").Error; err != nil {
		return fmt.Errorf("btree_gist extension: %w", err)
	}

	var count int64
	err := db.Raw(
		"SELECT COUNT(*) FROM pg_constraint WHERE conname = ?",
		"reservations_no_overlap",
	).Scan(&count).Error
	if err != nil {
		return fmt.Errorf("check overlap constraint: %w", err)
	}
	if count > 0 {
		return nil
	}

	stmt := `ALTER TABLE reservations ADD CONSTRAINT reservations_no_overlap
EXCLUDE USING gist (room_id WITH =, daterange(check_in, check_out) WITH &&)
WHERE (status <> 'cancelled')`
	if err := db.Exec(stmt).Error; err != nil {
		return fmt.Errorf("create overlap constraint: %w", err)
	}
	log.Println("reservations_no_overlap constraint installed")
	return nil
}

// SeedDatabase fills an empty catalog with the pension's room layout so a
// fresh deployment is bookable. Existing data is never touched.
func SeedDatabase(db *gorm.DB) {
	var rtCount int64
	db.Model(&models.RoomType{}).Count(&rtCount)
	if rtCount > 0 {
		return
	}

	roomTypes := []models.RoomType{
		{
			Name:         "Dvoulůžkový pokoj",
			Description:  "Pokoj s manželskou postelí a výhledem do dvora",
			BasePrice:    decimal.NewFromInt(1800),
			MaxOccupancy: 2,
			Amenities:    datatypes.JSON([]byte(`["wifi","tv","koupelna"]`)),
		},
		{
			Name:         "Třílůžkový pokoj",
			Description:  "Prostorný pokoj pro tři osoby",
			BasePrice:    decimal.NewFromInt(2200),
			MaxOccupancy: 3,
			Amenities:    datatypes.JSON([]byte(`["wifi","tv","koupelna"]`)),
		},
		{
			Name:         "Apartmá",
			Description:  "Apartmá s oddělenou ložnicí a kuchyňkou",
			BasePrice:    decimal.NewFromInt(3500),
			MaxOccupancy: 4,
			Amenities:    datatypes.JSON([]byte(`["wifi","tv","koupelna","kuchyňka"]`)),
		},
	}
	if err := db.Create(&roomTypes).Error; err != nil {
		log.Printf("warning: failed to seed room types: %v", err)
		return
	}

	rooms := []models.Room{
		{RoomNumber: "101", Floor: 1, Status: models.RoomStatusAvailable, RoomTypeID: roomTypes[0].ID},
		{RoomNumber: "102", Floor: 1, Status: models.RoomStatusAvailable, RoomTypeID: roomTypes[0].ID},
		{RoomNumber: "103", Floor: 1, Status: models.RoomStatusAvailable, RoomTypeID: roomTypes[1].ID},
		{RoomNumber: "201", Floor: 2, Status: models.RoomStatusAvailable, RoomTypeID: roomTypes[0].ID},
		{RoomNumber: "202", Floor: 2, Status: models.RoomStatusAvailable, RoomTypeID: roomTypes[1].ID},
		{RoomNumber: "203", Floor: 2, Status: models.RoomStatusAvailable, RoomTypeID: roomTypes[2].ID},
	}
	if err := db.Create(&rooms).Error; err != nil {
		log.Printf("warning: failed to seed rooms: %v", err)
		return
	}

	log.Println("Catalog seeded")
}
