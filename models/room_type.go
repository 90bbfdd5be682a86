package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RoomType is a bookable category ("Dvoulůžkový pokoj", "Apartmá", ...).
// Reservations persist their own computed total, so editing BasePrice never
// changes historical bookings.
type RoomType struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string          `gorm:"size:150;uniqueIndex" json:"name"`
	Description  string          `gorm:"type:text" json:"description"`
	BasePrice    decimal.Decimal `gorm:"type:decimal(10,2);column:base_price" json:"base_price"`
	MaxOccupancy int             `gorm:"column:max_occupancy" json:"max_occupancy"`
	Amenities    datatypes.JSON  `gorm:"column:amenities" json:"amenities,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
