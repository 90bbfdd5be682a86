package models

import (
	"time"

	"gorm.io/gorm"
)

// Operational room statuses. This is a coarse housekeeping flag; whether a
// room is booked for specific dates is derived from reservations, never from
// this field.
const (
	RoomStatusAvailable  = "available"
	RoomStatusOccupied   = "occupied"
	RoomStatusCleaning   = "cleaning"
	RoomStatusOutOfOrder = "out_of_order"
)

type Room struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RoomNumber string `gorm:"column:room_number;uniqueIndex;type:varchar(50)" json:"roomNumber"`
	Floor      int    `gorm:"column:floor" json:"floor"`
	Status     string `gorm:"size:32;default:available" json:"status"`

	RoomTypeID uint     `gorm:"column:room_type_id;index" json:"roomTypeId"`
	RoomType   RoomType `gorm:"foreignKey:RoomTypeID" json:"roomType,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func ValidRoomStatus(s string) bool {
	switch s {
	case RoomStatusAvailable, RoomStatusOccupied, RoomStatusCleaning, RoomStatusOutOfOrder:
		return true
	}
	return false
}
