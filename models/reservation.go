package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	ReservationStatusPending    = "pending"
	ReservationStatusConfirmed  = "confirmed"
	ReservationStatusCheckedIn  = "checked_in"
	ReservationStatusCheckedOut = "checked_out"
	ReservationStatusCancelled  = "cancelled"
)

// Reservation books one physical room for a half-open date range: the stay
// occupies the nights check_in .. check_out-1, so back-to-back stays on the
// same room do not conflict. Rows are never deleted; cancellation is a
// status, which keeps the overlap invariant auditable.
//
// Central invariant: for a given room, no two non-cancelled reservations may
// overlap (new.check_in < existing.check_out AND new.check_out >
// existing.check_in). On Postgres this is additionally enforced by an
// exclusion constraint, see config.ConnectDatabase.
type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	GuestID uint  `gorm:"index;column:guest_id" json:"guest_id"`
	RoomID  uint  `gorm:"index;column:room_id" json:"room_id"`
	Guest   Guest `gorm:"foreignKey:GuestID" json:"guest,omitempty"`
	Room    Room  `gorm:"foreignKey:RoomID" json:"room,omitempty"`

	CheckIn  time.Time `gorm:"column:check_in;type:date" json:"check_in"`
	CheckOut time.Time `gorm:"column:check_out;type:date" json:"check_out"`

	Adults   int `gorm:"column:adults;default:1" json:"adults"`
	Children int `gorm:"column:children;default:0" json:"children"`

	Status      string          `gorm:"size:32;index;default:pending" json:"status"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2);column:total_amount" json:"total_amount"`
	Notes       string          `gorm:"type:text" json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

var reservationTransitions = map[string][]string{
	ReservationStatusPending:   {ReservationStatusConfirmed, ReservationStatusCancelled},
	ReservationStatusConfirmed: {ReservationStatusCheckedIn, ReservationStatusCancelled},
	ReservationStatusCheckedIn: {ReservationStatusCheckedOut},
}

// CanTransitionTo reports whether the lifecycle allows moving from the
// reservation's current status to the target one.
func (r *Reservation) CanTransitionTo(target string) bool {
	for _, next := range reservationTransitions[r.Status] {
		if next == target {
			return true
		}
	}
	return false
}

// Overlaps applies the half-open interval test against another window.
func (r *Reservation) Overlaps(checkIn, checkOut time.Time) bool {
	return checkIn.Before(r.CheckOut) && checkOut.After(r.CheckIn)
}
