package models

import "time"

// Guest rows accrete over time and are deduplicated by email: the booking
// writer looks a guest up by email before creating a new row.
type Guest struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	FirstName string `gorm:"size:150" json:"firstName"`
	LastName  string `gorm:"size:150" json:"lastName"`
	Email     string `gorm:"size:150;uniqueIndex" json:"email"`
	Phone     string `gorm:"size:50" json:"phone,omitempty"`

	Address     string `gorm:"size:255" json:"address,omitempty"`
	City        string `gorm:"size:150" json:"city,omitempty"`
	Country     string `gorm:"size:150" json:"country,omitempty"`
	Nationality string `gorm:"size:150" json:"nationality,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
