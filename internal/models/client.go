package models

import "time"

// Client is the persisted row for a service-order customer.
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"size:50;not null" json:"name"`
	Email string `gorm:"size:255;not null" json:"email"`
	Phone string `gorm:"size:20;not null" json:"phone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
