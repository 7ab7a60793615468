package models

import "time"

type Medspa struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Address      string    `gorm:"not null" json:"address"`
	PhoneNumber  string    `gorm:"type:varchar(32);not null" json:"phone_number"`
	EmailAddress string    `gorm:"not null" json:"email_address"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
