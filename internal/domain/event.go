package domain

import "time"

type Event struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description" gorm:"not null"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location" gorm:"not null"`
	CreatedAt   time.Time `json:"createdAt"`
}
