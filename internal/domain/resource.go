package domain

import "time"

type Resource struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Quantity  uint      `json:"quantity"`
	Available bool      `json:"available"`
	CreatedAt time.Time `json:"createdAt"`
}
