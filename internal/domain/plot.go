package domain

import "time"

// Plot references its owning User by id only. The referent is looked
// up on demand and may have been removed independently.
type Plot struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	UserID        string    `json:"userId" gorm:"not null"`
	Size          string    `json:"size" gorm:"not null"`
	Location      string    `json:"location" gorm:"not null"`
	ReservedUntil time.Time `json:"reservedUntil"`
	CreatedAt     time.Time `json:"createdAt"`
}
