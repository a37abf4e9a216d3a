package domain

import "time"

type Activity struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	PlotID      string    `json:"plotId" gorm:"not null"`
	Description string    `json:"description" gorm:"not null"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
}
