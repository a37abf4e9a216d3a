package domain

import "time"

// User is a registered member of the community garden. Owner is the
// caller identity recorded at creation and never reassigned; under
// token auth it equals the user's own id.
type User struct {
	ID          string    `json:"userId" gorm:"primaryKey"`
	Owner       string    `json:"owner" gorm:"not null"`
	Name        string    `json:"name" gorm:"not null"`
	Email       string    `json:"email" gorm:"uniqueIndex;not null"`
	PhoneNumber string    `json:"phoneNumber" gorm:"not null"`
	Password    string    `json:"-" gorm:"not null"`
	CreatedAt   time.Time `json:"createdAt"`
}
