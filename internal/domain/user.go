package domain

// User Model
type User struct {
	ID       uint      `gorm:"primaryKey" json:"id"`         // Primary key
	Name     string    `gorm:"not null" json:"name"`         // Display name
	Email    string    `gorm:"unique;not null" json:"email"` // Unique login email
	Password string    `gorm:"not null" json:"-"`            // Hashed password
	Image    string    `json:"image,omitempty"`              // Optional avatar URL
	Accounts []Account `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"` // Accounts owned by this user
}
