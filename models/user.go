package models

// User model for authentication
//
// Passwords are stored verbatim to match the existing login contract;
// hashing is tracked as an open question in DESIGN.md.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `gorm:"not null" json:"-"`
}

func (User) TableName() string {
	return "users"
}
