package models

import "time"

// HistoryRecord is one stored Q&A pair. Ownership is by username value
// only; there is no foreign key back to users.
type HistoryRecord struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"index;not null" json:"username"`
	Question string `gorm:"type:text;not null" json:"question"`
	Answer   string `gorm:"type:text;not null" json:"answer"`
}

func (HistoryRecord) TableName() string {
	return "history"
}

// Upload records metadata for an accepted study-material file. The blob
// itself lives in the upload directory and is never read back.
type Upload struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"index;not null" json:"username"`
	Filename  string    `gorm:"not null" json:"filename"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Upload) TableName() string {
	return "uploads"
}
