package model

import (
	"time"
)

// Announcement is a public board post in the Announcements store. Posts are
// time-bounded: list queries exclude anything past the retention window and
// the purge job deletes expired rows.
type Announcement struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Date      string    `gorm:"type:varchar(10);not null" json:"date"` // YYYY-MM-DD, as the board renders it
	Author    string    `gorm:"not null" json:"author"`                // poster's email
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Announcement) TableName() string {
	return "announcements"
}
