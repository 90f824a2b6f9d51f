package model

import (
	"time"
)

// ChatMessage is one entry in the Admin/Administrator internal chat, kept in
// the Announcements store. Same retention scheme as announcements.
type ChatMessage struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Sender    string    `gorm:"not null" json:"sender"` // email of the posting principal
	Message   string    `gorm:"type:text;not null" json:"message"`
	Role      Role      `gorm:"type:varchar(20);not null" json:"role"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
