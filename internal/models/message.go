package models

import (
	"time"
)

// Message represents a message between two users. Messages are created
// once, mutated only to flip Read to true, and never deleted.
type Message struct {
	BaseModel
	SenderID   string    `gorm:"size:36;index;not null" json:"senderId"`
	ReceiverID string    `gorm:"size:36;index;not null" json:"receiverId"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	Read       bool      `gorm:"default:false" json:"read"`
	SentAt     time.Time `gorm:"index" json:"sentAt"`

	// Relations
	Sender   User `gorm:"foreignKey:SenderID" json:"-"`
	Receiver User `gorm:"foreignKey:ReceiverID" json:"-"`
}
