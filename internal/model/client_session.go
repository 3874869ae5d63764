package model

import (
	"time"

	"github.com/google/uuid"
)

// ClientSession holds the navigation state of one connected client and the
// user attached to it, if any.
type ClientSession struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	UserID        *uuid.UUID `gorm:"type:uuid" json:"user_id"`
	ActiveView    string     `gorm:"type:varchar(64);not null;default:'home'" json:"active_view"`
	AttemptedView *string    `gorm:"type:varchar(64)" json:"attempted_view"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

func (ClientSession) TableName() string {
	return "client_sessions"
}
