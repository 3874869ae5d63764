package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NavigationCause string

const (
	NavigationCauseUser   NavigationCause = "USER"
	NavigationCauseLogin  NavigationCause = "LOGIN"
	NavigationCauseLogout NavigationCause = "LOGOUT"
	NavigationCauseRender NavigationCause = "RENDER"
)

type NavigationLog struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	ClientID  uuid.UUID       `gorm:"type:uuid;not null" json:"client_id"`
	FromView  string          `gorm:"type:varchar(64);not null" json:"from_view"`
	ToView    string          `gorm:"type:varchar(64);not null" json:"to_view"`
	Requested string          `gorm:"type:varchar(64)" json:"requested"`
	Allowed   bool            `gorm:"not null" json:"allowed"`
	Cause     NavigationCause `gorm:"type:varchar(16);not null" json:"cause"`
	RoleType  *RoleType       `gorm:"type:varchar(32)" json:"role_type"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (NavigationLog) TableName() string {
	return "navigation_log"
}

func (l *NavigationLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
