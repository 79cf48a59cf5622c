package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserPermissionModel: izin granular untuk user dengan role staff.
// Satu baris per user (di-upsert, bukan insert ulang).
type UserPermissionModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID           uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	CanAddStudent    bool      `gorm:"not null;default:false" json:"can_add_student"`
	CanEditStudent   bool      `gorm:"not null;default:false" json:"can_edit_student"`
	CanDeleteStudent bool      `gorm:"not null;default:false" json:"can_delete_student"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserPermissionModel) TableName() string {
	return "user_permissions"
}

func (p *UserPermissionModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
