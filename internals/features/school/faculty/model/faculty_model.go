package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FacultyModel: daftar pengajar yang tampil di halaman publik.
type FacultyModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name       string     `gorm:"size:255;not null;index" json:"name"`
	Position   string     `gorm:"size:255;not null" json:"position"`
	Department string     `gorm:"size:255;not null" json:"department"`
	Education  string     `gorm:"size:255;not null" json:"education"`
	Experience string     `gorm:"size:255;not null" json:"experience"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  *time.Time `gorm:"autoUpdateTime" json:"updated_at,omitempty"`
}

func (FacultyModel) TableName() string {
	return "faculty"
}

func (f *FacultyModel) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
