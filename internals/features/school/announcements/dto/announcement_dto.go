// file: internals/features/school/announcements/dto/announcement_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "gjc_backend/internals/features/school/announcements/model"
)

type CreateAnnouncementRequest struct {
	Title    string  `json:"title" validate:"required,max=255"`
	Content  string  `json:"content" validate:"required"`
	Link     *string `json:"link" validate:"omitempty,url"`
	LinkText *string `json:"link_text" validate:"omitempty,max=255"`
}

// Update (partial JSON)
type UpdateAnnouncementRequest struct {
	Title    *string `json:"title" validate:"omitempty,max=255"`
	Content  *string `json:"content" validate:"omitempty"`
	Link     *string `json:"link" validate:"omitempty,url"`
	LinkText *string `json:"link_text" validate:"omitempty,max=255"`
}

type AnnouncementResponse struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Link      *string    `json:"link,omitempty"`
	LinkText  *string    `json:"link_text,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func (r CreateAnnouncementRequest) ToModel() m.AnnouncementModel {
	return m.AnnouncementModel{
		Title:    r.Title,
		Content:  r.Content,
		Link:     r.Link,
		LinkText: r.LinkText,
	}
}

func NewAnnouncementResponse(mdl m.AnnouncementModel) AnnouncementResponse {
	return AnnouncementResponse{
		ID:        mdl.ID,
		Title:     mdl.Title,
		Content:   mdl.Content,
		Link:      mdl.Link,
		LinkText:  mdl.LinkText,
		CreatedAt: mdl.CreatedAt,
		UpdatedAt: mdl.UpdatedAt,
	}
}
