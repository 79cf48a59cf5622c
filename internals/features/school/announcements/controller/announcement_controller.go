// file: internals/features/school/announcements/controller/announcement_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"gjc_backend/internals/features/school/announcements/dto"
	"gjc_backend/internals/features/school/announcements/model"
	helper "gjc_backend/internals/helpers"
)

type AnnouncementController struct {
	DB *gorm.DB
}

func NewAnnouncementController(db *gorm.DB) *AnnouncementController {
	return &AnnouncementController{DB: db}
}

var validate = validator.New()

// GET /api/announcements — publik, terbaru duluan
func (ctrl *AnnouncementController) List(c *fiber.Ctx) error {
	var items []model.AnnouncementModel
	if err := ctrl.DB.Order("created_at DESC").Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.AnnouncementResponse, 0, len(items))
	for _, a := range items {
		resp = append(resp, dto.NewAnnouncementResponse(a))
	}
	return helper.JsonOK(c, "ok", resp)
}

// POST /api/announcements (principal)
func (ctrl *AnnouncementController) Create(c *fiber.Ctx) error {
	var req dto.CreateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	item := req.ToModel()
	if err := ctrl.DB.Create(&item).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat pengumuman")
	}
	return helper.JsonCreated(c, "Announcement created", dto.NewAnnouncementResponse(item))
}

// PUT /api/announcements/:id (principal, partial)
func (ctrl *AnnouncementController) Update(c *fiber.Ctx) error {
	announcementID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid announcement ID format")
	}

	var req dto.UpdateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var item model.AnnouncementModel
	if err := ctrl.DB.First(&item, "id = ?", announcementID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Announcement not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	updates := map[string]any{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Content != nil {
		updates["content"] = *req.Content
	}
	if req.Link != nil {
		updates["link"] = *req.Link
	}
	if req.LinkText != nil {
		updates["link_text"] = *req.LinkText
	}

	if len(updates) > 0 {
		if err := ctrl.DB.Model(&item).Updates(updates).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update pengumuman")
		}
	}

	if err := ctrl.DB.First(&item, "id = ?", announcementID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Announcement updated", dto.NewAnnouncementResponse(item))
}

// DELETE /api/announcements/:id (principal)
func (ctrl *AnnouncementController) Delete(c *fiber.Ctx) error {
	announcementID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid announcement ID format")
	}

	var item model.AnnouncementModel
	if err := ctrl.DB.First(&item, "id = ?", announcementID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Announcement not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := ctrl.DB.Delete(&item).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hapus pengumuman")
	}
	return helper.JsonDeleted(c, "Announcement deleted", nil)
}
