package handlers

import (
	"github.com/amrhendawy/vetdesk/database"
	"github.com/amrhendawy/vetdesk/models"
	"github.com/gofiber/fiber/v2"
)

type CreateBoardingConfigRequest struct {
	NameEn       string   `json:"name_en" validate:"required"`
	NameAr       string   `json:"name_ar" validate:"required"`
	BoardingType string   `json:"boarding_type" validate:"required,oneof=boarding icu"`
	Species      string   `json:"species" validate:"required"`
	TotalSlots   int      `json:"total_slots" validate:"required,min=1"`
	PricePerDay  *float64 `json:"price_per_day" validate:"omitempty,gte=0"`
	Notes        *string  `json:"notes"`
}

func CreateBoardingConfig(c *fiber.Ctx) error {
	var req CreateBoardingConfigRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	cfg := models.BoardingConfig{
		NameEn:       req.NameEn,
		NameAr:       req.NameAr,
		BoardingType: req.BoardingType,
		Species:      req.Species,
		TotalSlots:   req.TotalSlots,
		PricePerDay:  req.PricePerDay,
		Notes:        req.Notes,
		IsActive:     true,
	}
	if err := database.DB.Create(&cfg).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create boarding configuration"})
	}

	return c.Status(fiber.StatusCreated).JSON(cfg)
}

type UpdateBoardingConfigRequest struct {
	NameEn      *string  `json:"name_en" validate:"omitempty,min=1"`
	NameAr      *string  `json:"name_ar" validate:"omitempty,min=1"`
	TotalSlots  *int     `json:"total_slots" validate:"omitempty,min=1"`
	PricePerDay *float64 `json:"price_per_day" validate:"omitempty,gte=0"`
	Notes       *string  `json:"notes"`
	IsActive    *bool    `json:"is_active"`
}

// UpdateBoardingConfig edits the mutable fields of a configuration. The
// boarding type and species are fixed at creation and silently ignored here.
func UpdateBoardingConfig(c *fiber.Ctx) error {
	var req UpdateBoardingConfigRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var cfg models.BoardingConfig
	if err := database.DB.First(&cfg, "id = ?", c.Params("configId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Boarding configuration not found"})
	}

	if req.NameEn != nil {
		cfg.NameEn = *req.NameEn
	}
	if req.NameAr != nil {
		cfg.NameAr = *req.NameAr
	}
	if req.TotalSlots != nil {
		cfg.TotalSlots = *req.TotalSlots
	}
	if req.PricePerDay != nil {
		cfg.PricePerDay = req.PricePerDay
	}
	if req.Notes != nil {
		cfg.Notes = req.Notes
	}
	if req.IsActive != nil {
		cfg.IsActive = *req.IsActive
	}

	if err := database.DB.Save(&cfg).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update boarding configuration"})
	}

	return c.JSON(cfg)
}

func ListBoardingConfigs(c *fiber.Ctx) error {
	query := database.DB.Model(&models.BoardingConfig{})

	if boardingType := c.Query("type"); boardingType != "" {
		query = query.Where("boarding_type = ?", boardingType)
	}
	if species := c.Query("species"); species != "" {
		query = query.Where("species = ?", species)
	}
	if isActive := c.Query("is_active"); isActive != "" {
		query = query.Where("is_active = ?", isActive == "true")
	}

	var configs []models.BoardingConfig
	if err := query.Order("created_at asc").Find(&configs).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(configs)
}

// DeactivateBoardingConfig hides a configuration from new check-ins. Open
// sessions keep running against it and check out normally.
func DeactivateBoardingConfig(c *fiber.Ctx) error {
	var cfg models.BoardingConfig
	if err := database.DB.First(&cfg, "id = ?", c.Params("configId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Boarding configuration not found"})
	}

	cfg.IsActive = false
	if err := database.DB.Save(&cfg).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to deactivate boarding configuration"})
	}

	return c.JSON(fiber.Map{"message": "Boarding configuration deactivated", "config": cfg})
}
