package handlers

import (
	"time"

	"github.com/amrhendawy/vetdesk/database"
	"github.com/amrhendawy/vetdesk/models"
	"github.com/amrhendawy/vetdesk/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetBoardingKanban returns the urgency-banded board for the filtered set of
// active sessions. Bands are derived from the current clock on every request.
func GetBoardingKanban(c *fiber.Ctx) error {
	query := database.DB.Model(&models.BoardingSession{}).
		Preload("Pet.Client").
		Preload("Config").
		Where("boarding_sessions.status = ?", models.SessionStatusActive)

	if configID := c.Query("config_id"); configID != "" {
		query = query.Where("boarding_sessions.config_id = ?", configID)
	}
	if boardingType := c.Query("type"); boardingType != "" {
		query = query.
			Joins("JOIN boarding_configs ON boarding_configs.id = boarding_sessions.config_id").
			Where("boarding_configs.boarding_type = ?", boardingType)
	}

	var sessions []models.BoardingSession
	if err := query.Find(&sessions).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(services.BuildKanban(sessions, time.Now()))
}

func GetConfigOccupancy(c *fiber.Ctx) error {
	var cfg models.BoardingConfig
	if err := database.DB.First(&cfg, "id = ?", c.Params("configId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Boarding configuration not found"})
	}

	var occupied int64
	if err := database.DB.Model(&models.BoardingSession{}).
		Where("config_id = ? AND status = ?", cfg.ID, models.SessionStatusActive).
		Count(&occupied).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(services.ComputeOccupancy(cfg.TotalSlots, int(occupied)))
}

// GetOccupancySummary feeds the dashboard tiles: one row per
// (boarding type, species) pair, aggregated across configurations.
func GetOccupancySummary(c *fiber.Ctx) error {
	var configs []models.BoardingConfig
	if err := database.DB.Where("is_active = ?", true).Find(&configs).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	type occupiedRow struct {
		ConfigID uuid.UUID
		Count    int
	}
	var rows []occupiedRow
	if err := database.DB.Model(&models.BoardingSession{}).
		Select("config_id, count(*) as count").
		Where("status = ?", models.SessionStatusActive).
		Group("config_id").
		Scan(&rows).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	occupiedByConfig := make(map[uuid.UUID]int, len(rows))
	for _, row := range rows {
		occupiedByConfig[row.ConfigID] = row.Count
	}

	return c.JSON(services.SummarizeOccupancy(configs, occupiedByConfig))
}
