package handlers

import (
	"time"

	"github.com/amrhendawy/vetdesk/database"
	"github.com/amrhendawy/vetdesk/models"
	"github.com/amrhendawy/vetdesk/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CreateAppointmentRequest struct {
	PetID       string  `json:"pet_id" validate:"required,uuid"`
	VetID       *string `json:"vet_id" validate:"omitempty,uuid"`
	ScheduledAt string  `json:"scheduled_at" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Reason      *string `json:"reason"`
	Room        *string `json:"room"`
}

func CreateAppointment(c *fiber.Ctx) error {
	var req CreateAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	petID, _ := uuid.Parse(req.PetID)
	var pet models.Pet
	if err := database.DB.First(&pet, "id = ?", petID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Pet not found"})
	}

	scheduledAt, _ := time.Parse(time.RFC3339, req.ScheduledAt)
	var vetID *uuid.UUID
	if req.VetID != nil {
		parsed, _ := uuid.Parse(*req.VetID)
		vetID = &parsed
	}

	appointment := models.Appointment{
		PetID:       petID,
		ClientID:    pet.ClientID,
		VetID:       vetID,
		ScheduledAt: scheduledAt,
		Reason:      req.Reason,
		Room:        req.Room,
		Status:      "waiting",
	}
	if err := database.DB.Create(&appointment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create appointment"})
	}

	database.DB.Preload("Pet").Preload("Client").Preload("Vet").First(&appointment, "id = ?", appointment.ID)
	websocket.Broadcast <- websocket.BoardEvent{Type: websocket.EventAppointmentUpdate, Payload: appointment}

	return c.Status(fiber.StatusCreated).JSON(appointment)
}

type AppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=waiting in_room with_doctor checkout done cancelled"`
}

// UpdateAppointmentStatus moves an appointment across the flow board.
// Terminal columns (done, cancelled) accept no further moves.
func UpdateAppointmentStatus(c *fiber.Ctx) error {
	var req AppointmentStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var appointment models.Appointment
	if err := database.DB.First(&appointment, "id = ?", c.Params("appointmentId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Appointment not found"})
	}

	if appointment.Status == "done" || appointment.Status == "cancelled" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "Appointment is already closed"})
	}

	appointment.Status = req.Status
	if err := database.DB.Save(&appointment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update appointment"})
	}

	database.DB.Preload("Pet").Preload("Client").Preload("Vet").First(&appointment, "id = ?", appointment.ID)
	websocket.Broadcast <- websocket.BoardEvent{Type: websocket.EventAppointmentUpdate, Payload: appointment}

	return c.JSON(appointment)
}

// ListAppointments returns the day's flow board by default; pass from/to for
// other ranges.
func ListAppointments(c *fiber.Ctx) error {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	to := from.Add(24 * time.Hour)

	if raw := c.Query("from"); raw != "" {
		if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
			from = parsed
		}
	}
	if raw := c.Query("to"); raw != "" {
		if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
			to = parsed
		}
	}

	query := database.DB.Model(&models.Appointment{}).
		Preload("Pet").
		Preload("Client").
		Preload("Vet").
		Where("scheduled_at >= ? AND scheduled_at < ?", from, to)

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if vetID := c.Query("vet_id"); vetID != "" {
		query = query.Where("vet_id = ?", vetID)
	}

	var appointments []models.Appointment
	if err := query.Order("scheduled_at asc").Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(appointments)
}
