package handlers

import (
	"errors"
	"fmt"
	"time"

	"github.com/amrhendawy/vetdesk/database"
	"github.com/amrhendawy/vetdesk/models"
	"github.com/amrhendawy/vetdesk/services"
	"github.com/amrhendawy/vetdesk/utils"
	"github.com/amrhendawy/vetdesk/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CheckInRequest struct {
	ConfigID             string  `json:"config_id" validate:"required,uuid"`
	PetID                string  `json:"pet_id" validate:"required,uuid"`
	SlotNumber           *int    `json:"slot_number" validate:"omitempty,min=1"`
	CheckInDate          *string `json:"check_in_date" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	ExpectedCheckOutDate *string `json:"expected_check_out_date" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Notes                *string `json:"notes"`
	AssignedStaffID      *string `json:"assigned_staff_id" validate:"omitempty,uuid"`
}

func boardingErrorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrCapacityFull), errors.Is(err, services.ErrSlotConflict):
		return fiber.StatusConflict
	case errors.Is(err, services.ErrNotActive):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}

// CheckInSession opens a stay against a configuration. The capacity check,
// slot allocation, and insert run inside one transaction holding a FOR UPDATE
// lock on the configuration row, so two check-ins racing for the last slot
// serialize and the loser fails cleanly.
func CheckInSession(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	staffID, _ := uuid.Parse(claims["user_id"].(string))

	var req CheckInRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	configID, _ := uuid.Parse(req.ConfigID)
	petID, _ := uuid.Parse(req.PetID)

	checkInDate := time.Now()
	if req.CheckInDate != nil {
		checkInDate, _ = time.Parse(time.RFC3339, *req.CheckInDate)
	}
	var expectedCheckOut *time.Time
	if req.ExpectedCheckOutDate != nil {
		parsed, _ := time.Parse(time.RFC3339, *req.ExpectedCheckOutDate)
		if parsed.Before(checkInDate) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Expected checkout cannot precede check-in"})
		}
		expectedCheckOut = &parsed
	}
	var assignedStaffID *uuid.UUID
	if req.AssignedStaffID != nil {
		parsed, _ := uuid.Parse(*req.AssignedStaffID)
		assignedStaffID = &parsed
	}

	var session models.BoardingSession
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var cfg models.BoardingConfig
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&cfg, "id = ?", configID).Error; err != nil {
			return fmt.Errorf("%w: boarding configuration", services.ErrNotFound)
		}
		if !cfg.IsActive {
			return fmt.Errorf("%w: configuration is deactivated", services.ErrValidation)
		}

		var usedSlots []int
		if err := tx.Model(&models.BoardingSession{}).
			Where("config_id = ? AND status = ?", cfg.ID, models.SessionStatusActive).
			Pluck("slot_number", &usedSlots).Error; err != nil {
			return err
		}
		if len(usedSlots) >= cfg.TotalSlots {
			return services.ErrCapacityFull
		}

		var slotNumber int
		if req.SlotNumber != nil {
			slotNumber = *req.SlotNumber
			if slotNumber > cfg.TotalSlots {
				return fmt.Errorf("%w: slot number exceeds pool size", services.ErrValidation)
			}
			for _, n := range usedSlots {
				if n == slotNumber {
					return services.ErrSlotConflict
				}
			}
		} else {
			var err error
			slotNumber, err = services.NextFreeSlot(cfg.TotalSlots, usedSlots)
			if err != nil {
				return err
			}
		}

		session = models.BoardingSession{
			ConfigID:             cfg.ID,
			PetID:                petID,
			SlotNumber:           slotNumber,
			Status:               models.SessionStatusActive,
			CheckInDate:          checkInDate,
			ExpectedCheckOutDate: expectedCheckOut,
			DailyRate:            cfg.PricePerDay,
			Notes:                req.Notes,
			AssignedStaffID:      assignedStaffID,
			CreatedByID:          staffID,
		}
		return tx.Create(&session).Error
	})
	if err != nil {
		return c.Status(boardingErrorStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	database.DB.Preload("Pet.Client").Preload("Config").First(&session, "id = ?", session.ID)
	websocket.Broadcast <- websocket.BoardEvent{Type: websocket.EventCheckIn, Payload: session}

	return c.Status(fiber.StatusCreated).JSON(session)
}

type UpdateSessionRequest struct {
	ExpectedCheckOutDate *string `json:"expected_check_out_date" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Notes                *string `json:"notes"`
	AssignedStaffID      *string `json:"assigned_staff_id" validate:"omitempty,uuid"`
}

func UpdateSession(c *fiber.Ctx) error {
	var req UpdateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var session models.BoardingSession
	if err := database.DB.First(&session, "id = ?", c.Params("sessionId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Session not found"})
	}
	if session.Status != models.SessionStatusActive {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "Only active sessions can be updated"})
	}

	if req.ExpectedCheckOutDate != nil {
		parsed, _ := time.Parse(time.RFC3339, *req.ExpectedCheckOutDate)
		if parsed.Before(session.CheckInDate) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Expected checkout cannot precede check-in"})
		}
		session.ExpectedCheckOutDate = &parsed
	}
	if req.Notes != nil {
		session.Notes = req.Notes
	}
	if req.AssignedStaffID != nil {
		parsed, _ := uuid.Parse(*req.AssignedStaffID)
		session.AssignedStaffID = &parsed
	}

	if err := database.DB.Save(&session).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update session"})
	}

	return c.JSON(session)
}

type CheckOutRequest struct {
	CheckOutNotes *string `json:"check_out_notes"`
}

// CheckOutSession settles and completes an active stay. The stay duration and
// amount are written exactly once; calling checkout again fails instead of
// recomputing. An invoice row is synthesized when the settlement carries an
// amount, and the receipt PDF is rendered in the background.
func CheckOutSession(c *fiber.Ctx) error {
	var req CheckOutRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
		}
	}

	var session models.BoardingSession
	var invoice *models.Invoice
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&session, "id = ?", c.Params("sessionId")).Error; err != nil {
			return fmt.Errorf("%w: session", services.ErrNotFound)
		}
		if session.Status != models.SessionStatusActive {
			return services.ErrNotActive
		}

		now := time.Now()
		settlement := services.SettleSession(session, now)

		session.Status = models.SessionStatusCompleted
		session.CheckOutDate = &now
		session.StayDays = &settlement.StayDays
		session.TotalAmount = settlement.TotalAmount
		if req.CheckOutNotes != nil {
			session.CheckOutNotes = req.CheckOutNotes
		}
		if err := tx.Save(&session).Error; err != nil {
			return err
		}

		if settlement.TotalAmount == nil {
			return nil
		}

		var pet models.Pet
		if err := tx.First(&pet, "id = ?", session.PetID).Error; err != nil {
			return err
		}
		number, err := utils.GenerateInvoiceNumber(tx)
		if err != nil {
			return err
		}
		invoice = &models.Invoice{
			InvoiceNumber: number,
			ClientID:      pet.ClientID,
			SessionID:     &session.ID,
			Description:   fmt.Sprintf("Boarding stay, %d day(s)", settlement.StayDays),
			Amount:        *settlement.TotalAmount,
		}
		return tx.Create(invoice).Error
	})
	if err != nil {
		return c.Status(boardingErrorStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	if invoice != nil {
		go services.GenerateBoardingReceipt(invoice.ID)
	}

	database.DB.Preload("Pet.Client").Preload("Config").First(&session, "id = ?", session.ID)
	websocket.Broadcast <- websocket.BoardEvent{Type: websocket.EventCheckOut, Payload: session}

	return c.JSON(fiber.Map{
		"session": session,
		"invoice": invoice,
	})
}

func CancelSession(c *fiber.Ctx) error {
	var session models.BoardingSession
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&session, "id = ?", c.Params("sessionId")).Error; err != nil {
			return fmt.Errorf("%w: session", services.ErrNotFound)
		}
		if session.Status != models.SessionStatusActive {
			return services.ErrNotActive
		}

		now := time.Now()
		session.Status = models.SessionStatusCancelled
		session.CheckOutDate = &now
		return tx.Save(&session).Error
	})
	if err != nil {
		return c.Status(boardingErrorStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	websocket.Broadcast <- websocket.BoardEvent{Type: websocket.EventCheckOut, Payload: session}

	return c.JSON(fiber.Map{"message": "Session cancelled", "session": session})
}

func ListSessions(c *fiber.Ctx) error {
	query := database.DB.Model(&models.BoardingSession{}).
		Preload("Pet.Client").
		Preload("Config").
		Preload("AssignedStaff")

	if status := c.Query("status"); status != "" {
		query = query.Where("boarding_sessions.status = ?", status)
	}
	if configID := c.Query("config_id"); configID != "" {
		query = query.Where("boarding_sessions.config_id = ?", configID)
	}
	if boardingType := c.Query("type"); boardingType != "" {
		query = query.
			Joins("JOIN boarding_configs ON boarding_configs.id = boarding_sessions.config_id").
			Where("boarding_configs.boarding_type = ?", boardingType)
	}

	var sessions []models.BoardingSession
	if err := query.Order("boarding_sessions.check_in_date desc").Find(&sessions).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(sessions)
}
