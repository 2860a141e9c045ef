package handlers

import (
	"time"

	"github.com/amrhendawy/vetdesk/database"
	"github.com/amrhendawy/vetdesk/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

type CreateMedicalRecordRequest struct {
	PetID        string  `json:"pet_id" validate:"required,uuid"`
	VisitDate    *string `json:"visit_date" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Diagnosis    string  `json:"diagnosis" validate:"required"`
	Treatment    *string `json:"treatment"`
	Prescription *string `json:"prescription"`
	Notes        *string `json:"notes"`
}

func CreateMedicalRecord(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	vetID, _ := uuid.Parse(claims["user_id"].(string))

	var req CreateMedicalRecordRequest
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

	visitDate := time.Now()
	if req.VisitDate != nil {
		visitDate, _ = time.Parse(time.RFC3339, *req.VisitDate)
	}

	record := models.MedicalRecord{
		PetID:        petID,
		VetID:        vetID,
		VisitDate:    visitDate,
		Diagnosis:    req.Diagnosis,
		Treatment:    req.Treatment,
		Prescription: req.Prescription,
		Notes:        req.Notes,
	}
	if err := database.DB.Create(&record).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create medical record"})
	}

	return c.Status(fiber.StatusCreated).JSON(record)
}

func ListPetMedicalRecords(c *fiber.Ctx) error {
	var pet models.Pet
	if err := database.DB.First(&pet, "id = ?", c.Params("petId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Pet not found"})
	}

	var records []models.MedicalRecord
	if err := database.DB.
		Preload("Vet").
		Where("pet_id = ?", pet.ID).
		Order("visit_date desc").
		Find(&records).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(records)
}
