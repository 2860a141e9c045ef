package handlers

import (
	"time"

	"github.com/amrhendawy/vetdesk/database"
	"github.com/amrhendawy/vetdesk/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CreatePetRequest struct {
	ClientID  string   `json:"client_id" validate:"required,uuid"`
	Name      string   `json:"name" validate:"required"`
	Species   string   `json:"species" validate:"required"`
	Breed     *string  `json:"breed"`
	Gender    *string  `json:"gender" validate:"omitempty,oneof=male female"`
	BirthDate *string  `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	WeightKg  *float64 `json:"weight_kg" validate:"omitempty,gt=0"`
	Notes     *string  `json:"notes"`
}

func CreatePet(c *fiber.Ctx) error {
	var req CreatePetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	clientID, _ := uuid.Parse(req.ClientID)
	var client models.Client
	if err := database.DB.First(&client, "id = ?", clientID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Client not found"})
	}

	var birthDate *time.Time
	if req.BirthDate != nil {
		parsed, _ := time.Parse("2006-01-02", *req.BirthDate)
		birthDate = &parsed
	}

	pet := models.Pet{
		ClientID:  clientID,
		Name:      req.Name,
		Species:   req.Species,
		Breed:     req.Breed,
		Gender:    req.Gender,
		BirthDate: birthDate,
		WeightKg:  req.WeightKg,
		Notes:     req.Notes,
	}
	if err := database.DB.Create(&pet).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create pet"})
	}

	return c.Status(fiber.StatusCreated).JSON(pet)
}

type UpdatePetRequest struct {
	Name     *string  `json:"name" validate:"omitempty,min=1"`
	Breed    *string  `json:"breed"`
	WeightKg *float64 `json:"weight_kg" validate:"omitempty,gt=0"`
	PhotoURL *string  `json:"photo_url" validate:"omitempty,url"`
	Notes    *string  `json:"notes"`
}

func UpdatePet(c *fiber.Ctx) error {
	var req UpdatePetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var pet models.Pet
	if err := database.DB.First(&pet, "id = ?", c.Params("petId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Pet not found"})
	}

	if req.Name != nil {
		pet.Name = *req.Name
	}
	if req.Breed != nil {
		pet.Breed = req.Breed
	}
	if req.WeightKg != nil {
		pet.WeightKg = req.WeightKg
	}
	if req.PhotoURL != nil {
		pet.PhotoURL = req.PhotoURL
	}
	if req.Notes != nil {
		pet.Notes = req.Notes
	}

	if err := database.DB.Save(&pet).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update pet"})
	}

	return c.JSON(pet)
}

func GetPet(c *fiber.Ctx) error {
	var pet models.Pet
	if err := database.DB.Preload("Client").First(&pet, "id = ?", c.Params("petId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Pet not found"})
	}

	return c.JSON(pet)
}

func ListPets(c *fiber.Ctx) error {
	query := database.DB.Model(&models.Pet{}).Preload("Client")

	if clientID := c.Query("client_id"); clientID != "" {
		query = query.Where("client_id = ?", clientID)
	}
	if species := c.Query("species"); species != "" {
		query = query.Where("species = ?", species)
	}

	var pets []models.Pet
	if err := query.Order("name asc").Find(&pets).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(pets)
}
