package handlers

import (
	"github.com/amrhendawy/vetdesk/database"
	"github.com/amrhendawy/vetdesk/models"
	"github.com/gofiber/fiber/v2"
)

type CreateClientRequest struct {
	FullName string  `json:"full_name" validate:"required,min=3"`
	Phone    string  `json:"phone" validate:"required,min=7"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Address  *string `json:"address"`
	Notes    *string `json:"notes"`
}

func CreateClient(c *fiber.Ctx) error {
	var req CreateClientRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	client := models.Client{
		FullName: req.FullName,
		Phone:    req.Phone,
		Email:    req.Email,
		Address:  req.Address,
		Notes:    req.Notes,
	}
	if err := database.DB.Create(&client).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create client"})
	}

	return c.Status(fiber.StatusCreated).JSON(client)
}

type UpdateClientRequest struct {
	FullName *string `json:"full_name" validate:"omitempty,min=3"`
	Phone    *string `json:"phone" validate:"omitempty,min=7"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Address  *string `json:"address"`
	Notes    *string `json:"notes"`
}

func UpdateClient(c *fiber.Ctx) error {
	var req UpdateClientRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var client models.Client
	if err := database.DB.First(&client, "id = ?", c.Params("clientId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Client not found"})
	}

	if req.FullName != nil {
		client.FullName = *req.FullName
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.Email != nil {
		client.Email = req.Email
	}
	if req.Address != nil {
		client.Address = req.Address
	}
	if req.Notes != nil {
		client.Notes = req.Notes
	}

	if err := database.DB.Save(&client).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update client"})
	}

	return c.JSON(client)
}

func GetClient(c *fiber.Ctx) error {
	var client models.Client
	if err := database.DB.Preload("Pets").First(&client, "id = ?", c.Params("clientId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Client not found"})
	}

	return c.JSON(client)
}

func ListClients(c *fiber.Ctx) error {
	query := database.DB.Model(&models.Client{})

	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("full_name ILIKE ? OR phone LIKE ?", like, like)
	}

	var clients []models.Client
	if err := query.Order("full_name asc").Find(&clients).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(clients)
}
