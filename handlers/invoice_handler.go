package handlers

import (
	"time"

	"github.com/amrhendawy/vetdesk/database"
	"github.com/amrhendawy/vetdesk/models"
	"github.com/amrhendawy/vetdesk/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateInvoiceRequest struct {
	ClientID    string  `json:"client_id" validate:"required,uuid"`
	Description string  `json:"description" validate:"required"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
}

// CreateInvoice records a manual invoice, e.g. for a rateless boarding stay
// or a consultation billed outside the boarding engine.
func CreateInvoice(c *fiber.Ctx) error {
	var req CreateInvoiceRequest
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

	var invoice models.Invoice
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		number, err := utils.GenerateInvoiceNumber(tx)
		if err != nil {
			return err
		}
		invoice = models.Invoice{
			InvoiceNumber: number,
			ClientID:      clientID,
			Description:   req.Description,
			Amount:        req.Amount,
		}
		return tx.Create(&invoice).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create invoice"})
	}

	return c.Status(fiber.StatusCreated).JSON(invoice)
}

func MarkInvoicePaid(c *fiber.Ctx) error {
	var invoice models.Invoice
	if err := database.DB.First(&invoice, "id = ?", c.Params("invoiceId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Invoice not found"})
	}

	if invoice.Status == "paid" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "Invoice is already paid"})
	}

	now := time.Now()
	invoice.Status = "paid"
	invoice.PaidAt = &now
	if err := database.DB.Save(&invoice).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update invoice"})
	}

	return c.JSON(invoice)
}

func GetInvoice(c *fiber.Ctx) error {
	var invoice models.Invoice
	if err := database.DB.
		Preload("Client").
		Preload("Session.Pet").
		First(&invoice, "id = ?", c.Params("invoiceId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Invoice not found"})
	}

	return c.JSON(invoice)
}

func ListInvoices(c *fiber.Ctx) error {
	query := database.DB.Model(&models.Invoice{}).Preload("Client")

	if clientID := c.Query("client_id"); clientID != "" {
		query = query.Where("client_id = ?", clientID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var invoices []models.Invoice
	if err := query.Order("created_at desc").Find(&invoices).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(invoices)
}
