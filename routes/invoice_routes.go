package routes

import (
	"github.com/amrhendawy/vetdesk/handlers"
	"github.com/amrhendawy/vetdesk/middleware"
	"github.com/gofiber/fiber/v2"
)

func InvoiceRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	invoices := api.Group("/invoices", middleware.Protected())
	invoices.Get("", handlers.ListInvoices)
	invoices.Post("", handlers.CreateInvoice)
	invoices.Get("/:invoiceId", handlers.GetInvoice)
	invoices.Post("/:invoiceId/pay", handlers.MarkInvoicePaid)
}
