package routes

import (
	"github.com/amrhendawy/vetdesk/handlers"
	"github.com/amrhendawy/vetdesk/middleware"
	"github.com/gofiber/fiber/v2"
)

func AppointmentRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	appointments := api.Group("/appointments", middleware.Protected())
	appointments.Get("", handlers.ListAppointments)
	appointments.Post("", handlers.CreateAppointment)
	appointments.Put("/:appointmentId/status", handlers.UpdateAppointmentStatus)

	records := api.Group("/medical-records", middleware.Protected(), middleware.VetRequired())
	records.Post("", handlers.CreateMedicalRecord)
}
