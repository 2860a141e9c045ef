package routes

import (
	"github.com/amrhendawy/vetdesk/handlers"
	"github.com/amrhendawy/vetdesk/middleware"
	"github.com/gofiber/fiber/v2"
)

func AuthRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Post("/login", handlers.Login)
	auth.Get("/me", middleware.Protected(), handlers.GetMe)
	auth.Post("/staff", middleware.Protected(), middleware.AdminRequired(), handlers.RegisterStaff)
}
