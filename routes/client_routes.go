package routes

import (
	"github.com/amrhendawy/vetdesk/handlers"
	"github.com/amrhendawy/vetdesk/middleware"
	"github.com/gofiber/fiber/v2"
)

func ClientRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	clients := api.Group("/clients", middleware.Protected())
	clients.Get("", handlers.ListClients)
	clients.Post("", handlers.CreateClient)
	clients.Get("/:clientId", handlers.GetClient)
	clients.Put("/:clientId", handlers.UpdateClient)

	pets := api.Group("/pets", middleware.Protected())
	pets.Get("", handlers.ListPets)
	pets.Post("", handlers.CreatePet)
	pets.Get("/:petId", handlers.GetPet)
	pets.Put("/:petId", handlers.UpdatePet)
	pets.Get("/:petId/medical-records", handlers.ListPetMedicalRecords)
}
