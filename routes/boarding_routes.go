package routes

import (
	"github.com/amrhendawy/vetdesk/handlers"
	"github.com/amrhendawy/vetdesk/middleware"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

func BoardingRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	configs := api.Group("/boarding/configs", middleware.Protected())
	configs.Get("", handlers.ListBoardingConfigs)
	configs.Post("", middleware.AdminRequired(), handlers.CreateBoardingConfig)
	configs.Put("/:configId", middleware.AdminRequired(), handlers.UpdateBoardingConfig)
	configs.Post("/:configId/deactivate", middleware.AdminRequired(), handlers.DeactivateBoardingConfig)
	configs.Get("/:configId/occupancy", handlers.GetConfigOccupancy)

	sessions := api.Group("/boarding/sessions", middleware.Protected())
	sessions.Get("", handlers.ListSessions)
	sessions.Post("", handlers.CheckInSession)
	sessions.Put("/:sessionId", handlers.UpdateSession)
	sessions.Post("/:sessionId/checkout", handlers.CheckOutSession)
	sessions.Post("/:sessionId/cancel", handlers.CancelSession)

	board := api.Group("/boarding/board", middleware.Protected())
	board.Get("", handlers.GetBoardingKanban)
	board.Get("/summary", handlers.GetOccupancySummary)

	api.Use("/ws", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	})
	api.Get("/ws", websocket.New(handlers.ServeBoardWs))
}
