package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/jhoicas/omie-pedidos-ia/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Orders    OrderSearcher
	Assistant QuestionAnswerer
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	ordersHandler := NewOrdersHandler(deps.Orders)
	api.Post("/orders/search", ordersHandler.Search)

	assistantHandler := NewAssistantHandler(deps.Assistant)
	api.Post("/assistant/ask", assistantHandler.Ask)
}

// NewApp crea la aplicación Fiber con middlewares, /health y las rutas de la API.
// El timeout de escritura debe cubrir las idas y vueltas a Omie y al modelo.
func NewApp(name string, log *logger.Logger, deps RouterDeps) *fiber.App {
	if log == nil {
		log = logger.Nop()
	}
	app := fiber.New(fiber.Config{
		AppName:      name,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 3 * time.Minute,
		IdleTimeout:  60 * time.Second,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(RequestLogger(log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": name})
	})

	Router(app, deps)
	return app
}
