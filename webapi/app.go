package webapi

import (
	_ "embed"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/amirasaad/fxconvert/pkg/config"
	convertsvc "github.com/amirasaad/fxconvert/pkg/service/convert"
	"github.com/amirasaad/fxconvert/webapi/common"
	"github.com/amirasaad/fxconvert/webapi/convert"
)

//go:embed static/index.html
var indexHTML []byte

// SetupApp builds the Fiber app with middleware, the converter form, and
// the JSON API routes.
func SetupApp(svc *convertsvc.Service, cfg *config.App) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "fxconvert",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
			return common.ErrorResponseJSON(c, status, "Internal Server Error", err.Error())
		},
	})

	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimit.MaxRequests,
		Expiration: cfg.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ErrorResponseJSON(
				c, fiber.StatusTooManyRequests, "Too Many Requests", "Rate limit exceeded")
		},
	}))
	app.Use(recover.New())

	app.Get("/", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.Send(indexHTML)
	})

	convert.Routes(app, svc)

	return app
}
