package convert

import (
	"github.com/gofiber/fiber/v2"

	"github.com/amirasaad/fxconvert/pkg/exchange"
	convertsvc "github.com/amirasaad/fxconvert/pkg/service/convert"
	"github.com/amirasaad/fxconvert/webapi/common"
)

// Routes registers HTTP routes for conversion operations.
func Routes(app *fiber.App, svc *convertsvc.Service) {
	api := app.Group("/api")

	api.Post("/convert", Convert(svc))
	api.Get("/currencies", ListCodes(svc))
	api.Post("/refresh", Refresh(svc))
}

// Convert returns a Fiber handler that converts an amount between two codes.
// @Summary Convert an amount between two currencies
// @Description Converts using the cached USD-based table, falling back to a direct fetch for uncached codes
// @Tags convert
// @Accept json
// @Produce json
// @Param request body ConvertRequest true "Conversion request"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 422 {object} common.ProblemDetails
// @Failure 503 {object} common.ProblemDetails
// @Router /api/convert [post]
func Convert(svc *convertsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[ConvertRequest](c)
		if err != nil {
			return nil
		}

		result, err := svc.Convert(c.Context(), exchange.ConversionRequest{
			Amount: input.Amount,
			From:   input.From,
			To:     input.To,
		})
		if err != nil {
			return common.ErrorResponseJSON(
				c, common.ErrorToStatusCode(err), "Conversion failed", err.Error())
		}

		return common.SuccessResponseJSON(
			c, fiber.StatusOK, "Converted successfully", ToResponse(result))
	}
}

// ListCodes returns a Fiber handler listing selectable currency codes.
// The list is rebuilt from a forced refresh; a source failure surfaces as 503.
// @Summary List selectable currency codes
// @Tags convert
// @Produce json
// @Success 200 {object} common.Response
// @Failure 503 {object} common.ProblemDetails
// @Router /api/currencies [get]
func ListCodes(svc *convertsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		codes, err := svc.AvailableCodes(c.Context())
		if err != nil {
			return common.ErrorResponseJSON(
				c, common.ErrorToStatusCode(err), "Failed to list currencies", err.Error())
		}
		return common.SuccessResponseJSON(
			c, fiber.StatusOK, "Currencies fetched successfully", CodesResponse{Codes: codes})
	}
}

// Refresh returns a Fiber handler that forces a rate refresh and returns the
// repopulated code list.
// @Summary Refresh cached rates
// @Tags convert
// @Produce json
// @Success 200 {object} common.Response
// @Failure 503 {object} common.ProblemDetails
// @Router /api/refresh [post]
func Refresh(svc *convertsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		codes, err := svc.AvailableCodes(c.Context())
		if err != nil {
			return common.ErrorResponseJSON(
				c, common.ErrorToStatusCode(err), "Failed to refresh rates", err.Error())
		}
		return common.SuccessResponseJSON(
			c, fiber.StatusOK, "Rates refreshed (fetched latest)", CodesResponse{Codes: codes})
	}
}
