package convert

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/amirasaad/fxconvert/pkg/exchange"
)

// ConvertRequest represents the request body for a conversion.
// From and To are validated for shape only; empty codes are left to the
// service so the error taxonomy stays in one place.
type ConvertRequest struct {
	Amount string `json:"amount" validate:"required,max=32"`
	From   string `json:"from" validate:"omitempty,max=10"`
	To     string `json:"to" validate:"omitempty,max=10"`
}

// ConvertResponse carries both full-precision values and display strings
// rounded to 6 decimal places with thousands grouping.
type ConvertResponse struct {
	Amount          float64 `json:"amount"`
	ConvertedAmount float64 `json:"converted_amount"`
	Rate            float64 `json:"rate"`
	From            string  `json:"from"`
	To              string  `json:"to"`
	AsOf            string  `json:"as_of"`
	Formatted       string  `json:"formatted"`
	Info            string  `json:"info"`
}

var printer = message.NewPrinter(language.English)

// ToResponse converts a conversion result to a response DTO.
func ToResponse(res *exchange.ConversionResult) *ConvertResponse {
	return &ConvertResponse{
		Amount:          res.Amount,
		ConvertedAmount: res.ConvertedAmount,
		Rate:            res.Rate,
		From:            res.From,
		To:              res.To,
		AsOf:            res.AsOf,
		Formatted:       printer.Sprintf("%.6f %s", res.ConvertedAmount, res.To),
		Info: printer.Sprintf("1 %s = %.6f %s (last update %s)",
			res.From, res.Rate, res.To, res.AsOf),
	}
}

// CodesResponse lists the selectable currency codes, popular codes first.
type CodesResponse struct {
	Codes []string `json:"codes"`
}
