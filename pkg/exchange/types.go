package exchange

// RateTable is one fetched snapshot of exchange rates, all expressed
// relative to a single base currency. Immutable once constructed.
type RateTable struct {
	// AsOf is the publication date of the table as reported by the
	// source, formatted YYYY-MM-DD.
	AsOf string `json:"as_of"`
	// Base is the lower-cased currency code the rates are relative to.
	Base string `json:"base"`
	// Rates maps lower-cased currency codes to positive rates.
	Rates map[string]float64 `json:"rates"`
}

// Lookup returns the rate for a lower-cased currency code.
func (t *RateTable) Lookup(code string) (float64, bool) {
	r, ok := t.Rates[code]
	return r, ok
}

// ConversionRequest asks for an amount to be converted between two
// currency codes. Amount is kept raw so that parse failures surface as
// ErrInvalidAmount instead of a transport-level error.
type ConversionRequest struct {
	Amount string `json:"amount"`
	From   string `json:"from"`
	To     string `json:"to"`
}

// ConversionResult is a successful conversion. Rate and ConvertedAmount
// carry full float precision; rounding is left to the presentation layer.
type ConversionResult struct {
	Amount          float64 `json:"amount"`
	ConvertedAmount float64 `json:"converted_amount"`
	Rate            float64 `json:"rate"`
	From            string  `json:"from"`
	To              string  `json:"to"`
	// AsOf is the date of the rate table the conversion was computed from.
	AsOf string `json:"as_of"`
}
