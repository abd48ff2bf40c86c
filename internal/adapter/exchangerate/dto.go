package exchangerate

// RatesResponse is the payload of the public exchange-rate endpoint: every
// rate is expressed as units of the keyed currency per 1 unit of Base.
type RatesResponse struct {
	Base  string             `json:"base"`
	Date  string             `json:"date"`
	Rates map[string]float64 `json:"rates"`
}
