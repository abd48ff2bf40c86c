package entity

// Rates maps an ISO 4217 currency code to its USD-relative multiplier,
// i.e. units of that currency per 1 USD. A non-empty table always carries
// Rates["USD"] == 1.
type Rates map[string]float64

// Clone returns an independent copy of the table.
func (r Rates) Clone() Rates {
	out := make(Rates, len(r))
	for code, v := range r {
		out[code] = v
	}
	return out
}

// FallbackRates is the hardcoded snapshot installed when no table has ever
// been fetched successfully. It covers exactly the built-in currencies.
func FallbackRates() Rates {
	return Rates{
		"USD": 1,
		"INR": 83,
		"GBP": 0.79,
		"EUR": 0.92,
		"JPY": 149,
		"AUD": 1.52,
		"CAD": 1.36,
		"CNY": 7.24,
		"AED": 3.67,
		"SGD": 1.34,
	}
}
