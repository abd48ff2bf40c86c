package entity

// Country pairs a displayable country with its ISO 4217 currency and symbol.
type Country struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Flag     string `json:"flag"`
	Currency string `json:"currency"`
	Symbol   string `json:"symbol"`
}

// Countries is the built-in set of supported country/currency pairs.
// Code and Currency are each unique across the set; the first entry is the
// default selection.
var Countries = []Country{
	{Code: "US", Name: "United States", Flag: "🇺🇸", Currency: "USD", Symbol: "$"},
	{Code: "IN", Name: "India", Flag: "🇮🇳", Currency: "INR", Symbol: "₹"},
	{Code: "GB", Name: "United Kingdom", Flag: "🇬🇧", Currency: "GBP", Symbol: "£"},
	{Code: "EU", Name: "European Union", Flag: "🇪🇺", Currency: "EUR", Symbol: "€"},
	{Code: "JP", Name: "Japan", Flag: "🇯🇵", Currency: "JPY", Symbol: "¥"},
	{Code: "AU", Name: "Australia", Flag: "🇦🇺", Currency: "AUD", Symbol: "A$"},
	{Code: "CA", Name: "Canada", Flag: "🇨🇦", Currency: "CAD", Symbol: "C$"},
	{Code: "CN", Name: "China", Flag: "🇨🇳", Currency: "CNY", Symbol: "¥"},
	{Code: "AE", Name: "UAE", Flag: "🇦🇪", Currency: "AED", Symbol: "د.إ"},
	{Code: "SG", Name: "Singapore", Flag: "🇸🇬", Currency: "SGD", Symbol: "S$"},
}

// DefaultCountry returns the fallback selection.
func DefaultCountry() Country {
	return Countries[0]
}

// CountryByCode returns the built-in entry for an ISO country code.
func CountryByCode(code string) (Country, bool) {
	for _, c := range Countries {
		if c.Code == code {
			return c, true
		}
	}
	return Country{}, false
}

// CountryByCurrency returns the built-in entry for an ISO 4217 currency code.
func CountryByCurrency(currency string) (Country, bool) {
	for _, c := range Countries {
		if c.Currency == currency {
			return c, true
		}
	}
	return Country{}, false
}
