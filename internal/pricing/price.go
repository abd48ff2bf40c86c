// Package pricing decomposes human-authored price strings such as
// "From $156/night" into their numeric amount and surrounding text.
package pricing

import (
	"regexp"
	"strconv"
	"strings"
)

// ParsedPrice is the three-part decomposition of a display price string.
// It is derived on demand and never stored.
type ParsedPrice struct {
	Prefix string  `json:"prefix"`
	Amount float64 `json:"amount"`
	Suffix string  `json:"suffix"`
}

// amountRe matches the first digit-led run with optional thousands
// separators and an optional decimal part, e.g. "1,234.50".
var amountRe = regexp.MustCompile(`\d[\d,]*(?:\.\d+)?`)

// currencyGlyphs are the symbols that terminate a prefix alongside digits.
const currencyGlyphs = "$£€¥₹"

// ExtractAmount parses the numeric amount out of a price string. Malformed
// or digit-free input yields 0, never an error.
func ExtractAmount(text string) float64 {
	match := amountRe.FindString(text)
	if match == "" {
		return 0
	}

	value, err := strconv.ParseFloat(strings.ReplaceAll(match, ",", ""), 64)
	if err != nil {
		return 0
	}
	return value
}

// ParseDisplayPrice splits a display price into prefix, amount and suffix.
// Prefix is everything before the first digit or currency glyph, suffix is
// everything after the numeric run, both trimmed. A string with no numeric
// content yields amount 0, the whole trimmed input as prefix and an empty
// suffix.
func ParseDisplayPrice(text string) ParsedPrice {
	loc := amountRe.FindStringIndex(text)
	if loc == nil {
		return ParsedPrice{Prefix: strings.TrimSpace(text)}
	}

	prefixEnd := loc[0]
	for i, r := range text {
		if i >= loc[0] {
			break
		}
		if strings.ContainsRune(currencyGlyphs, r) {
			prefixEnd = i
			break
		}
	}

	return ParsedPrice{
		Prefix: strings.TrimSpace(text[:prefixEnd]),
		Amount: ExtractAmount(text),
		Suffix: strings.TrimSpace(text[loc[1]:]),
	}
}
