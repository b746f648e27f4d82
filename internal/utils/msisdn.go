package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// CountryPrefix is the Kenyan international dialling prefix
const CountryPrefix = "254"

var msisdnPattern = regexp.MustCompile(`^254(7|1)\d{8}$`)

// NormalizeMSISDN converts a Kenyan phone number to international form.
// "0712345678", "+254712345678", "254712345678" and "712345678" all
// normalize to "254712345678". The function is idempotent: a normalized
// number passes through unchanged.
func NormalizeMSISDN(msisdn string) (string, error) {
	// Clean the input by removing separators and the plus sign
	stripped := strings.ReplaceAll(msisdn, "-", "")
	stripped = strings.ReplaceAll(stripped, " ", "")
	stripped = strings.ReplaceAll(stripped, "+", "")

	switch {
	case strings.HasPrefix(stripped, CountryPrefix):
		// already in international form
	case strings.HasPrefix(stripped, "0"):
		stripped = CountryPrefix + stripped[1:]
	default:
		// bare local number without leading zero
		stripped = CountryPrefix + stripped
	}

	if !msisdnPattern.MatchString(stripped) {
		return "", fmt.Errorf("invalid MSISDN format: %s", msisdn)
	}

	return stripped, nil
}
