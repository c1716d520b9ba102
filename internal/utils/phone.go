package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// mobilePattern matches a 10-digit Indian mobile number
var mobilePattern = regexp.MustCompile(`^[6-9]\d{9}$`)

// NormalizePhone validates a phone number and returns its canonical
// 10-digit form. Accepts numbers with separators, a leading zero, or the
// country code (91 / +91).
func NormalizePhone(phone string) (string, error) {
	stripped := strings.ReplaceAll(phone, "-", "")
	stripped = strings.ReplaceAll(stripped, " ", "")
	stripped = strings.TrimPrefix(stripped, "+")

	if strings.HasPrefix(stripped, "91") && len(stripped) == 12 {
		stripped = stripped[2:]
	} else if strings.HasPrefix(stripped, "0") && len(stripped) == 11 {
		stripped = stripped[1:]
	}

	if !mobilePattern.MatchString(stripped) {
		return "", fmt.Errorf("invalid phone number format")
	}

	return stripped, nil
}
