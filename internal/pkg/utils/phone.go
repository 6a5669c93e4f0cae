package utils

import (
	"strings"
)

var phoneSeparators = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", ".", "")

// NormalizePhoneNumber trims the handle and drops the separators people type
// into WhatsApp numbers. A single leading '+' is preserved.
func NormalizePhoneNumber(input string) string {
	return phoneSeparators.Replace(strings.TrimSpace(input))
}

// WhatsAppDestination turns a contact handle into the digits-only form
// expected by the WhatsApp gateway.
func WhatsAppDestination(input string) string {
	return strings.TrimPrefix(NormalizePhoneNumber(input), "+")
}
