// Package privacy masks sensitive window titles before they are persisted.
// Masking runs server-side at ingestion so a misconfigured agent cannot leak
// a title it should have hidden.
package privacy

import "strings"

// MaskedTitle replaces any title that trips a keyword.
const MaskedTitle = "Private Activity"

var keywords = []string{"bank", "whatsapp", "login", "password", "pay", "email"}

// Mask returns the title to store and whether it was masked. The scan is
// case-insensitive substring matching, same as the agent's local filter.
func Mask(title string) (string, bool) {
	lower := strings.ToLower(title)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return MaskedTitle, true
		}
	}
	return title, false
}
