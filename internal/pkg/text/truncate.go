// Package text has small string helpers shared across packages.
package text

// Truncate caps s at max bytes, marking the cut with an ellipsis. A
// non-positive max returns s unchanged.
func Truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
