package logger

import "strings"

// MaskPhone keeps the first two and last two digits.
// Example: 9990001111 -> 99******11
func MaskPhone(phone string) string {
	if phone == "" {
		return ""
	}
	if len(phone) <= 4 {
		return strings.Repeat("*", len(phone))
	}

	return phone[:2] + strings.Repeat("*", len(phone)-4) + phone[len(phone)-2:]
}
