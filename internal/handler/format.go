package handler

import (
	"strings"

	"github.com/shopspring/decimal"

	tele "gopkg.in/telebot.v3"
)

// FormatXu renders a currency amount with two decimal places and
// thousands separators, e.g. 1234567.5 -> "1,234,567.50".
func FormatXu(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
		if len(intPart) > lead {
			b.WriteByte(',')
		}
	}
	for i := lead; i < len(intPart); i += 3 {
		b.WriteString(intPart[i : i+3])
		if i+3 < len(intPart) {
			b.WriteByte(',')
		}
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}

// displayName returns a human-readable name for a Telegram user.
func displayName(u *tele.User) string {
	if u == nil {
		return "?"
	}
	if u.Username != "" {
		return u.Username
	}
	return u.FirstName
}
