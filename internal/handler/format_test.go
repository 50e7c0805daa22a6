package handler

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	tele "gopkg.in/telebot.v3"
)

// TestFormatXu tests currency rendering with separators and two
// decimal places.
func TestFormatXu(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"zero", "0", "0.00"},
		{"small", "5", "5.00"},
		{"three digits", "999", "999.00"},
		{"four digits", "1000", "1,000.00"},
		{"fraction", "1234567.5", "1,234,567.50"},
		{"negative", "-1234.5", "-1,234.50"},
		{"rounds to cents", "0.005", "0.01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatXu(decimal.RequireFromString(tt.input)))
		})
	}
}

// TestDisplayName tests the username-then-first-name fallback.
func TestDisplayName(t *testing.T) {
	assert.Equal(t, "an", displayName(&tele.User{Username: "an", FirstName: "An Ninh"}))
	assert.Equal(t, "An Ninh", displayName(&tele.User{FirstName: "An Ninh"}))
	assert.Equal(t, "?", displayName(nil))
}
