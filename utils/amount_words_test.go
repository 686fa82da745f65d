package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmountInWords(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "Zero Rupees Only"},
		{1, "One Rupees Only"},
		{19, "Nineteen Rupees Only"},
		{45, "Forty Five Rupees Only"},
		{100, "One Hundred Rupees Only"},
		{112, "One Hundred Twelve Rupees Only"},
		{4700, "Four Thousand Seven Hundred Rupees Only"},
		{100000, "One Lakh Rupees Only"},
		{2550000, "Twenty Five Lakh Fifty Thousand Rupees Only"},
		{10000000, "One Crore Rupees Only"},
		{1500.50, "One Thousand Five Hundred Rupees and Fifty Paise Only"},
		{0.75, "Seventy Five Paise Only"},
		{-7200, "Minus Seven Thousand Two Hundred Rupees Only"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, AmountInWords(tt.amount), "amount %v", tt.amount)
	}
}
