package pdf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gstgenius/internal/pdf"
)

func TestNumberToWords(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "Zero Rupees Only"},
		{1, "One Rupees Only"},
		{19, "Nineteen Rupees Only"},
		{42, "Forty Two Rupees Only"},
		{100, "One Hundred Rupees Only"},
		{999, "Nine Hundred Ninety Nine Rupees Only"},
		{1000, "One Thousand Rupees Only"},
		{1180, "One Thousand One Hundred Eighty Rupees Only"},
		{100000, "One Lakh Rupees Only"},
		{123456, "One Lakh Twenty Three Thousand Four Hundred Fifty Six Rupees Only"},
		{10000000, "One Crore Rupees Only"},
		{123456789, "Twelve Crore Thirty Four Lakh Fifty Six Thousand Seven Hundred Eighty Nine Rupees Only"},
		{105.5, "One Hundred Five Rupees and Fifty Paise Only"},
		{0.25, "Zero Rupees and Twenty Five Paise Only"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, pdf.NumberToWords(tt.amount))
		})
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "0.00"},
		{999, "999.00"},
		{1000, "1,000.00"},
		{100000, "1,00,000.00"},
		{1234567.89, "12,34,567.89"},
		{123456789, "12,34,56,789.00"},
		{-1234.5, "-1,234.50"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, pdf.FormatAmount(tt.amount))
		})
	}
}
