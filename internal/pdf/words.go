package pdf

import (
	"math"
	"strings"
)

var onesWords = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tensWords = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// NumberToWords spells out a rupee amount using the Indian numbering system
// (thousand, lakh, crore), with paise appended when the fraction is nonzero.
func NumberToWords(amount float64) string {
	negative := amount < 0
	cents := int64(math.Round(math.Abs(amount) * 100))
	whole := cents / 100
	fraction := cents % 100

	if whole == 0 && fraction == 0 {
		return "Zero Rupees Only"
	}

	wholeWords := convertIndian(whole)
	if wholeWords == "" {
		wholeWords = "Zero"
	}
	out := wholeWords + " Rupees"
	if fraction > 0 {
		out += " and " + convertGroup(fraction) + " Paise"
	}
	if negative {
		out = "Minus " + out
	}
	return out + " Only"
}

// convertGroup spells out 0-999.
func convertGroup(n int64) string {
	switch {
	case n == 0:
		return ""
	case n < 20:
		return onesWords[n]
	case n < 100:
		s := tensWords[n/10]
		if n%10 != 0 {
			s += " " + onesWords[n%10]
		}
		return s
	default:
		s := onesWords[n/100] + " Hundred"
		if n%100 != 0 {
			s += " " + convertGroup(n%100)
		}
		return s
	}
}

func convertIndian(n int64) string {
	if n == 0 {
		return ""
	}

	var sb strings.Builder
	crore := n / 10000000
	lakh := (n % 10000000) / 100000
	thousand := (n % 100000) / 1000
	hundred := n % 1000

	if crore > 0 {
		sb.WriteString(convertIndian(crore) + " Crore ")
	}
	if lakh > 0 {
		sb.WriteString(convertGroup(lakh) + " Lakh ")
	}
	if thousand > 0 {
		sb.WriteString(convertGroup(thousand) + " Thousand ")
	}
	if hundred > 0 {
		sb.WriteString(convertGroup(hundred))
	}
	return strings.TrimSpace(sb.String())
}
