package utils

import (
	"math"
	"strings"
)

var wordOnes = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
	"Sixteen", "Seventeen", "Eighteen", "Nineteen",
}

var wordTens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// numberWords spells a non-negative integer in the Indian numbering system
// (hundred, thousand, lakh, crore).
func numberWords(num int) string {
	switch {
	case num == 0:
		return ""
	case num < 20:
		return wordOnes[num]
	case num < 100:
		return strings.TrimSpace(wordTens[num/10] + " " + wordOnes[num%10])
	case num < 1000:
		if num%100 == 0 {
			return wordOnes[num/100] + " Hundred"
		}
		return wordOnes[num/100] + " Hundred " + numberWords(num%100)
	case num < 100000:
		if num%1000 == 0 {
			return numberWords(num/1000) + " Thousand"
		}
		return numberWords(num/1000) + " Thousand " + numberWords(num%1000)
	case num < 10000000:
		if num%100000 == 0 {
			return numberWords(num/100000) + " Lakh"
		}
		return numberWords(num/100000) + " Lakh " + numberWords(num%100000)
	default:
		if num%10000000 == 0 {
			return numberWords(num/10000000) + " Crore"
		}
		return numberWords(num/10000000) + " Crore " + numberWords(num%10000000)
	}
}

// AmountInWords renders a rupee amount in words for voucher prints. Trip
// balances can run negative when fuel and expenses outweigh the advance;
// those read as "Minus ... Rupees".
func AmountInWords(amount float64) string {
	prefix := ""
	if amount < 0 {
		prefix = "Minus "
		amount = -amount
	}

	rupees := int(math.Floor(amount))
	paise := int(math.Round((amount - float64(rupees)) * 100))

	var parts []string
	if rupees > 0 {
		parts = append(parts, strings.TrimSpace(numberWords(rupees))+" Rupees")
	}
	if paise > 0 {
		parts = append(parts, strings.TrimSpace(numberWords(paise))+" Paise")
	}
	if len(parts) == 0 {
		return "Zero Rupees Only"
	}

	return prefix + strings.Join(parts, " and ") + " Only"
}
