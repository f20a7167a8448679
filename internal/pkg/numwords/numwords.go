// Package numwords converts monetary amounts into their English words form using
// the Indian numbering system (thousand, lakh, crore). Freight bill documents print
// the payable amount in words next to the figures.
package numwords

import "strings"

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
	"Sixteen", "Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// InWords converts a non-negative integer to English words in the Indian system.
// Zero yields the empty string; callers decide how to render a zero amount.
func InWords(num int64) string {
	switch {
	case num <= 0:
		return ""
	case num < 20:
		return ones[num]
	case num < 100:
		return strings.TrimSpace(tens[num/10] + " " + ones[num%10])
	case num < 1000:
		return join(ones[num/100]+" Hundred", num%100)
	case num < 100000:
		return join(InWords(num/1000)+" Thousand", num%1000)
	case num < 10000000:
		return join(InWords(num/100000)+" Lakh", num%100000)
	default:
		return join(InWords(num/10000000)+" Crore", num%10000000)
	}
}

// RupeesInWords renders an amount held in paise as "Rupees ... Only", appending
// "and ... Paise" when the fractional part is non-zero.
func RupeesInWords(paise int64) string {
	if paise <= 0 {
		return "Rupees Zero Only"
	}

	rupees := paise / 100
	fraction := paise % 100

	var b strings.Builder
	b.WriteString("Rupees ")
	if rupees == 0 {
		b.WriteString("Zero")
	} else {
		b.WriteString(InWords(rupees))
	}
	if fraction > 0 {
		b.WriteString(" and ")
		b.WriteString(InWords(fraction))
		b.WriteString(" Paise")
	}
	b.WriteString(" Only")
	return b.String()
}

func join(head string, remainder int64) string {
	if remainder == 0 {
		return head
	}
	return head + " " + InWords(remainder)
}
