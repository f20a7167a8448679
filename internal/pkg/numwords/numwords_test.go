package numwords_test

import (
	"testing"

	"freightops/internal/pkg/numwords"

	"github.com/stretchr/testify/assert"
)

func TestInWords(t *testing.T) {
	cases := []struct {
		num  int64
		want string
	}{
		{0, ""},
		{7, "Seven"},
		{13, "Thirteen"},
		{20, "Twenty"},
		{42, "Forty Two"},
		{100, "One Hundred"},
		{205, "Two Hundred Five"},
		{999, "Nine Hundred Ninety Nine"},
		{1000, "One Thousand"},
		{2500, "Two Thousand Five Hundred"},
		{99999, "Ninety Nine Thousand Nine Hundred Ninety Nine"},
		{100000, "One Lakh"},
		{2300000, "Twenty Three Lakh"},
		{10000000, "One Crore"},
		{12345678, "One Crore Twenty Three Lakh Forty Five Thousand Six Hundred Seventy Eight"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, numwords.InWords(tc.num), "num=%d", tc.num)
	}
}

func TestRupeesInWords(t *testing.T) {
	assert.Equal(t, "Rupees Zero Only", numwords.RupeesInWords(0))
	assert.Equal(t, "Rupees One Only", numwords.RupeesInWords(100))
	assert.Equal(t, "Rupees Two Thousand Three Hundred Only", numwords.RupeesInWords(230000))
	assert.Equal(t, "Rupees Zero and Fifty Paise Only", numwords.RupeesInWords(50))
	assert.Equal(t, "Rupees One Hundred and Twenty Five Paise Only", numwords.RupeesInWords(10025))
}
