package csv

import (
	"strings"

	"github.com/shopspring/decimal"
)

// AmountStatus tells a zero that came from an empty cell apart from a zero
// that came from text we could not read.
type AmountStatus int

const (
	AmountEmpty AmountStatus = iota
	AmountParsed
	AmountInvalid
)

func (s AmountStatus) String() string {
	switch s {
	case AmountParsed:
		return "parsed"
	case AmountInvalid:
		return "invalid"
	default:
		return "empty"
	}
}

// Amount is a sanitized currency cell.
type Amount struct {
	Value  float64
	Status AmountStatus
	Raw    string
}

var amountReplacer = strings.NewReplacer("$", "", ",", "", " ", "", "\t", "", "\u00a0", "", "#DIV/0!", "")

// ParseAmount strips currency symbols, thousands separators, whitespace and
// spreadsheet error markers before parsing. Cells that are empty after
// stripping are AmountEmpty; anything else that does not parse is
// AmountInvalid. Both carry a zero Value.
func ParseAmount(raw string) Amount {
	s := amountReplacer.Replace(strings.TrimSpace(raw))
	if s == "" || strings.EqualFold(s, "nan") {
		return Amount{Status: AmountEmpty, Raw: raw}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{Status: AmountInvalid, Raw: raw}
	}
	return Amount{Value: d.InexactFloat64(), Status: AmountParsed, Raw: raw}
}

// FormatAmount renders v without exponent and with at most two decimals.
func FormatAmount(v float64) string {
	return decimal.NewFromFloat(v).Round(2).String()
}
