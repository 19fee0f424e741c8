package valueobject

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatValue renders value using Italian conventions for the given format:
// "." groups thousands and "," separates decimals. Currency and percentage
// values are shown as integers, plain numbers are compacted to K/M.
func FormatValue(value float64, format NumberFormat) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "0"
	}

	d := decimal.NewFromFloat(value)

	switch format.OrDefault() {
	case NumberFormatCurrency:
		return groupItalian(d.Round(0), 0) + " €"
	case NumberFormatPercentage:
		return groupItalian(d.Round(0), 0) + "%"
	case NumberFormatDecimal:
		return groupItalian(d.Round(1), 1)
	default:
		rounded := d.Round(1)
		abs := rounded.Abs()
		switch {
		case abs.GreaterThanOrEqual(decimal.NewFromInt(1_000_000)):
			return compact(rounded.Div(decimal.NewFromInt(1_000_000))) + "M"
		case abs.GreaterThanOrEqual(decimal.NewFromInt(1_000)):
			return compact(rounded.Div(decimal.NewFromInt(1_000))) + "K"
		}
		return groupItalian(rounded, 1)
	}
}

// compact keeps one decimal digit and drops a trailing ".0".
func compact(d decimal.Decimal) string {
	return d.Round(1).String()
}

func groupItalian(d decimal.Decimal, places int32) string {
	fixed := d.StringFixed(places)

	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var sb strings.Builder
	if negative {
		sb.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteByte('.')
		}
		sb.WriteRune(r)
	}
	if fracPart != "" {
		sb.WriteByte(',')
		sb.WriteString(fracPart)
	}
	return sb.String()
}
