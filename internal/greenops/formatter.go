package greenops

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer groups thousands the English way for every formatter below.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatNumber formats an integer with thousand separators: 18248 -> "18,248".
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatFloat formats a float with the given number of decimals and thousand
// separators: FormatFloat(1234.567, 2) -> "1,234.57".
func FormatFloat(f float64, precision int) string {
	precision = max(precision, 0)
	if precision == 0 {
		return FormatNumber(int64(math.Round(f)))
	}

	s := strconv.FormatFloat(f, 'f', precision, 64)
	intPart, frac, _ := strings.Cut(s, ".")

	sign := ""
	if strings.HasPrefix(intPart, "-") {
		sign = "-"
		intPart = intPart[1:]
	}
	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return s
	}
	return sign + FormatNumber(n) + "." + frac
}

// FormatLarge abbreviates values from one million up:
// FormatLarge(1500000000) -> "~1.5 billion". Smaller values use FormatNumber.
func FormatLarge(n float64) string {
	switch {
	case n >= BillionThreshold:
		return fmt.Sprintf("~%.1f billion", n/BillionThreshold)
	case n >= LargeNumberThreshold:
		return fmt.Sprintf("~%.1f million", n/LargeNumberThreshold)
	default:
		return FormatNumber(int64(math.Round(n)))
	}
}

// FormatCurrency renders a whole-unit amount followed by the currency code,
// e.g. "4,852 PLN".
func FormatCurrency(amount float64, currency string) string {
	if currency == "" {
		return FormatNumber(int64(math.Round(amount)))
	}
	return FormatNumber(int64(math.Round(amount))) + " " + currency
}
