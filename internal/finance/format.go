package finance

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatIDR renders d as whole rupiah with dot thousands separators,
// e.g. "Rp 1.250.000" or "-Rp 85.000".
func FormatIDR(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
	}
	return sign + "Rp " + groupThousands(d.Abs().Round(0).StringFixed(0))
}

// FormatSigned is FormatIDR with an explicit "+" for non-negative amounts.
func FormatSigned(d decimal.Decimal) string {
	if d.IsNegative() {
		return FormatIDR(d)
	}
	return "+" + FormatIDR(d)
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
