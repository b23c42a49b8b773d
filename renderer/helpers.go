package renderer

import (
	"strconv"
	"strings"
)

// barWidth is the width of the proportional bar column, in cells.
const barWidth = 25

// bar renders a proportional horizontal bar for a value against the maximum
// of its column. A non-zero value always gets at least one cell.
func bar(value, max int) string {
	if value <= 0 || max <= 0 {
		return ""
	}
	cells := value * barWidth / max
	if cells == 0 {
		cells = 1
	}
	return strings.Repeat("█", cells)
}

// group inserts thousand separators in the integer part of a plain decimal
// string: "3711.25" becomes "3,711.25".
func group(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, fracPart, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if hasFrac {
		return sign + b.String() + "." + fracPart
	}
	return sign + b.String()
}

// groupInt is group for integer values.
func groupInt(n int) string { return group(strconv.Itoa(n)) }
