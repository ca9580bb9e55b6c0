package prize

import "strconv"

const (
	lakh  = 100_000
	crore = 10_000_000
)

// FormatAmountLabel renders a prize amount the way the ladder labels it:
// amounts of a crore or more in કરોડ units, a lakh or more in લાખ units,
// otherwise a plain Indian-grouped integer, all in Gujarati numerals.
func FormatAmountLabel(amount int64) string {
	switch {
	case amount >= crore:
		return "₹ " + toGujaratiDigits(scaled(amount, crore)) + " કરોડ"
	case amount >= lakh:
		return "₹ " + toGujaratiDigits(scaled(amount, lakh)) + " લાખ"
	default:
		return "₹ " + toGujaratiDigits(groupIndian(amount))
	}
}

// scaled divides amount by unit and trims trailing zeros, so 1250000/lakh
// comes out as "12.5" and 10000000/crore as "1".
func scaled(amount, unit int64) string {
	return strconv.FormatFloat(float64(amount)/float64(unit), 'f', -1, 64)
}

// groupIndian applies Indian digit grouping: the last three digits, then
// groups of two (1250000 -> 12,50,000).
func groupIndian(n int64) string {
	if n < 0 {
		return "-" + groupIndian(-n)
	}
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	head, tail := s[:len(s)-3], s[len(s)-3:]
	grouped := ""
	for len(head) > 2 {
		grouped = "," + head[len(head)-2:] + grouped
		head = head[:len(head)-2]
	}
	return head + grouped + "," + tail
}

// toGujaratiDigits maps ASCII digits to Gujarati numerals, leaving grouping
// and decimal separators untouched.
func toGujaratiDigits(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			out = append(out, '૦'+(r-'0'))
		} else {
			out = append(out, r)
		}
	}
	return string(out)
}
