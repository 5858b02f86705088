package deck

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var countUpNumberRe = regexp.MustCompile(`[\d,]+(?:\.\d+)?`)

// CountUp renders the KPI value string at a point of the count-up animation.
// Every embedded numeric substring is scaled by a cubic ease-out of progress
// (clamped to [0,1]); decimal places and thousands separators of the original
// are preserved. Non-numeric text is left untouched. At progress >= 1 the
// original value is returned verbatim.
func CountUp(value string, progress float64) string {
	if progress >= 1 {
		return value
	}
	if progress < 0 {
		progress = 0
	}
	ease := 1 - math.Pow(1-progress, 3)

	return countUpNumberRe.ReplaceAllStringFunc(value, func(matched string) string {
		target, err := strconv.ParseFloat(strings.ReplaceAll(matched, ",", ""), 64)
		if err != nil {
			return matched
		}
		current := target * ease

		decimals := 0
		if dot := strings.Index(matched, "."); dot >= 0 {
			decimals = len(matched) - dot - 1
		}

		var formatted string
		if decimals > 0 {
			formatted = strconv.FormatFloat(current, 'f', decimals, 64)
		} else {
			formatted = strconv.Itoa(int(math.Floor(current)))
		}
		if strings.Contains(matched, ",") {
			formatted = groupThousands(formatted)
		}
		return formatted
	})
}

// Animatable reports whether a KPI value should be animated at all: only
// values that contain a digit and are short enough to read while moving.
func Animatable(value string) bool {
	return len(value) < 15 && strings.ContainsAny(value, "0123456789")
}

func groupThousands(s string) string {
	intPart, frac, hasFrac := strings.Cut(s, ".")
	n := len(intPart)
	if n <= 3 {
		if hasFrac {
			return intPart + "." + frac
		}
		return intPart
	}
	var b strings.Builder
	lead := n % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}
