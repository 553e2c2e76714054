package match

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// percent rounds a ratio to a whole percentage and scales it back to [0, 1].
// Halves round to even.
func percent(r float64) float64 {
	return math.RoundToEven(100*r) / 100
}

// SimpleRatio is Ratio rounded to a whole percentage. Equal strings score 1
// and an empty side scores 0.
func SimpleRatio(a, b string) float64 {
	if a == b {
		return 1
	}

	if a == "" || b == "" {
		return 0
	}

	return percent(Ratio(a, b))
}

// TokenSortRatio compares two strings after reducing each to its sorted
// lowercase word tokens, so word order does not matter.
func TokenSortRatio(a, b string) float64 {
	return SimpleRatio(sortedTokens(a), sortedTokens(b))
}

// PartialRatio scores the best alignment of the shorter string against any
// window of the longer one.
func PartialRatio(a, b string) float64 {
	if a == b {
		return 1
	}

	if a == "" || b == "" {
		return 0
	}

	shorter, longer := []rune(a), []rune(b)
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}

	short := string(shorter)
	best := 0.0

	for start := 0; start < len(longer); start++ {
		end := min(start+len(shorter), len(longer))

		r := Ratio(short, string(longer[start:end]))
		if r > 0.995 {
			return 1
		}

		best = max(best, r)
	}

	return percent(best)
}

// sortedTokens lowercases s, drops Latin-1 supplement characters, turns every
// non-word character into a separator, and joins the sorted tokens.
func sortedTokens(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		switch {
		case r >= 128 && r < 256:
			continue
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteByte(' ')
		}
	}

	tokens := strings.Fields(b.String())
	sort.Strings(tokens)

	return strings.Join(tokens, " ")
}
