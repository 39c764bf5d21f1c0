package matchers

import (
	"regexp"

	"github.com/pivotal-cf/pan-alert/scanners"
)

type alternative struct {
	brand string
	r     *regexp.Regexp
}

// Tried in order at every candidate start. A brand's longer shape comes
// before its shorter one.
var brandAlternatives = []alternative{
	{"Visa", regexp.MustCompile(`^4[0-9]{15}`)},
	{"Visa", regexp.MustCompile(`^4[0-9]{12}`)},
	{"MasterCard", regexp.MustCompile(`^5[1-5][0-9]{14}`)},
	{"Discover", regexp.MustCompile(`^6(?:011|5[0-9]{2})[0-9]{12}`)},
	{"American Express", regexp.MustCompile(`^3[47][0-9]{13}`)},
	{"Diners Club", regexp.MustCompile(`^3(?:0[0-5]|[68][0-9])[0-9]{11}`)},
	{"JCB", regexp.MustCompile(`^(?:2131|1800|35[0-9]{3})[0-9]{11}`)},
}

// MinLength is the shortest card number shape of any brand.
const MinLength = 13

type panMatcher struct {
	alternatives []alternative
}

// PAN matches the shape of card numbers of the major brands. A number
// directly preceded or followed by a digit, '.' or ',' is part of something
// longer and is not matched.
func PAN() Matcher {
	return &panMatcher{
		alternatives: brandAlternatives,
	}
}

func (m *panMatcher) Match(line []byte) []scanners.Match {
	var matches []scanners.Match

	for i := 0; i < len(line); {
		if !isDigit(line[i]) || (i > 0 && isAdjacent(line[i-1])) {
			i++
			continue
		}

		match, end, found := m.matchAt(line, i)
		if !found {
			i++
			continue
		}

		matches = append(matches, match)
		i = end
	}

	return matches
}

func (m *panMatcher) matchAt(line []byte, start int) (scanners.Match, int, bool) {
	rest := line[start:]

	for _, alt := range m.alternatives {
		loc := alt.r.FindIndex(rest)
		if loc == nil {
			continue
		}

		end := start + loc[1]
		if end < len(line) && isAdjacent(line[end]) {
			continue
		}

		charStart := charOffset(line, start)

		return scanners.Match{
			Start:  charStart,
			End:    charStart + loc[1],
			Digits: string(rest[:loc[1]]),
			Brand:  alt.brand,
		}, end, true
	}

	return scanners.Match{}, 0, false
}

func isAdjacent(b byte) bool {
	return isDigit(b) || b == '.' || b == ','
}
