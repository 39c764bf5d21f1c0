package matchers

import (
	"regexp"

	"github.com/pivotal-cf/pan-alert/scanners"
)

type formatMatcher struct {
	r *regexp.Regexp
}

// Format matches a caller supplied expression instead of the brand shapes.
// Any non-digit characters inside a match are dropped from its digits.
func Format(format string) (Matcher, error) {
	r, err := regexp.Compile(format)
	if err != nil {
		return nil, err
	}

	return &formatMatcher{
		r: r,
	}, nil
}

func (m *formatMatcher) Match(line []byte) []scanners.Match {
	indexes := m.r.FindAllIndex(line, -1)
	if indexes == nil {
		return nil
	}

	matches := make([]scanners.Match, 0, len(indexes))
	for _, index := range indexes {
		if index[0] == index[1] {
			continue
		}

		matches = append(matches, scanners.Match{
			Start:  charOffset(line, index[0]),
			End:    charOffset(line, index[1]),
			Digits: digitsOf(line[index[0]:index[1]]),
		})
	}

	if len(matches) == 0 {
		return nil
	}

	return matches
}

func digitsOf(bs []byte) string {
	digits := make([]byte, 0, len(bs))
	for _, b := range bs {
		if isDigit(b) {
			digits = append(digits, b)
		}
	}

	return string(digits)
}
