package matchers

import "github.com/pivotal-cf/pan-alert/scanners"

type checksum struct {
	matcher Matcher
	valid   func(string) bool
}

// Checksum drops the submatcher's matches whose digits do not validate.
func Checksum(submatcher Matcher, valid func(string) bool) Matcher {
	return &checksum{
		matcher: submatcher,
		valid:   valid,
	}
}

func (c *checksum) Match(line []byte) []scanners.Match {
	return keep(c.matcher.Match(line), func(m scanners.Match) bool {
		return c.valid(m.Digits)
	})
}

func keep(matches []scanners.Match, pred func(scanners.Match) bool) []scanners.Match {
	var kept []scanners.Match
	for _, m := range matches {
		if pred(m) {
			kept = append(kept, m)
		}
	}

	return kept
}
