package matchers

import "github.com/pivotal-cf/pan-alert/scanners"

// TestCards are card numbers published by payment processors for use in
// documentation and sandboxes.
var TestCards = []string{
	"4111111111111111",
	"4012888888881881",
	"4222222222222",
	"4242424242424242",
	"4000056655665556",
	"5555555555554444",
	"5105105105105100",
	"5200828282828210",
	"378282246310005",
	"371449635398431",
	"378734493671000",
	"6011111111111117",
	"6011000990139424",
	"6011981111111113",
	"30569309025904",
	"38520000023237",
	"36227206271667",
	"3530111333300000",
	"3566002020360505",
	"3566111111111113",
}

type exclusion struct {
	matcher Matcher
	digits  map[string]struct{}
}

// Exclude drops the submatcher's matches whose digits are one of digits.
func Exclude(submatcher Matcher, digits ...string) Matcher {
	set := make(map[string]struct{}, len(digits))
	for _, d := range digits {
		set[d] = struct{}{}
	}

	return &exclusion{
		matcher: submatcher,
		digits:  set,
	}
}

func (e *exclusion) Match(line []byte) []scanners.Match {
	return keep(e.matcher.Match(line), func(m scanners.Match) bool {
		_, excluded := e.digits[m.Digits]
		return !excluded
	})
}
