package matchers

import (
	"unicode/utf8"

	"github.com/pivotal-cf/pan-alert/scanners"
)

//go:generate counterfeiter . Matcher

// Matcher finds every card number in a line, left to right, without
// overlaps. It returns nil when there are none.
type Matcher interface {
	Match([]byte) []scanners.Match
}

func charOffset(line []byte, byteOffset int) int {
	return utf8.RuneCount(line[:byteOffset])
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
