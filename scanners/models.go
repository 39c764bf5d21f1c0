package scanners

import (
	"fmt"
	"strings"
)

type Line struct {
	Path       string
	LineNumber int
	Content    []byte
}

// Match is a card number found in a line. Start and End are character
// offsets into the line content; End is exclusive.
type Match struct {
	Start  int
	End    int
	Digits string
	Brand  string
}

func (m Match) Span() string {
	return fmt.Sprintf("(%d, %d)", m.Start, m.End)
}

// Masked keeps the first six and last four digits.
func (m Match) Masked() string {
	n := len(m.Digits)
	if n <= 10 {
		return strings.Repeat("*", n)
	}

	return m.Digits[:6] + strings.Repeat("*", n-10) + m.Digits[n-4:]
}

type Violation struct {
	Line    Line
	Matches []Match
}

func (v Violation) Spans() string {
	spans := make([]string, len(v.Matches))
	for i := range v.Matches {
		spans[i] = v.Matches[i].Span()
	}

	return strings.Join(spans, ", ")
}

func (v Violation) Masked() []string {
	masked := make([]string, len(v.Matches))
	for i := range v.Matches {
		masked[i] = v.Matches[i].Masked()
	}

	return masked
}

func (v Violation) Brands() []string {
	brands := make([]string, len(v.Matches))
	for i := range v.Matches {
		brands[i] = v.Matches[i].Brand
	}

	return brands
}
