package matchers

import "github.com/pivotal-cf/pan-alert/scanners"

// Filter only runs the submatcher on lines holding at least minRun
// consecutive digits.
func Filter(submatcher Matcher, minRun int) Matcher {
	return &filter{
		matcher: submatcher,
		minRun:  minRun,
	}
}

type filter struct {
	matcher Matcher
	minRun  int
}

func (f *filter) Match(line []byte) []scanners.Match {
	run := 0
	found := false

	for i := range line {
		if !isDigit(line[i]) {
			run = 0
			continue
		}

		run++
		if run >= f.minRun {
			found = true
			break
		}
	}

	if !found {
		return nil
	}

	return f.matcher.Match(line)
}
