// Package report renders scan findings as text, one line per sink write.
package report

import (
	"fmt"

	"github.com/pivotal-cf/pan-alert/scanners"
)

const (
	FileTemplate   = "Found card number in %s:\n"
	LineTemplate   = "* Card number found at line %d in interval: %s\n"
	FailedHeader   = "Failed to open:\n"
	FailedTemplate = "* %s\n"
)

type Reporter interface {
	File(path string)
	Line(violation scanners.Violation)
	Failed(paths []string)
}

type reporter struct {
	sink Sink
}

func New(sink Sink) Reporter {
	return &reporter{
		sink: sink,
	}
}

func (r *reporter) File(path string) {
	r.sink.Write(fmt.Sprintf(FileTemplate, path))
}

func (r *reporter) Line(violation scanners.Violation) {
	r.sink.Write(fmt.Sprintf(LineTemplate, violation.Line.LineNumber, violation.Spans()))
}

func (r *reporter) Failed(paths []string) {
	if len(paths) == 0 {
		return
	}

	r.sink.Write(FailedHeader)
	for _, path := range paths {
		r.sink.Write(fmt.Sprintf(FailedTemplate, path))
	}
}

// Summary is what a scan found.
type Summary struct {
	Files        int
	Lines        int
	Matches      int
	FailedToOpen []string
}

func (s Summary) Found() bool {
	return s.Matches > 0
}
