package dirscanner

import (
	"io"
	"os"

	"code.cloudfoundry.org/lager"
	"github.com/hashicorp/go-multierror"

	"github.com/pivotal-cf/pan-alert/report"
	"github.com/pivotal-cf/pan-alert/scanners"
	"github.com/pivotal-cf/pan-alert/scanners/filescanner"
	"github.com/pivotal-cf/pan-alert/sniff"
)

type Opener func(path string) (io.ReadCloser, error)

type Options struct {
	// Open defaults to os.Open.
	Open Opener

	// MaxLineSize defaults to filescanner.MaxLineSize.
	MaxLineSize int
}

// DirScanner walks directory trees and reports the card numbers found in
// their text files. It is not safe for concurrent use.
type DirScanner struct {
	walker      Walker
	isText      func(path string) bool
	sniffer     sniff.Sniffer
	reporter    report.Reporter
	open        Opener
	maxLineSize int
}

func New(
	walker Walker,
	isText func(path string) bool,
	sniffer sniff.Sniffer,
	reporter report.Reporter,
	opts Options,
) *DirScanner {
	s := &DirScanner{
		walker:      walker,
		isText:      isText,
		sniffer:     sniffer,
		reporter:    reporter,
		open:        opts.Open,
		maxLineSize: opts.MaxLineSize,
	}

	if s.open == nil {
		s.open = func(path string) (io.ReadCloser, error) {
			return os.Open(path)
		}
	}

	if s.maxLineSize <= 0 {
		s.maxLineSize = filescanner.MaxLineSize
	}

	return s
}

type scanState struct {
	path          string
	headerWritten bool
	failed        []string
	summary       report.Summary
}

func (st *scanState) startFile(path string) {
	st.path = path
	st.headerWritten = false
}

// Scan reports every file below roots that holds card numbers, then the
// files that could not be read. Unreadable files never stop the scan; the
// returned error only carries directories that could not be walked.
func (s *DirScanner) Scan(logger lager.Logger, roots ...string) (report.Summary, error) {
	logger = logger.Session("dir-scanner")
	logger.Debug("starting")
	defer logger.Debug("done")

	state := &scanState{}

	var result error
	for _, root := range roots {
		err := s.walker.Walk(logger, root, func(path string) {
			s.scanFile(logger, state, path)
		})
		if err != nil {
			result = multierror.Append(result, err)
		}
	}

	s.reporter.Failed(state.failed)
	state.summary.FailedToOpen = state.failed

	return state.summary, result
}

func (s *DirScanner) scanFile(logger lager.Logger, state *scanState, path string) {
	logger = logger.Session("scan-file", lager.Data{"path": path})

	if !s.isText(path) {
		logger.Debug("skipping-non-text")
		return
	}

	state.startFile(path)

	f, err := s.open(path)
	if err != nil {
		logger.Error("failed-to-open", err)
		state.failed = append(state.failed, path)
		return
	}
	defer f.Close()

	state.summary.Files++

	scanner := filescanner.NewWithMaxLineSize(f, path, s.maxLineSize)
	err = s.sniffer.Sniff(logger, scanner, func(logger lager.Logger, violation scanners.Violation) error {
		if !state.headerWritten {
			s.reporter.File(state.path)
			state.headerWritten = true
		}

		s.reporter.Line(violation)

		state.summary.Lines++
		state.summary.Matches += len(violation.Matches)

		logger.Info("found", lager.Data{
			"line":   violation.Line.LineNumber,
			"cards":  violation.Masked(),
			"brands": violation.Brands(),
		})

		return nil
	})
	if err != nil {
		logger.Error("failed-to-read", err)
		state.failed = append(state.failed, path)
	}
}
