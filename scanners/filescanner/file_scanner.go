package filescanner

import (
	"bufio"
	"io"

	"code.cloudfoundry.org/lager"

	"github.com/pivotal-cf/pan-alert/scanners"
)

// MaxLineSize is the longest line read by default. Longer lines make the
// scan of that file fail.
const MaxLineSize = 1024 * 1024

const initialBufferSize = 64 * 1024

type fileScanner struct {
	path         string
	bufioScanner *bufio.Scanner
	lineNumber   int
	err          error
}

func New(r io.Reader, filename string) *fileScanner {
	return NewWithMaxLineSize(r, filename, MaxLineSize)
}

func NewWithMaxLineSize(r io.Reader, filename string, maxLineSize int) *fileScanner {
	bufferSize := initialBufferSize
	if maxLineSize < bufferSize {
		bufferSize = maxLineSize
	}

	bufioScanner := bufio.NewScanner(r)
	bufioScanner.Buffer(make([]byte, 0, bufferSize), maxLineSize)

	return &fileScanner{
		path:         filename,
		bufioScanner: bufioScanner,
	}
}

func (s *fileScanner) Scan(logger lager.Logger) bool {
	success := s.bufioScanner.Scan()

	if err := s.bufioScanner.Err(); err != nil {
		logger.Session("file-scanner", lager.Data{
			"path": s.path,
			"line": s.lineNumber + 1,
		}).Error("bufio-error", err)
		s.err = err
		return false
	}

	if success {
		s.lineNumber++
	}
	return success
}

func (s *fileScanner) Line(logger lager.Logger) *scanners.Line {
	content := s.bufioScanner.Bytes()
	line := make([]byte, len(content))
	copy(line, content)

	return &scanners.Line{
		Content:    line,
		LineNumber: s.lineNumber,
		Path:       s.path,
	}
}

func (s *fileScanner) Err() error {
	return s.err
}
