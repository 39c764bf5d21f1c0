package textscanner

import (
	"strings"

	"github.com/pivotal-cf/pan-alert/scanners/filescanner"
	"github.com/pivotal-cf/pan-alert/sniff"
)

// New scans text held in memory as if it were a file named "text".
func New(text string) sniff.Scanner {
	reader := strings.NewReader(text)

	return filescanner.New(reader, "text")
}
