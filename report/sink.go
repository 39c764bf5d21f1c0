package report

import (
	"io"
	"sync"
)

// Sink receives every piece of report output as soon as it is produced.
type Sink interface {
	Write(text string)
}

type writerSink struct {
	w io.Writer
}

func WriterSink(w io.Writer) Sink {
	return &writerSink{w: w}
}

func (s *writerSink) Write(text string) {
	_, _ = io.WriteString(s.w, text)
}

// BufferSink keeps everything written to it.
type BufferSink struct {
	mu     sync.Mutex
	writes []string
}

func NewBufferSink() *BufferSink {
	return &BufferSink{}
}

func (s *BufferSink) Write(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.writes = append(s.writes, text)
}

func (s *BufferSink) Writes() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	writes := make([]string, len(s.writes))
	copy(writes, s.writes)
	return writes
}
