package report_test

import (
	"bytes"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/pivotal-cf/pan-alert/report"
	"github.com/pivotal-cf/pan-alert/scanners"
)

var _ = Describe("Reporter", func() {
	var (
		sink     *report.BufferSink
		reporter report.Reporter
	)

	BeforeEach(func() {
		sink = report.NewBufferSink()
		reporter = report.New(sink)
	})

	It("writes a file header", func() {
		reporter.File("/tmp/dir/contains.log")
		Expect(sink.Writes()).To(Equal([]string{
			"Found card number in /tmp/dir/contains.log:\n",
		}))
	})

	It("writes the spans of a line", func() {
		reporter.Line(scanners.Violation{
			Line: scanners.Line{LineNumber: 2},
			Matches: []scanners.Match{
				{Start: 16, End: 32},
				{Start: 57, End: 73},
			},
		})

		Expect(sink.Writes()).To(Equal([]string{
			"* Card number found at line 2 in interval: (16, 32), (57, 73)\n",
		}))
	})

	It("lists the files that failed to open", func() {
		reporter.Failed([]string{"/a", "/b"})
		Expect(sink.Writes()).To(Equal([]string{
			"Failed to open:\n",
			"* /a\n",
			"* /b\n",
		}))
	})

	It("writes nothing when no file failed", func() {
		reporter.Failed(nil)
		Expect(sink.Writes()).To(BeEmpty())
	})

	Describe("WriterSink", func() {
		It("writes straight through to the writer", func() {
			buf := &bytes.Buffer{}
			reporter = report.New(report.WriterSink(buf))

			reporter.File("f")
			Expect(buf.String()).To(Equal("Found card number in f:\n"))
		})
	})
})

var _ = Describe("Summary", func() {
	It("found something when there are matches", func() {
		Expect(report.Summary{Matches: 1}.Found()).To(BeTrue())
		Expect(report.Summary{FailedToOpen: []string{"x"}}.Found()).To(BeFalse())
	})
})
