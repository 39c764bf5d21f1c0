package mimetype_test

import (
	. "github.com/onsi/ginkgo"
	"github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/pivotal-cf/pan-alert/mimetype"
)

var _ = Describe("Mimetype", func() {
	Describe("IsText", func() {
		table.DescribeTable("classifying by path",
			func(path string, expected bool) {
				Expect(mimetype.IsText(path)).To(Equal(expected))
			},
			table.Entry("log files", "test_dir/deeper/contains.log", true),
			table.Entry("python source", "test_dir/without.py", true),
			table.Entry("plain text", "/tmp/notes.txt", true),
			table.Entry("upper case extensions", "/tmp/NOTES.TXT", true),
			table.Entry("well-known names", "/src/Makefile", true),
			table.Entry("png images", "test_dir/binary.png", false),
			table.Entry("jpeg images", "photo.jpg", false),
			table.Entry("executables", "setup.exe", false),
			table.Entry("zip archives", "bundle.zip", false),
			table.Entry("tarballs", "release.tar.gz", false),
			table.Entry("unknown extensions", "data.qqqzzz", false),
			table.Entry("no extension", "/bin/something", false),
		)
	})

	Describe("TypeByPath", func() {
		It("returns the text type from the extension table", func() {
			Expect(mimetype.TypeByPath("a/b/c.csv")).To(Equal("text/csv"))
		})

		It("resolves binary types", func() {
			Expect(mimetype.TypeByPath("binary.png")).To(Equal("image/png"))
		})

		It("reports archives", func() {
			Expect(mimetype.TypeByPath("release.tgz")).To(Equal("application/x-tar"))
		})

		It("returns unknown when nothing maps the extension", func() {
			Expect(mimetype.TypeByPath("data.qqqzzz")).To(Equal(mimetype.Unknown))
		})
	})

	Describe("IsArchive", func() {
		It("detects archives by suffix", func() {
			mime, isArchive := mimetype.IsArchive("some/file.jar")
			Expect(isArchive).To(BeTrue())
			Expect(mime).To(Equal("application/zip"))
		})

		It("ignores everything else", func() {
			_, isArchive := mimetype.IsArchive("some/file.txt")
			Expect(isArchive).To(BeFalse())
		})
	})
})
