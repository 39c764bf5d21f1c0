package matchers_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/pivotal-cf/pan-alert/scanners"
	"github.com/pivotal-cf/pan-alert/sniff/matchers"
	"github.com/pivotal-cf/pan-alert/sniff/matchers/matchersfakes"
)

var _ = Describe("Filter", func() {
	var (
		filter     matchers.Matcher
		submatcher *matchersfakes.FakeMatcher

		line []byte
	)

	BeforeEach(func() {
		submatcher = &matchersfakes.FakeMatcher{}
		submatcher.MatchReturns([]scanners.Match{{Start: 0, End: 5}})
		filter = matchers.Filter(submatcher, 5)
	})

	Context("when the line has no run of digits long enough", func() {
		BeforeEach(func() {
			line = []byte("1234 1234 12a34")
		})

		It("returns nothing", func() {
			Expect(filter.Match(line)).To(BeNil())
		})

		It("does not call the submatcher", func() {
			filter.Match(line)
			Expect(submatcher.MatchCallCount()).To(BeZero())
		})
	})

	Context("when the line has a long enough run of digits", func() {
		BeforeEach(func() {
			line = []byte("abc 12345")
		})

		It("returns whatever the submatcher returns", func() {
			Expect(filter.Match(line)).To(Equal([]scanners.Match{{Start: 0, End: 5}}))
			Expect(submatcher.MatchCallCount()).To(Equal(1))
			Expect(submatcher.MatchArgsForCall(0)).To(Equal(line))
		})
	})
})
