package sniff

import (
	"code.cloudfoundry.org/lager"
	"github.com/hashicorp/go-multierror"

	"github.com/pivotal-cf/pan-alert/luhn"
	"github.com/pivotal-cf/pan-alert/scanners"
	"github.com/pivotal-cf/pan-alert/sniff/matchers"
)

//go:generate counterfeiter . Scanner

type Scanner interface {
	Scan(lager.Logger) bool
	Line(lager.Logger) *scanners.Line
	Err() error
}

//go:generate counterfeiter . Sniffer

type Sniffer interface {
	Sniff(lager.Logger, Scanner, ViolationHandlerFunc) error
}

type ViolationHandlerFunc func(lager.Logger, scanners.Violation) error

type sniffer struct {
	matcher matchers.Matcher
}

func NewSniffer(matcher matchers.Matcher) Sniffer {
	return &sniffer{
		matcher: matcher,
	}
}

func NewDefaultSniffer(excludeTestCards bool) Sniffer {
	return &sniffer{
		matcher: matchers.Filter(
			Validated(matchers.PAN(), excludeTestCards),
			matchers.MinLength,
		),
	}
}

// Validated keeps the shapes found by matcher that pass the mod-10 check
// and, if asked to, are not well-known test card numbers.
func Validated(matcher matchers.Matcher, excludeTestCards bool) matchers.Matcher {
	validated := matchers.Checksum(matcher, luhn.Valid)
	if excludeTestCards {
		validated = matchers.Exclude(validated, matchers.TestCards...)
	}

	return validated
}

func (s *sniffer) Sniff(
	logger lager.Logger,
	scanner Scanner,
	handleViolation ViolationHandlerFunc,
) error {
	logger = logger.Session("sniff")
	logger.Debug("starting")

	var result error

	for scanner.Scan(logger) {
		line := scanner.Line(logger)

		matches := s.matcher.Match(line.Content)
		if len(matches) == 0 {
			continue
		}

		violation := scanners.Violation{
			Line:    *line,
			Matches: matches,
		}

		err := handleViolation(logger, violation)
		if err != nil {
			logger.Error("failed", err)
			result = multierror.Append(result, err)
		}
	}

	if err := scanner.Err(); err != nil {
		logger.Error("scanning-failed", err)
		result = multierror.Append(result, err)
	}

	logger.Debug("done")
	return result
}
