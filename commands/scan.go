package commands

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"

	"code.cloudfoundry.org/lager"

	"github.com/pivotal-cf/pan-alert/config"
	panlog "github.com/pivotal-cf/pan-alert/log"
	"github.com/pivotal-cf/pan-alert/mimetype"
	"github.com/pivotal-cf/pan-alert/report"
	"github.com/pivotal-cf/pan-alert/scanners/dirscanner"
	"github.com/pivotal-cf/pan-alert/sniff"
	"github.com/pivotal-cf/pan-alert/sniff/matchers"
)

const (
	exitFound  = 3
	exitFailed = 1
)

type ScanCommand struct {
	ConfigFile string `long:"config" description:"path to a YAML file holding scan options; flags take precedence" value-name:"PATH"`
	Debug      bool   `long:"debug" description:"enables debug logging on stderr"`

	config.ScanConfig

	Args struct {
		Directories []string `positional-arg-name:"DIRECTORY" required:"1"`
	} `positional-args:"yes"`
}

func (command *ScanCommand) Execute(args []string) error {
	var logger lager.Logger = panlog.NewNullLogger()
	if command.Debug {
		l := lager.NewLogger("pan-alert")
		l.RegisterSink(lager.NewWriterSink(os.Stderr, lager.DEBUG))
		logger = l
	}

	clean := newCleanup()

	cfg, err := command.loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, red("[FAILED]"), err)
		clean.exit(exitFailed)
	}

	sniffer, err := buildSniffer(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, red("[FAILED]"), err)
		clean.exit(exitFailed)
	}

	sink := &stdoutSink{sink: report.WriterSink(os.Stdout)}
	clean.register(sink.hold)

	scanner := dirscanner.New(
		dirscanner.NewWalker(cfg.IgnoreFile, cfg.SkipDirs),
		mimetype.IsText,
		sniffer,
		report.New(sink),
		dirscanner.Options{MaxLineSize: cfg.MaxLineSize},
	)

	summary, err := scanner.Scan(logger, command.Args.Directories...)
	if err != nil {
		fmt.Fprintln(os.Stderr, red("[FAILED]"), "some directories could not be scanned:", err)
	}

	if n := len(summary.FailedToOpen); n > 0 {
		fmt.Fprintln(os.Stderr, yellow("[WARN]"), fmt.Sprintf("%d file(s) could not be read", n))
	}

	if summary.Found() {
		fmt.Fprintln(os.Stderr, red("[FOUND]"), fmt.Sprintf(
			"%d card number(s) on %d line(s) in %d scanned file(s)",
			summary.Matches, summary.Lines, summary.Files,
		))
		clean.exit(exitFound)
	}

	if err != nil {
		clean.exit(exitFailed)
	}

	fmt.Fprintln(os.Stderr, green("[OK]"), fmt.Sprintf("no card numbers in %d scanned file(s)", summary.Files))

	return nil
}

func (command *ScanCommand) loadConfig() (*config.ScanConfig, error) {
	cfg := &config.ScanConfig{}

	if command.ConfigFile != "" {
		var err error
		cfg, err = config.LoadScanConfigFile(command.ConfigFile)
		if err != nil {
			return nil, err
		}
	}

	cfg.Merge(&command.ScanConfig)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func buildSniffer(cfg *config.ScanConfig) (sniff.Sniffer, error) {
	if cfg.Regexp == "" {
		return sniff.NewDefaultSniffer(cfg.ExcludeTestCards), nil
	}

	matcher, err := matchers.Format(cfg.Regexp)
	if err != nil {
		return nil, err
	}

	return sniff.NewSniffer(sniff.Validated(matcher, cfg.ExcludeTestCards)), nil
}

// stdoutSink stops taking writes once held, so an interrupt never cuts a
// report line in half.
type stdoutSink struct {
	mu   sync.Mutex
	sink report.Sink
}

func (s *stdoutSink) Write(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sink.Write(text)
}

func (s *stdoutSink) hold() {
	s.mu.Lock()
}

type cleanup struct {
	mu   sync.Mutex
	work []func()
}

func newCleanup() *cleanup {
	clean := &cleanup{}

	signalsCh := make(chan os.Signal, 1)
	signal.Notify(signalsCh, os.Interrupt)

	go func() {
		<-signalsCh
		log.SetFlags(0)
		log.Println("\ninterrupted, report is incomplete")
		clean.exit(exitFailed)
	}()

	return clean
}

func (c *cleanup) register(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.work = append(c.work, fn)
}

func (c *cleanup) exit(status int) {
	c.mu.Lock()
	work := c.work
	c.mu.Unlock()

	for _, w := range work {
		w()
	}

	os.Exit(status)
}
