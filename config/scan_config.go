package config

import (
	"errors"
	"fmt"
	"io/ioutil"
	"path/filepath"
	"reflect"
	"regexp"
	"strings"

	"github.com/hashicorp/go-multierror"
	yaml "gopkg.in/yaml.v2"
)

func LoadScanConfig(bs []byte) (*ScanConfig, error) {
	c := &ScanConfig{}
	err := yaml.UnmarshalStrict(bs, c)
	if err != nil {
		return nil, err
	}

	return c, nil
}

func LoadScanConfigFile(path string) (*ScanConfig, error) {
	bs, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}

	c, err := LoadScanConfig(bs)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %s", path, err)
	}

	return c, nil
}

type ScanConfig struct {
	ExcludeTestCards bool     `long:"exclude-test-cards" description:"ignore publicly documented test card numbers" yaml:"exclude_test_cards"`
	IgnoreFile       string   `long:"ignore-file" description:"name of a gitignore style file, looked up at the top of each directory, listing paths to skip" value-name:"NAME" yaml:"ignore_file"`
	SkipDirs         []string `long:"skip-dir" description:"name of a directory to skip wherever it appears (can be repeated)" value-name:"NAME" yaml:"skip_dirs"`
	Regexp           string   `long:"regexp" description:"override the card number shapes with a regexp; matches are still checksummed" value-name:"REGEXP" yaml:"regexp"`
	MaxLineSize      int      `long:"max-line-size" description:"longest line, in bytes, read before giving up on a file" value-name:"BYTES" yaml:"max_line_size"`
}

func (c *ScanConfig) Validate() error {
	var result *multierror.Error

	if c.Regexp != "" {
		if _, err := regexp.Compile(c.Regexp); err != nil {
			result = multierror.Append(result, fmt.Errorf("invalid regexp: %s", err))
		}
	}

	if c.MaxLineSize < 0 {
		result = multierror.Append(result, errors.New("max line size must not be negative"))
	}

	if c.IgnoreFile != "" && filepath.Base(c.IgnoreFile) != c.IgnoreFile {
		result = multierror.Append(result, errors.New("ignore file must be a file name, not a path"))
	}

	for _, dir := range c.SkipDirs {
		if dir == "" || filepath.Base(dir) != dir {
			result = multierror.Append(result, fmt.Errorf("skip dir must be a directory name: %q", dir))
		}
	}

	if result == nil {
		return nil
	}

	result.ErrorFormat = flatErrors
	return result
}

func flatErrors(errs []error) string {
	messages := make([]string, len(errs))
	for i, err := range errs {
		messages[i] = err.Error()
	}

	return strings.Join(messages, "; ")
}

// Merge overwrites c with every field that is set on other.
func (c *ScanConfig) Merge(other *ScanConfig) {
	src := reflect.ValueOf(other).Elem()
	dst := reflect.ValueOf(c).Elem()

	merge(dst, src)
}
