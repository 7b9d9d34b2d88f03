// Package yaml loads the importer configuration from a YAML file.
package yaml

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fwojciec/newsdesk"
	"github.com/fwojciec/newsdesk/goquery"
	"github.com/fwojciec/newsdesk/importer"
	"gopkg.in/yaml.v3"
)

// Batch defaults used when the configuration leaves them unset.
const (
	DefaultRate        = 1.0
	DefaultConcurrency = 2
)

// Config holds the importer settings.
//
//	reader_url: https://r.jina.ai/
//	mirrors:
//	  - https://corsproxy.io/?url=
//	placeholder: /images/news-placeholder.jpg
//	image_timeout: 8s
//	rate: 1
//	concurrency: 2
//	noise:
//	  - "promoted"
//	end_markers:
//	  - "related posts"
type Config struct {
	ReaderURL    string        `yaml:"reader_url"`
	Mirrors      []string      `yaml:"mirrors"`
	Placeholder  string        `yaml:"placeholder"`
	ImageTimeout time.Duration `yaml:"image_timeout"`
	Rate         float64       `yaml:"rate"`
	Concurrency  int           `yaml:"concurrency"`

	// Noise and EndMarkers extend the built-in lists.
	Noise      []string `yaml:"noise"`
	EndMarkers []string `yaml:"end_markers"`
}

// DefaultConfig returns the configuration used without a config file.
func DefaultConfig() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// LoadConfig reads the configuration at path. An empty path returns the
// defaults. Unknown keys are rejected.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, newsdesk.Errorf(newsdesk.ENOTFOUND, "config file %s not found", path)
	} else if err != nil {
		return nil, err
	}

	return ParseConfig(data)
}

// ParseConfig decodes YAML data and fills unset values with defaults.
func ParseConfig(data []byte) (*Config, error) {
	var c Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, newsdesk.WrapError(newsdesk.EINVALID, err, "invalid config: %v", err)
	}

	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate returns EINVALID for settings the importer cannot use.
func (c *Config) Validate() error {
	if !strings.HasPrefix(c.ReaderURL, "http://") && !strings.HasPrefix(c.ReaderURL, "https://") {
		return newsdesk.Errorf(newsdesk.EINVALID, "reader_url must be an http(s) URL")
	}
	if c.ImageTimeout < 0 {
		return newsdesk.Errorf(newsdesk.EINVALID, "image_timeout must not be negative")
	}
	if c.Rate < 0 {
		return newsdesk.Errorf(newsdesk.EINVALID, "rate must not be negative")
	}
	if c.Concurrency < 0 {
		return newsdesk.Errorf(newsdesk.EINVALID, "concurrency must not be negative")
	}
	return nil
}

// NoisePatterns returns the default patterns extended with the configured ones.
func (c *Config) NoisePatterns() newsdesk.NoisePatterns {
	return newsdesk.DefaultNoisePatterns().With(c.Noise...)
}

// AllEndMarkers returns the built-in end markers followed by the configured ones.
func (c *Config) AllEndMarkers() []string {
	markers := importer.DefaultEndMarkers()
	for _, m := range c.EndMarkers {
		if m = strings.TrimSpace(m); m != "" {
			markers = append(markers, m)
		}
	}
	return markers
}

func (c *Config) applyDefaults() {
	if c.ReaderURL == "" {
		c.ReaderURL = importer.DefaultReaderURL
	}
	if c.Mirrors == nil {
		c.Mirrors = goquery.DefaultMirrors()
	}
	if c.Placeholder == "" {
		c.Placeholder = importer.DefaultPlaceholder
	}
	if c.ImageTimeout == 0 {
		c.ImageTimeout = importer.DefaultImageTimeout
	}
	if c.Rate == 0 {
		c.Rate = DefaultRate
	}
	if c.Concurrency == 0 {
		c.Concurrency = DefaultConcurrency
	}
}
