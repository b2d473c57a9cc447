package config

import (
	"encoding/json"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/multierr"
)

// DefaultLabels is the vocabulary the simulated detector draws from.
var DefaultLabels = []string{"Hello", "Thank You", "Please", "Good Morning", "How are you?"}

// Config holds runtime configuration for the detection session and the UI.
// Fields may be loaded from a JSON file and overridden by command-line flags.
type Config struct {
	Debug    bool   `json:"debug"`
	LogFile  string `json:"log_file"`
	DarkMode bool   `json:"dark_mode"`

	// Detection parameters
	DetectionDelayMs int      `json:"detection_delay_ms"`
	MinConfidence    float64  `json:"min_confidence"`
	MaxConfidence    float64  `json:"max_confidence"`
	Labels           []string `json:"labels"`
	DefaultMode      string   `json:"default_mode"`

	// Preview
	PreviewFPS    int `json:"preview_fps"`
	PreviewWidth  int `json:"preview_width"`
	PreviewHeight int `json:"preview_height"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:            false,
		DetectionDelayMs: 2000,
		MinConfidence:    0.70,
		MaxConfidence:    0.95,
		Labels:           append([]string(nil), DefaultLabels...),
		DefaultMode:      "Combined",
		PreviewFPS:       10,
		PreviewWidth:     400,
		PreviewHeight:    225,
	}
}

// DetectionDelay returns the configured delay as a duration.
func (c *Config) DetectionDelay() time.Duration {
	return time.Duration(c.DetectionDelayMs) * time.Millisecond
}

// Validate clamps/normalizes values to safe ranges. Problems that cannot be
// repaired in place are reset to defaults and reported in the returned error.
func (c *Config) Validate() error {
	var errs error
	if c.DetectionDelayMs <= 0 {
		c.DetectionDelayMs = 2000
	}
	// Written as negated ranges so NaN is rejected too.
	if !(c.MinConfidence >= 0 && c.MinConfidence < 1) {
		c.MinConfidence = 0.70
	}
	if !(c.MaxConfidence > c.MinConfidence && c.MaxConfidence <= 1) {
		c.MaxConfidence = 0.95
		if c.MaxConfidence <= c.MinConfidence {
			c.MaxConfidence = min(c.MinConfidence+0.25, 1)
		}
	}
	labels := lo.Uniq(lo.Compact(lo.Map(c.Labels, func(s string, _ int) string {
		return strings.TrimSpace(s)
	})))
	if len(labels) == 0 {
		errs = multierr.Append(errs, errors.New("label set is empty, using defaults"))
		labels = append([]string(nil), DefaultLabels...)
	}
	c.Labels = labels
	c.DefaultMode = strings.TrimSpace(c.DefaultMode)
	if c.DefaultMode == "" {
		c.DefaultMode = "Combined"
	}
	if c.PreviewFPS <= 0 {
		c.PreviewFPS = 10
	}
	if c.PreviewWidth < 50 {
		c.PreviewWidth = 400
	}
	if c.PreviewHeight < 50 {
		c.PreviewHeight = 225
	}
	return errs
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
// A validation error is returned alongside the repaired config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, "open config %q", path)
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return DefaultConfig(), errors.Wrapf(err, "decode config %q", path)
	}
	return cfg, cfg.Validate()
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create config %q", path)
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
