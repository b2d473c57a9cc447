// Package cmdline defines the command-line surface: flags, config loading
// and flag overrides. It hands the resolved config to a RunFunc.
package cmdline

import (
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/soocke/signdetect-go/config"
	"github.com/soocke/signdetect-go/domain/detection"
)

const (
	flagConfig  = "config"
	flagDebug   = "debug"
	flagDelay   = "delay"
	flagMode    = "mode"
	flagLogFile = "log-file"
	flagDark    = "dark"
)

// RunFunc starts the application. loadErr carries repairable config problems
// the caller should report once logging is set up.
type RunFunc func(cfg *config.Config, cfgPath string, loadErr error) error

// New returns the CLI application.
func New(run RunFunc, out io.Writer) *cli.App {
	return &cli.App{
		Name:   "signdetect",
		Usage:  "sign language detection demo with a simulated camera",
		Writer: out,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: flagConfig, Aliases: []string{"c"}, Value: "signdetect.json", Usage: "JSON config `FILE`"},
			&cli.BoolFlag{Name: flagDebug, Usage: "debug logging and runtime stats"},
			&cli.DurationFlag{Name: flagDelay, Usage: "override the detection delay"},
			&cli.StringFlag{Name: flagMode, Usage: `initial processing mode ("Camera Only", "Glove Only", "Combined")`},
			&cli.StringFlag{Name: flagLogFile, Usage: "also write JSON logs to a rotating `FILE`"},
			&cli.BoolFlag{Name: flagDark, Usage: "dark colour theme"},
		},
		Action: func(c *cli.Context) error {
			cfgPath := c.String(flagConfig)
			cfg, loadErr := config.Load(cfgPath)
			if err := applyFlags(c, cfg); err != nil {
				return err
			}
			return run(cfg, cfgPath, loadErr)
		},
	}
}

// applyFlags layers explicitly set flags over the loaded config.
func applyFlags(c *cli.Context, cfg *config.Config) error {
	if c.IsSet(flagDebug) {
		cfg.Debug = c.Bool(flagDebug)
	}
	if c.IsSet(flagDark) {
		cfg.DarkMode = c.Bool(flagDark)
	}
	if c.IsSet(flagLogFile) {
		cfg.LogFile = c.String(flagLogFile)
	}
	if c.IsSet(flagDelay) {
		d := c.Duration(flagDelay)
		if d < time.Millisecond {
			return errors.Errorf("--%s must be at least 1ms, got %s", flagDelay, d)
		}
		cfg.DetectionDelayMs = int(d.Milliseconds())
	}
	if c.IsSet(flagMode) {
		m, err := detection.ParseMode(c.String(flagMode))
		if err != nil {
			return errors.Wrapf(err, "--%s %q", flagMode, c.String(flagMode))
		}
		cfg.DefaultMode = m.String()
	}
	return nil
}
