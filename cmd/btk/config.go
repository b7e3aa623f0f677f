// Copyright 2017-2018 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/Qitmeer/btk/common/util"
	"github.com/Qitmeer/btk/config"
	"github.com/Qitmeer/btk/log"
	"github.com/Qitmeer/btk/metrics"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

// newParser builds the command line parser over cfg with every btk command
// registered.
func newParser(cfg *config.Config) *flags.Parser {
	parser := flags.NewParser(cfg, flags.HelpFlag|flags.PassDoubleDash)
	for _, c := range commands(cfg) {
		_, err := parser.AddCommand(c.name, c.short, c.long, c.data)
		if err != nil {
			panic("failed to register command " + c.name + ": " + err.Error())
		}
	}
	return parser
}

// preParse reads the global options alone so -V works without a command.
// Command options are unknown here and ignored; the full parse reports them.
func preParse(cfg *config.Config, args []string) *config.Config {
	preCfg := *cfg
	preParser := flags.NewParser(&preCfg, flags.IgnoreUnknown)
	// Errors aside from the version flag are caught by the final parse.
	_, _ = preParser.ParseArgs(args)
	return &preCfg
}

// LoadConfig validates the parsed options, applies the log level and opens
// the log file when file logging is enabled.
func LoadConfig(cfg *config.Config) error {
	if err := log.SetLevel(cfg.DebugLevel); err != nil {
		return err
	}
	if cfg.Timeout <= 0 {
		return errors.Errorf("invalid timeout %v", cfg.Timeout)
	}

	metrics.SetEnabled(cfg.Metrics)

	cfg.HomeDir = util.CleanAndExpandPath(cfg.HomeDir)
	cfg.LogDir = util.CleanAndExpandPath(cfg.LogDir)
	if cfg.NoFileLogging {
		return nil
	}
	if err := os.MkdirAll(cfg.LogDir, 0700); err != nil {
		return errors.Wrap(err, "failed to create log directory")
	}
	return log.InitLogRotator(cfg.LogFile())
}
