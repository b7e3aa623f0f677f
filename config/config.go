// Copyright 2017-2018 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package config

import (
	"path/filepath"
	"time"

	"github.com/btcsuite/btcutil"
)

const (
	DefaultLogDirname  = "logs"
	DefaultLogFilename = "btk.log"
	DefaultDebugLevel  = "info"
	DefaultTimeout     = 10 * time.Second
)

var (
	DefaultHomeDir = btcutil.AppDataDir("btk", false)
	DefaultLogDir  = filepath.Join(DefaultHomeDir, DefaultLogDirname)
)

// Config holds the options shared by every btk command.
type Config struct {
	HomeDir       string        `short:"A" long:"appdata" description:"Path to application home directory"`
	ShowVersion   bool          `short:"V" long:"version" description:"Display version information and exit"`
	LogDir        string        `long:"logdir" description:"Directory to log output."`
	NoFileLogging bool          `long:"nofilelogging" description:"Disable file logging."`
	DebugLevel    string        `long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, crit}"`
	Timeout       time.Duration `long:"timeout" description:"Timeout of node connections, valid time units are {s, m, h}"`
	Metrics       bool          `long:"metrics" description:"Print node traffic counters to stderr after each command"`
}

// Default returns the configuration used when no option is given.
func Default() *Config {
	return &Config{
		HomeDir:       DefaultHomeDir,
		LogDir:        DefaultLogDir,
		NoFileLogging: true,
		DebugLevel:    DefaultDebugLevel,
		Timeout:       DefaultTimeout,
	}
}

// LogFile returns the path of the rotated log file.
func (c *Config) LogFile() string {
	return filepath.Join(c.LogDir, DefaultLogFilename)
}
