// Copyright 2017-2018 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/Qitmeer/btk/btk"
	"github.com/Qitmeer/btk/config"
	"github.com/Qitmeer/btk/log"
	"github.com/jessevdk/go-flags"
)

const btkVersion = "0.1.0"

func main() {
	// Work around defer not working after os.Exit()
	if err := btkMain(os.Args[1:]); err != nil {
		btk.ErrExit(err)
	}
}

func btkMain(args []string) error {
	cfg := config.Default()
	parser := newParser(cfg)

	// Logging and validation run once the options are parsed and before
	// the selected command executes.
	parser.CommandHandler = func(command flags.Commander, args []string) error {
		if err := LoadConfig(cfg); err != nil {
			return err
		}
		log.Debug("System info", "btk version", btkVersion, "Go version", runtime.Version())
		if command == nil {
			return nil
		}
		return command.Execute(args)
	}

	defer func() {
		if log.LogWrite() != nil {
			log.LogWrite().Close()
		}
	}()

	// Show the version and exit if the version flag was specified.
	if preParse(cfg, args).ShowVersion {
		fmt.Fprintf(stdout, "btk version %s (Go version %s)\n", btkVersion, runtime.Version())
		return nil
	}

	_, err := parser.ParseArgs(args)
	if err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, err)
			return nil
		}
		return err
	}
	return nil
}
