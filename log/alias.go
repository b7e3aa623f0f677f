/*
 * Copyright (c) 2017-2020 The qitmeer developers
 */

// Package log is the btk logger: the go-ethereum structured logger behind a
// glog style verbosity handler, writing to stderr and an optional rotated
// file.
package log

import (
	"github.com/ethereum/go-ethereum/log"
)

type (
	Logger      = log.Logger
	Ctx         = log.Ctx
	Lvl         = log.Lvl
	Handler     = log.Handler
	Format      = log.Format
	Record      = log.Record
	GlogHandler = log.GlogHandler
)

const (
	LvlCrit  = log.LvlCrit
	LvlError = log.LvlError
	LvlWarn  = log.LvlWarn
	LvlInfo  = log.LvlInfo
	LvlDebug = log.LvlDebug
	LvlTrace = log.LvlTrace
)

var (
	New            = log.New
	Root           = log.Root
	NewGlogHandler = log.NewGlogHandler
	StreamHandler  = log.StreamHandler
	TerminalFormat = log.TerminalFormat
	LogfmtFormat   = log.LogfmtFormat
	FuncHandler    = log.FuncHandler
	LvlFromString  = log.LvlFromString

	Trace = log.Trace
	Debug = log.Debug
	Info  = log.Info
	Warn  = log.Warn
	Error = log.Error
	Crit  = log.Crit
)
