// Copyright (c) 2017-2019 The Qitmeer developers
//
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// The parts code inspired & originated from
// https://github.com/ethereum/go-ethereum/metrics

// Package metrics provides the counters btk keeps about node traffic.
package metrics

import (
	"io"
	"sync/atomic"

	"github.com/rcrowley/go-metrics"
)

var enabled int32

// Enabled reports whether metrics are collected.
func Enabled() bool {
	return atomic.LoadInt32(&enabled) == 1
}

// SetEnabled enables or disables collection.  Metrics created while disabled
// are NOP stubs.
func SetEnabled(on bool) {
	var v int32
	if on {
		v = 1
	}
	atomic.StoreInt32(&enabled, v)
}

// NewCounter create a new metrics Counter, either a real one of a NOP stub depending
// on the metrics flag.
func NewCounter(name string) metrics.Counter {
	if !Enabled() {
		return new(metrics.NilCounter)
	}
	return metrics.GetOrRegisterCounter(name, metrics.DefaultRegistry)
}

// Count returns the value of the named counter, zero when it does not exist.
func Count(name string) int64 {
	if c, ok := metrics.DefaultRegistry.Get(name).(metrics.Counter); ok {
		return c.Count()
	}
	return 0
}

// WriteTo writes every registered metric to w, sorted by name.
func WriteTo(w io.Writer) {
	metrics.WriteOnce(metrics.DefaultRegistry, w)
}
