// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sasm

// TraceEntry is a single executed-instruction record handed to a TraceSink.
// It carries just enough state to replay or audit a run offline.
type TraceEntry struct {
	OpCode         byte
	OpName         string
	ProgramCounter int
	StackStart     int
	StackFinish    int
}

// TraceSink receives one TraceEntry per instruction a Processor executes
// through Step, when tracing is enabled via SetTraceSink or WithTraceSink.
// The default is NoopTraceSink.
type TraceSink interface {
	Trace(entry TraceEntry)
}

// NoopTraceSink discards every entry.
type NoopTraceSink struct{}

func (NoopTraceSink) Trace(TraceEntry) {}
