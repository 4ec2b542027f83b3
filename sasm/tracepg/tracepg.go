// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tracepg adapts sasm.TraceSink to a PostgreSQL execution log,
// recording every opcode a Processor executes for offline replay or audit.
package tracepg

import (
	"fmt"
	"log"

	"github.com/jackc/pgx"

	"github.com/mosfetlang/sand/sasm"
)

// Sink writes one row per traced instruction into an execution_trace
// table, committing every CommitEvery rows.
type Sink struct {
	pool   *pgx.ConnPool
	tx     *pgx.Tx
	runNum int
	opNum  int

	// CommitEvery controls how many rows accumulate before the underlying
	// transaction is committed and a new one started. Zero disables
	// periodic commits (the caller must Close to flush).
	CommitEvery int
}

// NewSink opens a transaction against pool and tags every row with runNum,
// an identifier distinguishing one VM run's trace from another's.
func NewSink(pool *pgx.ConnPool, runNum int) (*Sink, error) {
	tx, err := pool.Begin()
	if err != nil {
		return nil, err
	}
	return &Sink{pool: pool, tx: tx, runNum: runNum, CommitEvery: 10000}, nil
}

// Trace implements sasm.TraceSink.
func (s *Sink) Trace(entry sasm.TraceEntry) {
	s.opNum++

	const dbQuery = `
		INSERT INTO execution_trace (op_num, run_num, op_code, op_name, program_counter, stack_start, stack_finish)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	commandTag, err := s.tx.Exec(dbQuery,
		s.opNum, s.runNum, entry.OpCode, entry.OpName,
		entry.ProgramCounter, entry.StackStart, entry.StackFinish)
	if err != nil {
		log.Print(err)
		return
	}
	if numRows := commandTag.RowsAffected(); numRows != 1 {
		log.Printf("Wrong number of rows (%v) affected when logging operation: %v\n", numRows, entry.OpName)
	}

	if s.CommitEvery > 0 && s.opNum%s.CommitEvery == 0 {
		if err := s.tx.Commit(); err != nil {
			log.Printf("tracepg: commit failed: %v", err)
			return
		}
		s.tx, err = s.pool.Begin()
		if err != nil {
			log.Printf("tracepg: failed to begin next transaction: %v", err)
		}
	}
}

// Close commits the sink's open transaction. Callers must invoke it after
// the VM run finishes, or any rows since the last periodic commit are lost.
func (s *Sink) Close() error {
	return s.tx.Commit()
}

func (s *Sink) String() string {
	return fmt.Sprintf("tracepg.Sink{runNum: %d, opNum: %d}", s.runNum, s.opNum)
}

// Option returns a sasm.ProcessorOption that installs s as the Processor's
// trace destination.
func (s *Sink) Option() sasm.ProcessorOption {
	return sasm.WithTraceSink(s)
}
