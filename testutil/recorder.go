package testutil

import (
	"fmt"

	"github.com/tychodb/tycho/types"
)

// Recorder is a types.Executor that records the statements it is
// asked to execute; it is intended for use by testing.
type Recorder struct {
	dialect types.Dialect
	stmts   []string
	fail    error
}

func NewRecorder(d types.Dialect) *Recorder {
	return &Recorder{dialect: d}
}

func (rec *Recorder) Dialect() types.Dialect {
	return rec.dialect
}

func (rec *Recorder) Execute(stmt string, args ...any) error {
	if rec.fail != nil {
		return rec.fail
	}
	if len(args) > 0 {
		stmt = fmt.Sprintf(stmt, args...)
	}
	rec.stmts = append(rec.stmts, stmt)
	return nil
}

func (rec *Recorder) Statements() []string {
	return rec.stmts
}

func (rec *Recorder) Reset() {
	rec.stmts = nil
}

// FailWith makes every subsequent Execute return err.
func (rec *Recorder) FailWith(err error) {
	rec.fail = err
}
