package main

import (
	"errors"

	"github.com/ministryofjustice/fmb-sql/modules/mailbox/services"
)

const (
	exitOK         = 0
	exitFailure    = 1
	exitValidation = 2
	exitUsage      = 3
	exitWrite      = 4
)

// usageError marks bad arguments or configuration.
type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func usage(err error) error {
	if err == nil {
		return nil
	}
	return usageError{err: err}
}

// exitCode maps a run error to the process status. Pipeline failures carry
// their stage: a failed write is exitWrite, anything earlier means the
// workbook could not be turned into SQL.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var ue usageError
	if errors.As(err, &ue) {
		return exitUsage
	}
	var se *services.StageError
	if errors.As(err, &se) {
		if se.Stage == services.StageWrite {
			return exitWrite
		}
		return exitValidation
	}
	return exitFailure
}
