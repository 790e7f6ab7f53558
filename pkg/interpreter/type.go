package interpreter

import (
	"errors"
	"fmt"
)

// Layout of the export timestamps, e.g. "01.01.2025 00:05".
const TimestampLayout = "02.01.2006 15:04"

// The export starts with a column header line and a unit/format line.
const skippedHeaderLines = 2

var (
	ErrInvalidTimestamp = errors.New("invalid timestamp")
	ErrInvalidEnergy    = errors.New("invalid energy value")
)

// RowError reports a row that could not be interpreted.
// Line is the 1-based line number in the source file.
type RowError struct {
	Line int
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}
