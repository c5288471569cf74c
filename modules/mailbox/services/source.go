package services

import (
	"context"
	"iter"

	"github.com/pkg/errors"
)

var (
	// ErrSheetNotFound is returned by a RowSource asked for a sheet the workbook lacks.
	ErrSheetNotFound = errors.New("sheet not found")
	// ErrCellNotText marks a required cell that is absent or does not hold text.
	ErrCellNotText = errors.New("cell is absent or not text")
)

// CellKind classifies a cell as seen by a RowSource.
type CellKind int

const (
	// CellAbsent is a cell the row does not define.
	CellAbsent CellKind = iota
	// CellText is a string cell. Blank cells are text with an empty value.
	CellText
	// CellNotText is a defined cell holding a number, boolean, date or error.
	CellNotText
)

// Row gives index access to the cells of one sheet row.
type Row interface {
	// Number is the 1-based row number within the sheet.
	Number() int
	// Cell returns the untrimmed value of the cell at col (0-based) and its
	// kind. The value is empty unless the kind is CellText.
	Cell(col int) (string, CellKind)
}

// RowSource yields the defined rows of a named sheet in order, header row
// included. Rows missing from the sheet are skipped.
// A missing sheet is reported as the first (and only) element, wrapping
// ErrSheetNotFound.
type RowSource interface {
	Rows(sheet string) iter.Seq2[Row, error]
}

// Sink persists rendered statements in order.
type Sink interface {
	Write(ctx context.Context, statements []string) error
}
