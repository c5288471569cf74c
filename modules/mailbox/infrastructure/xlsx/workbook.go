// Package xlsx reads mailbox sheets from an .xlsx workbook.
package xlsx

import (
	"iter"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/ministryofjustice/fmb-sql/modules/mailbox/services"
)

// Workbook is an open .xlsx file. Close it when done.
type Workbook struct {
	file *excelize.File
	path string
}

func Open(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open workbook %s", path)
	}
	return &Workbook{file: f, path: path}, nil
}

func (w *Workbook) Close() error {
	if err := w.file.Close(); err != nil {
		return errors.Wrapf(err, "close workbook %s", w.path)
	}
	return nil
}

// Rows streams the rows of sheet, header first. Rows the sheet does not store
// are skipped, so data continues past gaps. A cell past the last stored cell
// of its row is absent.
func (w *Workbook) Rows(sheet string) iter.Seq2[services.Row, error] {
	return func(yield func(services.Row, error) bool) {
		idx, err := w.file.GetSheetIndex(sheet)
		if err != nil || idx < 0 {
			yield(nil, errors.Wrapf(services.ErrSheetNotFound, "%q in %s", sheet, w.path))
			return
		}
		rows, err := w.file.Rows(sheet)
		if err != nil {
			yield(nil, errors.Wrapf(err, "read sheet %q", sheet))
			return
		}
		defer func() { _ = rows.Close() }()

		for n := 1; rows.Next(); n++ {
			cells, err := rows.Columns()
			if err != nil {
				yield(nil, errors.Wrapf(err, "sheet %q row %d", sheet, n))
				return
			}
			if len(cells) == 0 {
				continue
			}
			if !yield(&row{file: w.file, sheet: sheet, number: n, cells: cells}, nil) {
				return
			}
		}
		if err := rows.Error(); err != nil {
			yield(nil, errors.Wrapf(err, "read sheet %q", sheet))
		}
	}
}

type row struct {
	file   *excelize.File
	sheet  string
	number int
	cells  []string
}

func (r *row) Number() int {
	return r.number
}

func (r *row) Cell(col int) (string, services.CellKind) {
	if col < 0 || col >= len(r.cells) {
		return "", services.CellAbsent
	}
	v := r.cells[col]
	if v == "" {
		return "", services.CellText
	}
	if !r.isText(col) {
		return "", services.CellNotText
	}
	return v, services.CellText
}

// isText reports whether the stored cell is a string. Cells without a type
// attribute are numbers in SpreadsheetML.
func (r *row) isText(col int) bool {
	name, err := excelize.CoordinatesToCellName(col+1, r.number)
	if err != nil {
		return false
	}
	typ, err := r.file.GetCellType(r.sheet, name)
	if err != nil {
		return false
	}
	switch typ {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula:
		return true
	default:
		return false
	}
}
