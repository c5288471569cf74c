package services

import (
	"fmt"
	"iter"
	"strings"

	"github.com/pkg/errors"

	"github.com/ministryofjustice/fmb-sql/modules/mailbox/domain"
)

// ExtractError points at the sheet cell that stopped extraction.
type ExtractError struct {
	Sheet  string
	Row    int
	Column int
	Err    error
}

func (e *ExtractError) Error() string {
	return fmt.Sprintf("sheet %q row %d column %d: %v", e.Sheet, e.Row, e.Column, e.Err)
}

func (e *ExtractError) Unwrap() error {
	return e.Err
}

// Extract reads mailbox rows from every sheet in layout order. Each sheet's
// header row is skipped and reading stops at the first row whose end marker
// cell is absent or empty. The marker is not trimmed, so a blank-looking
// marker of spaces keeps the row. A marker or required cell that is not text
// is an *ExtractError. The sequence is lazy and ends after the first error it
// yields.
func Extract(src RowSource, layout Layout) iter.Seq2[domain.MailboxSpec, error] {
	return func(yield func(domain.MailboxSpec, error) bool) {
		for _, sheet := range layout.Sheets {
			if !extractSheet(src, sheet, layout.Columns, yield) {
				return
			}
		}
	}
}

// extractSheet returns false when the consumer stopped or an error was yielded.
func extractSheet(src RowSource, sheet string, cols Columns, yield func(domain.MailboxSpec, error) bool) bool {
	header := true
	for row, err := range src.Rows(sheet) {
		if err != nil {
			yield(domain.MailboxSpec{}, errors.Wrapf(err, "sheet %q", sheet))
			return false
		}
		if header {
			header = false
			continue
		}
		marker, kind := row.Cell(cols.EndMarker)
		switch {
		case kind == CellNotText:
			yield(domain.MailboxSpec{}, &ExtractError{Sheet: sheet, Row: row.Number(), Column: cols.EndMarker, Err: ErrCellNotText})
			return false
		case kind == CellAbsent || marker == "":
			return true
		}
		spec, err := toMailboxSpec(sheet, row, cols)
		if err != nil {
			yield(domain.MailboxSpec{}, err)
			return false
		}
		if !yield(spec, nil) {
			return false
		}
	}
	return true
}

func toMailboxSpec(sheet string, row Row, cols Columns) (domain.MailboxSpec, error) {
	var values [4]string
	for i, col := range []int{cols.ProbationAreaCode, cols.LocalDeliveryUnitCode, cols.TeamCode, cols.FunctionalMailbox} {
		v, kind := row.Cell(col)
		if kind != CellText {
			return domain.MailboxSpec{}, &ExtractError{Sheet: sheet, Row: row.Number(), Column: col, Err: ErrCellNotText}
		}
		values[i] = strings.TrimSpace(v)
	}
	return domain.MailboxSpec{
		ProbationAreaCode:     values[0],
		LocalDeliveryUnitCode: values[1],
		TeamCode:              values[2],
		FunctionalMailbox:     values[3],
	}, nil
}
