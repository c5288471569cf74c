package services

import (
	"iter"
	"strings"

	"github.com/pkg/errors"
)

// memorySource serves sheets from string slices. A nil cell is absent and a
// cell starting with "#" is a non-text value.
type memorySource struct {
	sheets map[string][][]*string
	opened []string
	closed []string
}

func cell(s string) *string { return &s }

func textRow(cells ...string) []*string {
	out := make([]*string, len(cells))
	for i := range cells {
		out[i] = cell(cells[i])
	}
	return out
}

func (m *memorySource) Rows(sheet string) iter.Seq2[Row, error] {
	return func(yield func(Row, error) bool) {
		rows, ok := m.sheets[sheet]
		if !ok {
			yield(nil, errors.Wrapf(ErrSheetNotFound, "%q", sheet))
			return
		}
		m.opened = append(m.opened, sheet)
		defer func() { m.closed = append(m.closed, sheet) }()
		for i, cells := range rows {
			if !yield(memoryRow{number: i + 1, cells: cells}, nil) {
				return
			}
		}
	}
}

type memoryRow struct {
	number int
	cells  []*string
}

func (r memoryRow) Number() int { return r.number }

func (r memoryRow) Cell(col int) (string, CellKind) {
	if col < 0 || col >= len(r.cells) || r.cells[col] == nil {
		return "", CellAbsent
	}
	v := *r.cells[col]
	if strings.HasPrefix(v, "#") {
		return "", CellNotText
	}
	return v, CellText
}
