package services

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLayout(t *testing.T) {
	l, err := ParseLayout([]byte(`
input: in.xlsx
output: out/fmb.sql
sheets: [One, Two]
columns:
  end_marker: 0
  probation_area_code: 1
  local_delivery_unit_code: 4
  team_code: 8
  functional_mailbox: 10
`))
	require.NoError(t, err)
	require.Equal(t, Layout{
		Input:   "in.xlsx",
		Output:  "out/fmb.sql",
		Sheets:  []string{"One", "Two"},
		Columns: testColumns,
	}, l)
}

func TestParseLayout_Invalid(t *testing.T) {
	tests := map[string]string{
		"unknown key":    "input: a\noutput: b\nsheets: [S]\nextra: 1\n",
		"no sheets":      "input: a\noutput: b\nsheets: []\n",
		"blank sheet":    "input: a\noutput: b\nsheets: ['']\n",
		"no output":      "input: a\nsheets: [S]\n",
		"negative index": "input: a\noutput: b\nsheets: [S]\ncolumns:\n  team_code: -1\n",
		"not yaml":       "input: [\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseLayout([]byte(doc))
			require.Error(t, err)
		})
	}
}
