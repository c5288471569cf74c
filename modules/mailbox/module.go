// Package mailbox generates the LDU and probation team seed SQL from the
// confirmed functional mailbox workbook.
package mailbox

import (
	_ "embed"

	"github.com/ministryofjustice/fmb-sql/modules/mailbox/services"
)

//go:embed workbook.yaml
var workbookLayout []byte

// Layout returns the built-in workbook layout.
func Layout() (services.Layout, error) {
	return services.ParseLayout(workbookLayout)
}
