// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"varsweep/internal/audit"
	"varsweep/internal/document"

	"github.com/spf13/cobra"
)

// newAliasesCommand creates the `varsweep aliases` command tree over the
// spreadsheet data source.
func newAliasesCommand(app *App) *cobra.Command {
	return newAuditCommandGroup(app, auditDomain{
		Use:    "aliases",
		Parent: "sheet",
		Child:  "alias",
		NewSource: func(doc document.Document) audit.DataSource {
			return audit.NewSheetSource(doc)
		},
	})
}
