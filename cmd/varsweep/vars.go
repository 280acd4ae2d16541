// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"varsweep/internal/audit"
	"varsweep/internal/document"

	"github.com/spf13/cobra"
)

// newVarsCommand creates the `varsweep vars` command tree over the
// variable-set data source.
func newVarsCommand(app *App) *cobra.Command {
	return newAuditCommandGroup(app, auditDomain{
		Use:    "vars",
		Parent: "variable set",
		Child:  "variable",
		NewSource: func(doc document.Document) audit.DataSource {
			return audit.NewVarSetSource(doc)
		},
	})
}
