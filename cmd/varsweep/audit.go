// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"strings"

	"varsweep/internal/audit"
	"varsweep/internal/document"
	"varsweep/internal/issue"
	"varsweep/internal/report"
	"varsweep/pkg/types"

	"github.com/spf13/cobra"
)

// auditDomain describes one audited domain (variables or aliases) for the
// shared command tree. Both domains expose the same verbs over different
// data sources.
type auditDomain struct {
	// Use is the command group name, e.g. "vars".
	Use string
	// Parent and Child name the domain's entities in help text.
	Parent, Child string
	// NewSource builds the domain's data source over a loaded document.
	NewSource func(document.Document) audit.DataSource
}

// newAuditCommandGroup builds the four shared verbs (list, children, refs,
// prune) for one audit domain.
func newAuditCommandGroup(app *App, domain auditDomain) *cobra.Command {
	group := &cobra.Command{
		Use:   domain.Use,
		Short: fmt.Sprintf("Audit %ss and their %s references", domain.Parent, domain.Child),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	group.AddCommand(newListCommand(app, domain))
	group.AddCommand(newChildrenCommand(app, domain))
	group.AddCommand(newRefsCommand(app, domain))
	group.AddCommand(newPruneCommand(app, domain))

	return group
}

// controllerFor loads the document and wraps the domain's source in a
// controller.
func controllerFor(cmd *cobra.Command, app *App, domain auditDomain) (*audit.Controller, error) {
	doc, err := app.loadDocument(cmd.Context())
	if err != nil {
		return nil, err
	}
	return audit.NewController(domain.NewSource(doc)), nil
}

func newListCommand(app *App, domain auditDomain) *cobra.Command {
	var filter string
	var excludeClones, includeClones bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("List %ss", domain.Parent),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := controllerFor(cmd, app, domain)
			if err != nil {
				return err
			}

			exclude := app.excludeClonesSetting(cmd.Context(),
				cmd.Flags().Changed("exclude-clones") && excludeClones,
				cmd.Flags().Changed("include-clones") && includeClones)

			parents := ctrl.FilteredParents(filter, exclude)
			if len(parents) == 0 {
				fmt.Println(SubtitleStyle.Render(fmt.Sprintf("No %ss found", domain.Parent)))
				return nil
			}
			for _, parent := range parents {
				fmt.Println(RefStyle.Render(parent))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "glob pattern to filter by name")
	cmd.Flags().BoolVar(&excludeClones, "exclude-clones", false, "hide copy-on-change clones")
	cmd.Flags().BoolVar(&includeClones, "include-clones", false, "show copy-on-change clones")
	cmd.MarkFlagsMutuallyExclusive("exclude-clones", "include-clones")

	return cmd
}

func newChildrenCommand(app *App, domain auditDomain) *cobra.Command {
	var filter string
	var onlyUnused bool

	cmd := &cobra.Command{
		Use:   "children PARENT...",
		Short: fmt.Sprintf("List the %ss of the given %ss with reference counts", domain.Child, domain.Parent),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := controllerFor(cmd, app, domain)
			if err != nil {
				return err
			}

			items := ctrl.FilteredChildItems(args, filter, onlyUnused)
			if len(items) == 0 {
				fmt.Println(SubtitleStyle.Render(fmt.Sprintf("No %ss found", domain.Child)))
				return nil
			}

			counts := ctrl.Source().ReferenceCounts(refStrings(items))
			for _, item := range items {
				text := item.String()
				count := counts[text]
				style := SuccessStyle
				if count == 0 {
					style = WarningStyle
				}
				fmt.Printf("%s %s\n", RefStyle.Render(text), style.Render(fmt.Sprintf("(%d refs)", count)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "glob pattern to filter by name")
	cmd.Flags().BoolVar(&onlyUnused, "only-unused", false, fmt.Sprintf("show only %ss with no references", domain.Child))

	return cmd
}

func newRefsCommand(app *App, domain auditDomain) *cobra.Command {
	return &cobra.Command{
		Use:   "refs PARENT.CHILD...",
		Short: fmt.Sprintf("Show every reference to the given %ss", domain.Child),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := controllerFor(cmd, app, domain)
			if err != nil {
				return err
			}

			usages, counts := ctrl.Source().ExpressionUsages(args)
			for _, arg := range args {
				count := counts[arg]
				if count == 0 {
					fmt.Printf("%s %s\n", RefStyle.Render(arg), SubtitleStyle.Render("(unused)"))
				} else {
					fmt.Printf("%s %s\n", RefStyle.Render(arg), SuccessStyle.Render(fmt.Sprintf("(%d refs)", count)))
				}
			}
			for _, usage := range usages {
				fmt.Println("  " + usage.DisplayText())
			}
			return nil
		},
	}
}

func newPruneCommand(app *App, domain auditDomain) *cobra.Command {
	var showReport bool
	var excludeClones, includeClones bool

	cmd := &cobra.Command{
		Use:   "prune PARENT.CHILD...",
		Short: fmt.Sprintf("Remove the given %ss if nothing references them", domain.Child),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := controllerFor(cmd, app, domain)
			if err != nil {
				return err
			}

			// Gather usages before removal so the report can explain why
			// still-used items were kept.
			usages, _ := ctrl.Source().ExpressionUsages(args)

			exclude := app.excludeClonesSetting(cmd.Context(),
				cmd.Flags().Changed("exclude-clones") && excludeClones,
				cmd.Flags().Changed("include-clones") && includeClones)

			update := ctrl.RemoveUnusedAndUpdate(args, "", true, exclude)
			result := update.Result

			logger().Debug("removal batch finished",
				"removed", len(result.Removed),
				"stillUsed", len(result.StillUsed),
				"failed", len(result.Failed))

			if showReport {
				removal := report.Removal{
					Title:  capitalized(domain.Child),
					Update: update,
					Usages: usages,
				}
				rendered, renderErr := removal.Render(app.reportWidthSetting(cmd.Context()))
				if renderErr != nil {
					fmt.Print(removal.Markdown())
				} else {
					fmt.Print(rendered)
				}
			} else {
				printRemovalSummary(result)
			}

			if len(result.Failed) > 0 {
				if rendered, renderErr := issue.Get(issue.RemovalFailedId).Render("dark"); renderErr == nil {
					fmt.Fprint(os.Stderr, rendered)
				}
				return &ExitError{
					Code: types.ExitCode(1),
					Err:  fmt.Errorf("%d of %d items could not be removed", len(result.Failed), result.Len()),
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showReport, "report", false, "render a markdown removal report")
	cmd.Flags().BoolVar(&excludeClones, "exclude-clones", false, "hide copy-on-change clones")
	cmd.Flags().BoolVar(&includeClones, "include-clones", false, "show copy-on-change clones")
	cmd.MarkFlagsMutuallyExclusive("exclude-clones", "include-clones")

	return cmd
}

// printRemovalSummary prints the plain (non-report) removal outcome.
func printRemovalSummary(result audit.RemovalResult) {
	for _, ref := range result.Removed {
		fmt.Printf("%s %s\n", SuccessStyle.Render("removed"), RefStyle.Render(ref))
	}
	for _, ref := range result.StillUsed {
		fmt.Printf("%s %s\n", WarningStyle.Render("still used"), RefStyle.Render(ref))
	}
	for _, failure := range result.Failed {
		fmt.Printf("%s %s: %s\n", ErrorStyle.Render("failed"), RefStyle.Render(failure.Ref), failure.Err)
	}
}

// refStrings converts child refs to their canonical text form.
func refStrings(refs []audit.ParentChildRef) []string {
	texts := make([]string, len(refs))
	for i, ref := range refs {
		texts[i] = ref.String()
	}
	return texts
}

// capitalized upper-cases the first letter for report titles.
func capitalized(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
