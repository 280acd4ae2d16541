// SPDX-License-Identifier: MPL-2.0

package audit

type (
	// RemovalFailure is one selection item that could not be removed,
	// with the underlying cause.
	RemovalFailure struct {
		Ref string
		Err error
	}

	// RemovalResult is the outcome of a best-effort removal batch. The
	// three lists partition the requested selection: successfully deleted,
	// skipped because still referenced at removal time, and failed.
	RemovalResult struct {
		Removed   []string
		StillUsed []string
		Failed    []RemovalFailure
	}

	// DataSource is the uniform read/mutate contract one domain exposes to
	// the generic Controller. VarSetSource and SheetSource implement it.
	//
	// Selected children are given in their canonical "Parent.Child" text
	// form; malformed entries are tolerated by the query operations and
	// classified as failures by RemoveUnusedChildren.
	DataSource interface {
		// SortedParents lists parent names sorted for display, including
		// any virtual group parents the domain defines.
		SortedParents(excludeClones bool) []string
		// ChildRefs lists all child refs of the selected parents.
		ChildRefs(selectedParents []string) []ParentChildRef
		// ExpressionUsages returns the discovered references for the
		// selection plus per-child reference counts.
		ExpressionUsages(selectedChildren []string) ([]ExpressionUsage, map[string]int)
		// ReferenceCounts returns only the per-child reference counts.
		ReferenceCounts(selectedChildren []string) map[string]int
		// RemoveUnusedChildren deletes the selected children that have no
		// references, classifying every item independently. One item's
		// failure never aborts the rest.
		RemoveUnusedChildren(selectedChildren []string) RemovalResult
	}
)

// Len returns the number of classified items.
func (r RemovalResult) Len() int {
	return len(r.Removed) + len(r.StillUsed) + len(r.Failed)
}
