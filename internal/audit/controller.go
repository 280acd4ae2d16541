// SPDX-License-Identifier: MPL-2.0

package audit

import (
	"sort"
	"strings"
)

type (
	// Controller is the domain-generic orchestration over one DataSource:
	// filtered parent/child listings, enable-state rules, and the
	// remove-unused batch with post-mutation view recomputation. It holds
	// no state beyond the injected source; every call reads the live
	// document through it.
	Controller struct {
		source DataSource
	}

	// RemovalUpdate is the combined outcome of a removal batch and the
	// recomputed view the caller should show afterwards.
	RemovalUpdate struct {
		Result RemovalResult
		// ChildItems is the filtered child list over the post-removal
		// document state.
		ChildItems []ParentChildRef
		// ClearExpressions is set when none of the previously selected
		// children remain in ChildItems, so a stale reference view should
		// be dropped.
		ClearExpressions bool
	}
)

// NewController builds a controller over one domain's data source.
func NewController(source DataSource) *Controller {
	return &Controller{source: source}
}

// Source exposes the underlying data source for callers that need raw
// listings without filtering.
func (c *Controller) Source() DataSource {
	return c.source
}

// FilteredParents returns the sorted parents whose own name matches the
// filter. For a virtual "Parent.Group" entry the parent's own name, not the
// group qualifier, is matched.
func (c *Controller) FilteredParents(filterText string, excludeClones bool) []string {
	parents := c.source.SortedParents(excludeClones)
	if NormalizePattern(filterText) == "" {
		return parents
	}
	var filtered []string
	for _, parent := range parents {
		name, _, _ := strings.Cut(parent, ".")
		if MatchesPattern(filterText, name) {
			filtered = append(filtered, parent)
		}
	}
	return filtered
}

// FilteredChildItems returns the child refs of the selected parents whose
// leaf name matches the filter, optionally restricted to children with a
// zero reference count.
func (c *Controller) FilteredChildItems(selectedParents []string, filterText string, onlyUnused bool) []ParentChildRef {
	refs := c.source.ChildRefs(selectedParents)

	var counts map[string]int
	if onlyUnused {
		counts = c.source.ReferenceCounts(refTexts(refs))
	}

	var filtered []ParentChildRef
	for _, ref := range refs {
		if !MatchesPattern(filterText, ref.Child) {
			continue
		}
		if onlyUnused && counts[ref.String()] != 0 {
			continue
		}
		filtered = append(filtered, ref)
	}
	return filtered
}

// ShouldEnableRemoveUnused reports whether the remove-unused action is
// available: the view must show only unused children and something must be
// selected.
func (c *Controller) ShouldEnableRemoveUnused(onlyUnused, hasChildSelection bool) bool {
	return onlyUnused && hasChildSelection
}

// ShouldEnableCopy reports whether the copy action is available: the list
// must have focus and something must be selected.
func (c *Controller) ShouldEnableCopy(listHasFocus, hasSelection bool) bool {
	return listHasFocus && hasSelection
}

// RemoveUnusedAndUpdate removes the unused children among the selection and
// recomputes the filtered child view over the post-removal state. The
// parent selection for the recomputed view is derived from the distinct
// parents of the selected children, restricted to parents still listed
// under the given clone-exclusion setting.
func (c *Controller) RemoveUnusedAndUpdate(selectedChildren []string, filterText string, onlyUnused, excludeClones bool) RemovalUpdate {
	result := c.source.RemoveUnusedChildren(selectedChildren)

	parents := c.parentsOf(selectedChildren, excludeClones)
	items := c.FilteredChildItems(parents, filterText, onlyUnused)

	remaining := make(map[string]bool, len(items))
	for _, item := range items {
		remaining[item.String()] = true
	}
	clear := true
	for _, text := range selectedChildren {
		if remaining[text] {
			clear = false
			break
		}
	}

	return RemovalUpdate{
		Result:           result,
		ChildItems:       items,
		ClearExpressions: clear,
	}
}

// parentsOf derives the distinct, sorted parent names of a child selection,
// keeping only parents the source still lists.
func (c *Controller) parentsOf(selectedChildren []string, excludeClones bool) []string {
	listed := make(map[string]bool)
	for _, parent := range c.source.SortedParents(excludeClones) {
		listed[parent] = true
	}

	seen := make(map[string]bool)
	var parents []string
	for _, text := range selectedChildren {
		ref, err := ParseRef(text)
		if err != nil || seen[ref.Parent] || !listed[ref.Parent] {
			continue
		}
		seen[ref.Parent] = true
		parents = append(parents, ref.Parent)
	}
	sort.Strings(parents)
	return parents
}
