// SPDX-License-Identifier: MPL-2.0

package audit

import (
	"fmt"
	"sort"

	"varsweep/internal/document"
)

// SheetSource exposes spreadsheet aliases through the DataSource contract.
type SheetSource struct {
	doc document.Document
}

// NewSheetSource builds a sheet-alias data source over doc.
func NewSheetSource(doc document.Document) *SheetSource {
	return &SheetSource{doc: doc}
}

// SortedParents lists sheet names sorted for display. Sheets define no
// virtual group parents.
func (s *SheetSource) SortedParents(excludeClones bool) []string {
	return SheetNames(s.doc, excludeClones)
}

// ChildRefs lists the alias refs of the selected sheets, sorted by their
// canonical text.
func (s *SheetSource) ChildRefs(selectedParents []string) []ParentChildRef {
	var refs []ParentChildRef
	for _, sheet := range selectedParents {
		for _, alias := range AliasNames(s.doc, sheet) {
			refs = append(refs, ParentChildRef{Parent: sheet, Child: alias})
		}
	}
	sort.Slice(refs, func(i, j int) bool {
		return refs[i].String() < refs[j].String()
	})
	return refs
}

// ExpressionUsages returns the references to each selected alias and the
// per-alias reference counts. Malformed selection entries are skipped.
func (s *SheetSource) ExpressionUsages(selectedChildren []string) ([]ExpressionUsage, map[string]int) {
	var usages []ExpressionUsage
	counts := make(map[string]int)
	for _, text := range selectedChildren {
		ref, err := ParseRef(text)
		if err != nil {
			continue
		}
		found := AliasReferences(s.doc, ref.Parent, ref.Child)
		counts[text] = len(found)
		usages = append(usages, found...)
	}
	sort.Slice(usages, func(i, j int) bool {
		return usages[i].DisplayText() < usages[j].DisplayText()
	})
	return usages, counts
}

// ReferenceCounts returns the per-alias reference counts for the selection.
func (s *SheetSource) ReferenceCounts(selectedChildren []string) map[string]int {
	counts := make(map[string]int)
	for _, text := range selectedChildren {
		ref, err := ParseRef(text)
		if err != nil {
			continue
		}
		counts[text] = len(AliasReferences(s.doc, ref.Parent, ref.Child))
	}
	return counts
}

// RemoveUnusedChildren clears the selected aliases that have no references,
// re-checking each against the live document right before deletion. The
// document is recomputed once when anything was cleared.
func (s *SheetSource) RemoveUnusedChildren(selectedChildren []string) RemovalResult {
	result := RemovalResult{}
	for _, text := range selectedChildren {
		ref, err := ParseRef(text)
		if err != nil {
			result.Failed = append(result.Failed, RemovalFailure{Ref: text, Err: err})
			continue
		}
		if len(AliasReferences(s.doc, ref.Parent, ref.Child)) > 0 {
			result.StillUsed = append(result.StillUsed, text)
			continue
		}
		if err := s.doc.ClearAlias(ref.Parent, ref.Child); err != nil {
			result.Failed = append(result.Failed, RemovalFailure{
				Ref: text,
				Err: fmt.Errorf("clear alias %s: %w", text, err),
			})
			continue
		}
		result.Removed = append(result.Removed, text)
	}
	if len(result.Removed) > 0 {
		s.doc.Recompute()
	}
	return result
}
