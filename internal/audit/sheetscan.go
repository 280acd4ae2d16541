// SPDX-License-Identifier: MPL-2.0

package audit

import (
	"sort"
	"strings"

	"varsweep/internal/document"
)

// SheetNames returns the sorted internal names of all sheet objects,
// optionally excluding clone-derived sheets.
func SheetNames(doc document.Document, excludeClones bool) []string {
	var clones map[string]bool
	if excludeClones {
		clones = CloneGroupNames(doc, document.TypeSheet)
	}

	var names []string
	for _, obj := range doc.Objects() {
		if obj.TypeID() != document.TypeSheet {
			continue
		}
		if excludeClones && clones[obj.Name()] {
			continue
		}
		names = append(names, obj.Name())
	}
	sort.Strings(names)
	return names
}

// AliasNames returns the sorted alias names defined on a sheet, read from
// the normalized alias table. An unknown sheet yields nil.
func AliasNames(doc document.Document, sheet string) []string {
	obj, ok := sheetObject(doc, sheet)
	if !ok {
		return nil
	}
	table := NormalizeAliasMap(obj.AliasTable())
	names := make([]string, 0, len(table))
	for alias := range table {
		names = append(names, alias)
	}
	sort.Strings(names)
	return names
}

// AliasCell resolves an alias to its cell coordinate.
func AliasCell(doc document.Document, sheet, alias string) (string, bool) {
	obj, ok := sheetObject(doc, sheet)
	if !ok {
		return "", false
	}
	cell, ok := NormalizeAliasMap(obj.AliasTable())[alias]
	return cell, ok
}

// AliasReferences finds every reference to a sheet alias: expression
// bindings anywhere in the document that use the alias qualified by the
// sheet's display label or internal name, plus raw cell formulas in any
// sheet that use the alias bare. Sheets can reference their own or another
// sheet's aliases directly in cell text without going through the
// document-wide expression table, so all sheets are scanned.
//
// The binding that defines the alias (owned by the sheet, right-hand side a
// quoted literal naming the alias) is flagged IsDefinition; it still counts
// as a usage. At most one usage is reported per "Object.Property" path,
// with expression bindings taking precedence over raw cell hits.
func AliasReferences(doc document.Document, sheet, alias string) []ExpressionUsage {
	obj, ok := sheetObject(doc, sheet)
	if !ok {
		return nil
	}
	display := sheetDisplayName(obj)
	bracketed := "<<" + display + ">>." + alias
	qualified := display + "." + alias

	byPath := make(map[string]ExpressionUsage)

	// Raw cell formulas first; expression-table entries overwrite them.
	for _, other := range doc.Objects() {
		cellSheet, ok := document.AsSheet(other)
		if !ok {
			continue
		}
		for _, cell := range cellSheet.UsedCells() {
			text := cellSheet.CellText(cell)
			if text == "" || !containsWord(text, alias) {
				continue
			}
			path := other.Name() + "." + cell
			byPath[path] = ExpressionUsage{
				Owner:      other.Name(),
				Property:   path,
				Expression: normalizeExpression(text),
			}
		}
	}

	for _, owner := range doc.Objects() {
		// The sheet's own bindings may use the alias bare, the way the
		// defining text literal does.
		internal := owner.Name() == sheet
		for _, binding := range owner.Bindings() {
			text := binding.Expression
			matched := containsQualified(text, bracketed) ||
				containsWord(text, qualified) ||
				(internal && containsWord(text, alias))
			if !matched {
				continue
			}
			path := expressionKey(owner.Name(), binding.Target)
			expr := normalizeExpression(text)
			byPath[path] = ExpressionUsage{
				Owner:        owner.Name(),
				Property:     path,
				Expression:   expr,
				IsDefinition: isAliasDefinition(owner.Name(), sheet, alias, expr),
			}
		}
	}
	return sortedUsages(byPath)
}

func sheetObject(doc document.Document, name string) (document.Sheet, bool) {
	obj, ok := doc.Object(name)
	if !ok {
		return nil, false
	}
	return document.AsSheet(obj)
}

// sheetDisplayName is the sheet's label when set, else its internal name.
// Reference patterns use the display form because that is what the host
// substitutes into expressions.
func sheetDisplayName(obj document.Object) string {
	if label := obj.Label(); label != "" {
		return label
	}
	return obj.Name()
}

// normalizeExpression trims expression text and strips a leading "=".
func normalizeExpression(text string) string {
	trimmed := strings.TrimSpace(text)
	if strings.HasPrefix(trimmed, "=") {
		trimmed = strings.TrimSpace(trimmed[1:])
	}
	return trimmed
}

// isAliasDefinition reports whether a normalized binding defines the alias:
// the sheet itself binds a quoted literal equal to the alias name.
func isAliasDefinition(owner, sheet, alias, expr string) bool {
	if owner != sheet {
		return false
	}
	if !strings.HasPrefix(expr, "'") {
		return false
	}
	return strings.TrimLeft(expr, "'") == alias
}
