// SPDX-License-Identifier: MPL-2.0

package audit

import "varsweep/internal/document"

// buildAuditDocument builds the shared fixture: two variable containers
// (one spanning two property groups), a part consuming them, two sheets
// with aliases (one enumerating its alias table cell-first), and a clone
// group holding cloned copies of a container and a sheet.
func buildAuditDocument() *document.Memory {
	doc := document.NewMemory()

	doc.MustAdd(document.ObjectSpec{
		Name: "BoltVars",
		Type: document.TypeVarSet,
		Properties: []document.PropertySpec{
			{Name: "Diameter", Group: "Base"},
			{Name: "Length", Group: "Size"},
			{Name: "Pitch", Group: "Size"},
			{Name: "Unused1", Group: "Base"},
			{Name: "Label"},
			{Name: "ExpressionEngine"},
		},
		Bindings: []document.Binding{
			{Target: ".Pitch", Expression: "Diameter * 0.5"},
		},
	})

	doc.MustAdd(document.ObjectSpec{
		Name: "PlateVars",
		Type: document.TypeVarSet,
		Properties: []document.PropertySpec{
			{Name: "Thickness"},
			{Name: "Unused2"},
		},
	})

	doc.MustAdd(document.ObjectSpec{
		Name: "Body",
		Type: "Part::Feature",
		Bindings: []document.Binding{
			{Target: ".Height", Expression: "BoltVars.Length * 2"},
			{Target: "Radius", Expression: "<<BoltVars>>.Diameter / 2"},
			{Target: "Width", Expression: "Specs.Depth + 1"},
		},
	})

	doc.MustAdd(document.ObjectSpec{
		Name:  "Sheet1",
		Label: "Specs",
		Type:  document.TypeSheet,
		Aliases: map[string]string{
			"Depth":  "B1",
			"Orphan": "B2",
		},
		Cells: map[string]string{
			"B1": "5",
			"C1": "=Depth * 2",
		},
		Bindings: []document.Binding{
			{Target: "B1", Expression: "'Depth"},
		},
	})

	doc.MustAdd(document.ObjectSpec{
		Name:             "Sheet2",
		Type:             document.TypeSheet,
		Aliases:          map[string]string{"Margin": "A2"},
		InvertAliasTable: true,
		Cells: map[string]string{
			"A3": "Specs.Depth + Margin",
		},
	})

	// Clone group with a relation cycle between the group and its link.
	doc.MustAdd(document.ObjectSpec{
		Name:    "CopyOnChangeGroup",
		Label:   "CopyOnChangeGroup",
		Type:    document.TypeGroup,
		Members: []string{"CloneLink"},
	})
	doc.MustAdd(document.ObjectSpec{
		Name:    "CloneLink",
		Type:    document.TypeGroup,
		Outputs: []string{"CopyOnChangeGroup", "BoltVars_ichg"},
	})
	doc.MustAdd(document.ObjectSpec{
		Name: "BoltVars_ichg",
		Type: document.TypeVarSet,
		Properties: []document.PropertySpec{
			{Name: "Diameter"},
		},
	})

	// Second clone group, found by label prefix instead of exact name.
	doc.MustAdd(document.ObjectSpec{
		Name:    "Group001",
		Label:   "CopyOnChangeGroup001",
		Type:    document.TypeGroup,
		Members: []string{"Specs_ichg"},
	})
	doc.MustAdd(document.ObjectSpec{
		Name: "Specs_ichg",
		Type: document.TypeSheet,
	})

	return doc
}
