// SPDX-License-Identifier: MPL-2.0

package document

import (
	"errors"
	"reflect"
	"testing"
)

func TestMemoryAdd(t *testing.T) {
	doc := NewMemory()

	if err := doc.Add(ObjectSpec{Name: "Vars", Type: TypeVarSet}); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if err := doc.Add(ObjectSpec{Name: "Vars"}); err == nil {
		t.Error("expected an error for a duplicate name")
	}
	if err := doc.Add(ObjectSpec{}); err == nil {
		t.Error("expected an error for a missing name")
	}

	obj, ok := doc.Object("Vars")
	if !ok {
		t.Fatal("expected to find the added object")
	}
	if obj.TypeID() != TypeVarSet {
		t.Errorf("unexpected type %q", obj.TypeID())
	}
}

func TestMemoryObjectsKeepInsertionOrder(t *testing.T) {
	doc := NewMemory()
	doc.MustAdd(ObjectSpec{Name: "Zeta"})
	doc.MustAdd(ObjectSpec{Name: "Alpha"})
	doc.MustAdd(ObjectSpec{Name: "Mid"})

	var names []string
	for _, obj := range doc.Objects() {
		names = append(names, obj.Name())
	}
	if want := []string{"Zeta", "Alpha", "Mid"}; !reflect.DeepEqual(names, want) {
		t.Errorf("Objects order = %v, want %v", names, want)
	}
}

func TestMemoryRemoveProperty(t *testing.T) {
	doc := NewMemory()
	doc.MustAdd(ObjectSpec{
		Name: "Vars",
		Type: TypeVarSet,
		Properties: []PropertySpec{
			{Name: "Width", Group: "Size"},
			{Name: "Height", Group: "Size"},
		},
	})

	if err := doc.RemoveProperty("Vars", "Width"); err != nil {
		t.Fatalf("RemoveProperty returned error: %v", err)
	}
	obj, _ := doc.Object("Vars")
	if props := obj.Properties(); !reflect.DeepEqual(props, []string{"Height"}) {
		t.Errorf("surviving properties = %v, want [Height]", props)
	}
	if group := obj.PropertyGroup("Width"); group != "" {
		t.Errorf("expected no group for a removed property, got %q", group)
	}

	err := doc.RemoveProperty("Vars", "Width")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected a not-found error for a removed property, got %v", err)
	}
	err = doc.RemoveProperty("NoObject", "Width")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected a not-found error for an unknown object, got %v", err)
	}

	var notFound *NotFoundError
	if !errors.As(err, &notFound) || notFound.Kind != "object" {
		t.Errorf("expected a NotFoundError with kind object, got %v", err)
	}
}

func TestMemoryClearAlias(t *testing.T) {
	doc := NewMemory()
	doc.MustAdd(ObjectSpec{
		Name:    "Sheet",
		Type:    TypeSheet,
		Aliases: map[string]string{"Depth": "B1"},
	})
	doc.MustAdd(ObjectSpec{Name: "Vars", Type: TypeVarSet})

	if err := doc.ClearAlias("Sheet", "Depth"); err != nil {
		t.Fatalf("ClearAlias returned error: %v", err)
	}
	if err := doc.ClearAlias("Sheet", "Depth"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected a not-found error for a cleared alias, got %v", err)
	}
	if err := doc.ClearAlias("Vars", "Depth"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected a not-found error for a non-sheet object, got %v", err)
	}
}

func TestMemoryAliasTableDirection(t *testing.T) {
	doc := NewMemory()
	doc.MustAdd(ObjectSpec{
		Name:    "Forward",
		Type:    TypeSheet,
		Aliases: map[string]string{"Depth": "B1"},
	})
	doc.MustAdd(ObjectSpec{
		Name:             "Inverted",
		Type:             TypeSheet,
		Aliases:          map[string]string{"Depth": "B1"},
		InvertAliasTable: true,
	})

	forward, _ := doc.Object("Forward")
	sheet, ok := AsSheet(forward)
	if !ok {
		t.Fatal("expected Forward to narrow to a Sheet")
	}
	if table := sheet.AliasTable(); !reflect.DeepEqual(table, map[string]string{"Depth": "B1"}) {
		t.Errorf("forward alias table = %v", table)
	}

	inverted, _ := doc.Object("Inverted")
	sheet, _ = AsSheet(inverted)
	if table := sheet.AliasTable(); !reflect.DeepEqual(table, map[string]string{"B1": "Depth"}) {
		t.Errorf("inverted alias table = %v", table)
	}
}

func TestMemoryUsedCells(t *testing.T) {
	doc := NewMemory()
	doc.MustAdd(ObjectSpec{
		Name: "Sheet",
		Type: TypeSheet,
		Cells: map[string]string{
			"C3": "=A1 * 2",
			"A1": "5",
			"B2": "",
		},
	})

	obj, _ := doc.Object("Sheet")
	sheet, _ := AsSheet(obj)
	if cells := sheet.UsedCells(); !reflect.DeepEqual(cells, []string{"A1", "C3"}) {
		t.Errorf("UsedCells = %v, want [A1 C3]", cells)
	}
	if text := sheet.CellText("A1"); text != "5" {
		t.Errorf("CellText(A1) = %q, want 5", text)
	}
	if text := sheet.CellText("Z9"); text != "" {
		t.Errorf("CellText(Z9) = %q, want empty", text)
	}
}

func TestMemoryDanglingRelations(t *testing.T) {
	doc := NewMemory()
	doc.MustAdd(ObjectSpec{
		Name:    "Group",
		Type:    TypeGroup,
		Members: []string{"Missing", "Child"},
		Outputs: []string{"AlsoMissing"},
	})
	doc.MustAdd(ObjectSpec{Name: "Child", Type: TypeVarSet})

	obj, _ := doc.Object("Group")
	members := obj.Members()
	if len(members) != 1 || members[0].Name() != "Child" {
		t.Errorf("expected dangling member names to resolve to nothing, got %v", members)
	}
	if outputs := obj.Outputs(); len(outputs) != 0 {
		t.Errorf("expected no outputs, got %v", outputs)
	}
}

func TestMemoryRecomputeCounter(t *testing.T) {
	doc := NewMemory()
	if doc.Recomputes() != 0 {
		t.Fatalf("expected zero recomputes initially, got %d", doc.Recomputes())
	}
	doc.Recompute()
	doc.Recompute()
	if doc.Recomputes() != 2 {
		t.Errorf("expected 2 recomputes, got %d", doc.Recomputes())
	}
}

func TestAsSheet(t *testing.T) {
	doc := NewMemory()
	doc.MustAdd(ObjectSpec{Name: "Vars", Type: TypeVarSet})

	obj, _ := doc.Object("Vars")
	if _, ok := AsSheet(obj); ok {
		t.Error("expected AsSheet to reject a non-sheet object")
	}
	if _, ok := AsSheet(nil); ok {
		t.Error("expected AsSheet to reject nil")
	}
}
