// SPDX-License-Identifier: MPL-2.0

// Package docfile loads document snapshot files. A snapshot is a CUE file
// holding the audit-relevant slice of a host document; parsing goes through
// the shared schema-validated CUE flow and materializes as an in-memory
// document the audit engine can query and mutate.
package docfile

import (
	_ "embed"
	"fmt"
	"os"

	"varsweep/internal/document"
	"varsweep/pkg/cueutil"
)

//go:embed document_schema.cue
var documentSchema string

type (
	// Snapshot is the decoded form of a snapshot file.
	Snapshot struct {
		Objects []ObjectEntry `json:"objects"`
	}

	// ObjectEntry is one object of a snapshot.
	ObjectEntry struct {
		Name             string            `json:"name"`
		Label            string            `json:"label,omitempty"`
		Type             string            `json:"type,omitempty"`
		Properties       []PropertyEntry   `json:"properties,omitempty"`
		Bindings         []BindingEntry    `json:"bindings,omitempty"`
		Members          []string          `json:"members,omitempty"`
		Outputs          []string          `json:"outputs,omitempty"`
		Cells            map[string]string `json:"cells,omitempty"`
		Aliases          map[string]string `json:"aliases,omitempty"`
		InvertAliasTable bool              `json:"invertAliasTable,omitempty"`
	}

	// PropertyEntry is one named property of an object.
	PropertyEntry struct {
		Name  string `json:"name"`
		Group string `json:"group,omitempty"`
	}

	// BindingEntry is one bound-expression table entry.
	BindingEntry struct {
		Target     string `json:"target"`
		Expression string `json:"expression"`
	}
)

// Parse reads and parses a snapshot file from the given path.
func Parse(path string) (*document.Memory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot at %s: %w", path, err)
	}
	return ParseBytes(data, path)
}

// ParseBytes parses snapshot content from bytes. Uses the 3-step CUE
// parsing flow: compile schema, compile user data, validate and decode.
func ParseBytes(data []byte, path string) (*document.Memory, error) {
	result, err := cueutil.ParseAndDecodeString[Snapshot](
		documentSchema,
		data,
		"#Document",
		cueutil.WithFilename(path),
	)
	if err != nil {
		return nil, err
	}
	return result.Value.Document()
}

// Document materializes the snapshot as an in-memory document.
func (s *Snapshot) Document() (*document.Memory, error) {
	doc := document.NewMemory()
	for _, entry := range s.Objects {
		spec := document.ObjectSpec{
			Name:             entry.Name,
			Label:            entry.Label,
			Type:             document.TypeID(entry.Type),
			Bindings:         make([]document.Binding, 0, len(entry.Bindings)),
			Members:          entry.Members,
			Outputs:          entry.Outputs,
			Cells:            entry.Cells,
			Aliases:          entry.Aliases,
			InvertAliasTable: entry.InvertAliasTable,
		}
		for _, prop := range entry.Properties {
			spec.Properties = append(spec.Properties, document.PropertySpec{
				Name:  prop.Name,
				Group: prop.Group,
			})
		}
		for _, binding := range entry.Bindings {
			spec.Bindings = append(spec.Bindings, document.Binding{
				Target:     binding.Target,
				Expression: binding.Expression,
			})
		}
		if err := doc.Add(spec); err != nil {
			return nil, fmt.Errorf("invalid snapshot: %w", err)
		}
	}
	return doc, nil
}
