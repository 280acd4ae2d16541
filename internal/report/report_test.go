// SPDX-License-Identifier: MPL-2.0

package report

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/glamour"

	"varsweep/internal/audit"
)

func sampleRemoval() Removal {
	return Removal{
		Title: "Variables",
		Update: audit.RemovalUpdate{
			Result: audit.RemovalResult{
				Removed:   []string{"BoltVars.Unused1"},
				StillUsed: []string{"BoltVars.Diameter"},
				Failed: []audit.RemovalFailure{
					{Ref: "PlateVars.Ghost", Err: errors.New("object not found")},
				},
			},
			ChildItems: []audit.ParentChildRef{
				{Parent: "BoltVars", Child: "Diameter"},
				{Parent: "BoltVars", Child: "Length"},
			},
		},
		Usages: []audit.ExpressionUsage{
			{
				Owner:      "Body",
				Property:   "Body.Radius",
				Expression: "<<BoltVars>>.Diameter / 2",
			},
			{
				Owner:      "Body",
				Property:   "Body.Height",
				Expression: "BoltVars.Length * 2",
			},
		},
	}
}

func TestRemoval_Markdown(t *testing.T) {
	md := sampleRemoval().Markdown()

	for _, want := range []string{
		"# Variables Report",
		"3 selected, 1 removed, 1 still used, 1 failed",
		"## Removed",
		"- `BoltVars.Unused1`",
		"## Still Used",
		"- `BoltVars.Diameter`",
		"  - `Body.Radius = <<BoltVars>>.Diameter / 2`",
		"## Failed",
		"- `PlateVars.Ghost`: object not found",
		"## Remaining Items",
		"- `BoltVars.Length`",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}

	// Only the Diameter usage lists under Diameter, not the Length one.
	stillUsed := md[strings.Index(md, "## Still Used"):]
	stillUsed = stillUsed[:strings.Index(stillUsed, "## Failed")]
	if strings.Contains(stillUsed, "BoltVars.Length * 2") {
		t.Errorf("Length usage should not appear under Diameter:\n%s", stillUsed)
	}
}

func TestRemoval_Markdown_DefaultTitle(t *testing.T) {
	md := Removal{}.Markdown()
	if !strings.Contains(md, "# Removal Report") {
		t.Errorf("empty title should fall back to a generic heading:\n%s", md)
	}
	if !strings.Contains(md, "0 selected, 0 removed, 0 still used, 0 failed") {
		t.Errorf("empty report should show zero counts:\n%s", md)
	}
}

func TestRemoval_Markdown_OmitsEmptySections(t *testing.T) {
	md := Removal{Title: "Aliases"}.Markdown()
	for _, section := range []string{"## Removed", "## Still Used", "## Failed", "## Remaining Items"} {
		if strings.Contains(md, section) {
			t.Errorf("empty report should omit %q:\n%s", section, md)
		}
	}
}

func TestUsageMentions(t *testing.T) {
	ref := audit.ParentChildRef{Parent: "BoltVars", Child: "Diameter"}

	tests := []struct {
		name  string
		usage audit.ExpressionUsage
		want  bool
	}{
		{
			name:  "qualified dotted form",
			usage: audit.ExpressionUsage{Owner: "Body", Expression: "BoltVars.Diameter / 2"},
			want:  true,
		},
		{
			name:  "qualified bracketed form",
			usage: audit.ExpressionUsage{Owner: "Body", Expression: "<<BoltVars>>.Diameter / 2"},
			want:  true,
		},
		{
			name:  "bare form inside the owning parent",
			usage: audit.ExpressionUsage{Owner: "BoltVars", Expression: "Diameter * 0.5"},
			want:  true,
		},
		{
			name:  "bare form outside the owning parent",
			usage: audit.ExpressionUsage{Owner: "Body", Expression: "Diameter * 0.5"},
			want:  false,
		},
		{
			name:  "unrelated expression",
			usage: audit.ExpressionUsage{Owner: "Body", Expression: "PlateVars.Thickness + 1"},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := usageMentions(tt.usage, ref); got != tt.want {
				t.Errorf("usageMentions(%q) = %v, want %v", tt.usage.Expression, got, tt.want)
			}
		})
	}
}

type staticRenderer struct {
	out string
	err error
}

func (s staticRenderer) Render(string) (string, error) { return s.out, s.err }

func TestRemoval_Render(t *testing.T) {
	oldRenderer := newRenderer
	defer func() { newRenderer = oldRenderer }()

	var gotOpts int
	newRenderer = func(opts ...glamour.TermRendererOption) (terminalRenderer, error) {
		gotOpts = len(opts)
		return staticRenderer{out: "rendered"}, nil
	}

	out, err := sampleRemoval().Render(80)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if out != "rendered" {
		t.Errorf("Render output = %q, want rendered", out)
	}
	if gotOpts != 2 {
		t.Errorf("expected auto style plus word wrap options, got %d", gotOpts)
	}

	// Non-positive width drops the word wrap option.
	_, _ = sampleRemoval().Render(0)
	if gotOpts != 1 {
		t.Errorf("expected only the auto style option without width, got %d", gotOpts)
	}
}

func TestRemoval_Render_Errors(t *testing.T) {
	oldRenderer := newRenderer
	defer func() { newRenderer = oldRenderer }()

	newRenderer = func(opts ...glamour.TermRendererOption) (terminalRenderer, error) {
		return nil, errors.New("no terminal")
	}
	if _, err := sampleRemoval().Render(0); err == nil {
		t.Error("expected renderer construction failure to surface")
	}

	newRenderer = func(opts ...glamour.TermRendererOption) (terminalRenderer, error) {
		return staticRenderer{err: errors.New("render failed")}, nil
	}
	if _, err := sampleRemoval().Render(0); err == nil {
		t.Error("expected render failure to surface")
	}
}
