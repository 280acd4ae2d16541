// SPDX-License-Identifier: EPL-2.0

package issue

import (
	"maps"
	"slices"

	"github.com/charmbracelet/glamour"
)

type Id int

const (
	SnapshotNotFoundId Id = iota + 1
	SnapshotParseErrorId
	ObjectNotFoundId
	StillReferencedId
	RemovalFailedId
	ConfigLoadFailedId
)

type MarkdownMsg string

type HttpLink string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // must never be empty, because we need to have docs about all issue types
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also: "
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "]"
		}
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	snapshotNotFoundIssue = &Issue{
		id: SnapshotNotFoundId,
		mdMsg: `
# No document snapshot found!

We searched for a document snapshot but couldn't find one at the expected
location.

## Search locations (in order of precedence):
1. The path given with --doc
2. The "document" entry in your config file
3. model.cue in the current directory

## Things you can try:
- Point varsweep at your snapshot explicitly:
~~~
$ varsweep --doc /path/to/model.cue vars list
~~~

- Or record the path once in your config:
~~~cue
document: "/path/to/model.cue"
~~~`,
	}

	snapshotParseErrorIssue = &Issue{
		id: SnapshotParseErrorId,
		mdMsg: `
# Failed to parse the document snapshot!

The snapshot file contains syntax errors or invalid structure.

## Common issues:
- Invalid CUE syntax (missing quotes, braces, etc.)
- Unknown field names on an object entry
- A duplicate or missing object name
- Bindings without a target

## Things you can try:
- Check the error message above for the specific path
- Validate the file with the cue command-line tool
- Run with verbose mode for more details:
~~~
$ varsweep --verbose vars list
~~~

## Example of a valid object entry:
~~~cue
objects: [
	{
		name: "BoltVars"
		type: "App::VarSet"
		properties: [
			{name: "Diameter", group: "Base"},
		]
	},
]
~~~`,
	}

	objectNotFoundIssue = &Issue{
		id: ObjectNotFoundId,
		mdMsg: `
# Object not found!

The container or sheet you named does not exist in the document.

## Things you can try:
- List the known containers:
~~~
$ varsweep vars list
~~~

- List the known sheets:
~~~
$ varsweep aliases list
~~~

- Check for typos; object names are the internal names, not labels
- Clone-derived objects are hidden by default; show them with:
~~~
$ varsweep vars list --include-clones
~~~`,
	}

	stillReferencedIssue = &Issue{
		id: StillReferencedId,
		mdMsg: `
# Still referenced!

Some of the selected items gained references between listing and removal,
so they were kept.

## Why this happens:
- Reference counts are recomputed right before each deletion
- Another expression started using the variable or alias in the meantime

## Things you can try:
- Inspect the current references:
~~~
$ varsweep vars refs <Container.Variable>
~~~

- Re-run the prune after removing the referencing expressions`,
	}

	removalFailedIssue = &Issue{
		id: RemovalFailedId,
		mdMsg: `
# Removal failed!

Some of the selected items could not be removed from the document.

## Common causes:
- The item vanished between listing and removal
- A malformed selection entry (expected "Parent.Child")

## Things you can try:
- Re-list and re-select:
~~~
$ varsweep vars children <Container> --only-unused
~~~

- Run with verbose mode to see each failure's cause:
~~~
$ varsweep --verbose vars prune <Container>
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the varsweep configuration file.

## Configuration file locations:
- Linux: ~/.config/varsweep/config.cue
- macOS: ~/Library/Application Support/varsweep/config.cue
- Windows: %APPDATA%\varsweep\config.cue

## Things you can try:
- Check the configuration syntax
- Remove the config file to use defaults:
~~~
$ rm ~/.config/varsweep/config.cue
~~~

## Example configuration:
~~~cue
document: "./model.cue"
exclude_clones: true

ui: {
	color_scheme: "auto"
	verbose: false
}
~~~`,
	}

	issues = map[Id]*Issue{
		snapshotNotFoundIssue.Id():   snapshotNotFoundIssue,
		snapshotParseErrorIssue.Id(): snapshotParseErrorIssue,
		objectNotFoundIssue.Id():     objectNotFoundIssue,
		stillReferencedIssue.Id():    stillReferencedIssue,
		removalFailedIssue.Id():      removalFailedIssue,
		configLoadFailedIssue.Id():   configLoadFailedIssue,
	}
)

func Values() []*Issue {
	return slices.Collect(maps.Values(issues))
}

func Get(id Id) *Issue {
	return issues[id]
}
