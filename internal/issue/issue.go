// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"cmp"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

type Id int

const (
	InvalidIdentifierId Id = iota + 1
	InvalidReplacementId
	ModuleNotFoundId
	ModuleExistsId
	ConfigLoadFailedId
	TreeRewriteFailedId
	ModuleCommandFailedId
	InvalidManifestId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // documentation pages about this issue
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

// Render renders the issue with the given glamour style ("auto", "dark", "light"
// or a style file path).
func (i *Issue) Render(stylePath string) (string, error) {
	md := string(i.mdMsg)
	if len(i.docLinks) > 0 {
		md += "\n\n## See also\n"
		for _, link := range i.docLinks {
			md += "- <" + string(link) + ">\n"
		}
	}
	return render(md, stylePath)
}

var (
	render = glamour.Render

	invalidIdentifierIssue = &Issue{
		id: InvalidIdentifierId,
		mdMsg: `
# Invalid module name!

Module names are one or two alphanumeric segments joined by an underscore:
an optional prefix and a base name.

## Examples
- ` + "`ps_mymodule`" + ` (prefix ` + "`ps`" + `, base ` + "`mymodule`" + `)
- ` + "`MyModule`" + ` (no prefix)

## Things you can try:
- Remove dashes, dots, spaces and extra underscores
~~~
$ fop rename ps_oldname ps_newname
~~~`,
	}

	invalidReplacementIssue = &Issue{
		id: InvalidReplacementId,
		mdMsg: `
# Invalid extra replacement!

Extra replacements are given as ` + "`search,replace`" + `. The search part
must not be empty; the replacement may be.

## Things you can try:
~~~
$ fop rename ps_old ps_new --replace "Old Module,New Module"
~~~`,
	}

	moduleNotFoundIssue = &Issue{
		id: ModuleNotFoundId,
		mdMsg: `
# Module not found!

The module to rename must be a directory named after it, in lowercase,
inside the shop modules directory.

## Things you can try:
- Run fop from the shop root, or set ` + "`shop.root`" + ` in your config
- Check ` + "`shop.modules_dir`" + `:
~~~
$ fop config show
~~~`,
	}

	moduleExistsIssue = &Issue{
		id: ModuleExistsId,
		mdMsg: `
# Target module already exists!

A directory for the new module name is already present. fop never merges
into an existing module.

## Things you can try:
- Pick another name
- Remove or rename the existing directory first`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

The configuration file could not be read or does not match the schema.

## Things you can try:
- Print where fop looks for its config:
~~~
$ fop config path
~~~

- Recreate a default configuration:
~~~
$ fop config init
~~~

## Example config.cue
~~~cue
shop: {
	root: "/var/www/shop"
	modules_dir: "modules"
}
rename: {
	exclude: ["vendor", "node_modules"]
}
~~~`,
	}

	treeRewriteFailedIssue = &Issue{
		id: TreeRewriteFailedId,
		mdMsg: `
# Failed to rewrite the module tree!

A file could not be read, written or renamed. Changes made before the
failure are kept, so the new module directory may be partially renamed.

## Things you can try:
- Check file permissions inside the new module directory
- Delete the new module directory and run the rename again
- Preview the changes first:
~~~
$ fop rename ps_old ps_new --dry-run
~~~`,
	}

	moduleCommandFailedIssue = &Issue{
		id: ModuleCommandFailedId,
		mdMsg: `
# Module command failed!

The shop command used to install or uninstall a module exited with an error.

## Things you can try:
- Run the command by hand from the shop root to see its full output
- Adjust ` + "`shop.install_command`" + ` and ` + "`shop.uninstall_command`" + `; ` + "`{{.Module}}`" + ` expands to the module name
- Use ` + "`--verbose`" + ` to log the exact command line`,
	}

	invalidManifestIssue = &Issue{
		id: InvalidManifestId,
		mdMsg: `
# Invalid command manifest!

The manifest lists commands to check as TOML tables.

## Example commands.toml
~~~toml
[[command]]
class = 'FOP\Console\Commands\Modules\ModuleHooks'
name = "fop:modules:hooks"
service = "fop.console.modules.module_hooks.command"
~~~`,
	}

	issues = map[Id]*Issue{
		invalidIdentifierIssue.Id():   invalidIdentifierIssue,
		invalidReplacementIssue.Id():  invalidReplacementIssue,
		moduleNotFoundIssue.Id():      moduleNotFoundIssue,
		moduleExistsIssue.Id():        moduleExistsIssue,
		configLoadFailedIssue.Id():    configLoadFailedIssue,
		treeRewriteFailedIssue.Id():   treeRewriteFailedIssue,
		moduleCommandFailedIssue.Id(): moduleCommandFailedIssue,
		invalidManifestIssue.Id():     invalidManifestIssue,
	}
)

// Values returns every catalog issue ordered by Id.
func Values() []*Issue {
	out := make([]*Issue, 0, len(issues))
	for _, i := range issues {
		out = append(out, i)
	}
	slices.SortFunc(out, func(a, b *Issue) int { return cmp.Compare(a.id, b.id) })
	return out
}

func Get(id Id) *Issue {
	return issues[id]
}
