// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

func TestId_Constants(t *testing.T) {
	if InvalidIdentifierId != 1 {
		t.Errorf("InvalidIdentifierId = %d, want 1", InvalidIdentifierId)
	}

	values := Values()
	if len(values) != len(issues) {
		t.Fatalf("Values() returned %d issues, want %d", len(values), len(issues))
	}
	for i := 1; i < len(values); i++ {
		if values[i-1].Id() >= values[i].Id() {
			t.Errorf("Values() not ordered by Id at %d: %d >= %d", i, values[i-1].Id(), values[i].Id())
		}
	}
}

func TestGet(t *testing.T) {
	tests := []struct {
		id       Id
		contains string
	}{
		{InvalidIdentifierId, "Invalid module name"},
		{InvalidReplacementId, "search,replace"},
		{ModuleNotFoundId, "Module not found"},
		{ModuleExistsId, "already exists"},
		{ConfigLoadFailedId, "fop config init"},
		{TreeRewriteFailedId, "partially renamed"},
		{ModuleCommandFailedId, "{{.Module}}"},
		{InvalidManifestId, "[[command]]"},
	}

	for _, tt := range tests {
		issue := Get(tt.id)
		if issue == nil {
			t.Errorf("Get(%d) returned nil", tt.id)
			continue
		}
		if !strings.Contains(string(issue.MarkdownMsg()), tt.contains) {
			t.Errorf("Get(%d) message should contain %q", tt.id, tt.contains)
		}
	}

	if Get(Id(999)) != nil {
		t.Error("Get(999) should be nil")
	}
}

func TestIssue_DocLinksClone(t *testing.T) {
	issue := &Issue{id: 42, mdMsg: "# x", docLinks: []HttpLink{"https://example.com/a"}}
	links := issue.DocLinks()
	links[0] = "modified"
	if issue.DocLinks()[0] != "https://example.com/a" {
		t.Error("DocLinks() should return a clone")
	}
}

func TestIssue_Render(t *testing.T) {
	originalRender := render
	defer func() { render = originalRender }()

	var gotStyle string
	render = func(in string, stylePath string) (string, error) {
		gotStyle = stylePath
		return in, nil
	}

	issue := &Issue{id: 42, mdMsg: "# Title", docLinks: []HttpLink{"https://example.com/doc"}}
	rendered, err := issue.Render("dark")
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}
	if gotStyle != "dark" {
		t.Errorf("style = %q, want dark", gotStyle)
	}
	if !strings.Contains(rendered, "## See also") || !strings.Contains(rendered, "https://example.com/doc") {
		t.Errorf("Render() should list doc links, got:\n%s", rendered)
	}

	noLinks, _ := (&Issue{id: 43, mdMsg: "# Title"}).Render("dark")
	if strings.Contains(noLinks, "See also") {
		t.Errorf("Render() without links should not add a See also section, got:\n%s", noLinks)
	}
}

func TestAllIssuesAreRenderable(t *testing.T) {
	for _, issue := range Values() {
		if issue.MarkdownMsg() == "" {
			t.Errorf("Issue %d has empty MarkdownMsg", issue.Id())
		}
		rendered, err := issue.Render("dark")
		if err != nil {
			t.Errorf("Issue %d failed to render: %v", issue.Id(), err)
		}
		if strings.TrimSpace(rendered) == "" {
			t.Errorf("Issue %d rendered to empty string", issue.Id())
		}
	}
}
