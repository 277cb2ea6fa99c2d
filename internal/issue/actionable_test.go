// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ActionableError
		expected string
	}{
		{
			name:     "operation only",
			err:      &ActionableError{Operation: "rename module"},
			expected: "failed to rename module",
		},
		{
			name:     "operation with resource",
			err:      &ActionableError{Operation: "rename module", Resource: "modules/ps_foo"},
			expected: "failed to rename module: modules/ps_foo",
		},
		{
			name:     "operation with cause",
			err:      &ActionableError{Operation: "load configuration", Cause: errors.New("syntax error at line 5")},
			expected: "failed to load configuration: syntax error at line 5",
		},
		{
			name: "full context",
			err: &ActionableError{
				Operation: "rename module",
				Resource:  "modules/ps_foo",
				Cause:     errors.New("file not found"),
			},
			expected: "failed to rename module: modules/ps_foo: file not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestActionableError_ErrorsIs(t *testing.T) {
	cause := errors.New("specific error")
	wrapped := &ActionableError{Operation: "test", Cause: cause}

	if !errors.Is(wrapped, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
	if (&ActionableError{Operation: "test"}).Unwrap() != nil {
		t.Error("Unwrap() should return nil when no cause")
	}
}

func TestActionableError_Format(t *testing.T) {
	inner := errors.New("permission denied")
	err := &ActionableError{
		Operation:   "rewrite module tree",
		Resource:    "modules/ps_new",
		Suggestions: []string{"Check file permissions", "Run with --dry-run"},
		Cause:       &ActionableError{Operation: "write file", Cause: inner},
	}

	short := err.Format(false)
	for _, want := range []string{"failed to rewrite module tree", "• Check file permissions", "• Run with --dry-run"} {
		if !strings.Contains(short, want) {
			t.Errorf("Format(false) missing %q:\n%s", want, short)
		}
	}
	if strings.Contains(short, "Error chain") {
		t.Errorf("Format(false) should not include the error chain:\n%s", short)
	}

	long := err.Format(true)
	for _, want := range []string{"Error chain:", "1. failed to write file", "2. permission denied"} {
		if !strings.Contains(long, want) {
			t.Errorf("Format(true) missing %q:\n%s", want, long)
		}
	}
}

func TestActionableError_Issue(t *testing.T) {
	err := &ActionableError{Operation: "rename module", IssueID: ModuleNotFoundId}
	if got := err.Issue(); got == nil || got.Id() != ModuleNotFoundId {
		t.Errorf("Issue() = %v, want ModuleNotFound page", got)
	}
	if (&ActionableError{Operation: "x"}).Issue() != nil {
		t.Error("Issue() without IssueID should be nil")
	}
}

func TestErrorContext_Build(t *testing.T) {
	cause := errors.New("boom")
	ae := NewErrorContext().
		WithOperation("install module").
		WithResource("ps_new").
		WithSuggestion("first").
		WithSuggestion("second").
		WithIssue(ModuleCommandFailedId).
		Wrap(cause).
		Build()

	if ae == nil {
		t.Fatal("Build() returned nil")
	}
	if ae.Operation != "install module" || ae.Resource != "ps_new" {
		t.Errorf("Build() = %+v", ae)
	}
	if len(ae.Suggestions) != 2 || ae.Suggestions[1] != "second" {
		t.Errorf("Suggestions = %v", ae.Suggestions)
	}
	if ae.IssueID != ModuleCommandFailedId {
		t.Errorf("IssueID = %d, want %d", ae.IssueID, ModuleCommandFailedId)
	}
	if !errors.Is(ae, cause) {
		t.Error("built error should wrap the cause")
	}
}

func TestErrorContext_BuildWithoutOperation(t *testing.T) {
	if ae := NewErrorContext().WithResource("x").Build(); ae != nil {
		t.Errorf("Build() without operation = %v, want nil", ae)
	}
	if err := NewErrorContext().BuildError(); err != nil {
		t.Errorf("BuildError() without operation = %v, want nil", err)
	}
}

func TestErrorContext_Reuse(t *testing.T) {
	ctx := NewErrorContext().WithOperation("load configuration").WithSuggestion("one")
	first := ctx.Build()
	ctx.WithSuggestion("two")
	second := ctx.Build()

	if len(first.Suggestions) != 1 {
		t.Errorf("first build should not see later suggestions, got %v", first.Suggestions)
	}
	if len(second.Suggestions) != 2 {
		t.Errorf("second build Suggestions = %v, want 2", second.Suggestions)
	}
}

func TestWrapWithContext(t *testing.T) {
	if WrapWithContext(nil, "op", "res") != nil {
		t.Error("WrapWithContext(nil) should be nil")
	}

	cause := errors.New("boom")
	err := WrapWithContext(cause, "read manifest", "commands.toml")
	if err.Error() != "failed to read manifest: commands.toml: boom" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("should wrap cause")
	}
}
