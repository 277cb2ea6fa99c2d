// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
)

// ErrCancelled is returned when the user aborts a prompt (Ctrl+C, Esc).
var ErrCancelled = errors.New("prompt cancelled")

type (
	// ConfirmOptions configures a yes/no prompt.
	ConfirmOptions struct {
		// Title is the question to display.
		Title string
		// Description provides additional context below the title.
		Description string
		// Affirmative is the text for the affirmative option (default: "Yes").
		Affirmative string
		// Negative is the text for the negative option (default: "No").
		Negative string
		// Default is the preselected answer.
		Default bool
	}

	// Prompter asks the user yes/no questions.
	Prompter interface {
		Confirm(ctx context.Context, opts ConfirmOptions) (bool, error)
	}

	// HuhPrompter renders prompts with charmbracelet/huh.
	HuhPrompter struct {
		Config Config
	}

	// AutoConfirm answers yes to every prompt without asking.
	AutoConfirm struct{}
)

// NewPrompter returns a HuhPrompter using DefaultConfig.
func NewPrompter() *HuhPrompter {
	return &HuhPrompter{Config: DefaultConfig()}
}

// Confirm implements Prompter.
func (p *HuhPrompter) Confirm(ctx context.Context, opts ConfirmOptions) (bool, error) {
	if opts.Affirmative == "" {
		opts.Affirmative = "Yes"
	}
	if opts.Negative == "" {
		opts.Negative = "No"
	}

	result := opts.Default
	field := huh.NewConfirm().
		Title(opts.Title).
		Affirmative(opts.Affirmative).
		Negative(opts.Negative).
		Value(&result)
	if opts.Description != "" {
		field = field.Description(opts.Description)
	}

	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(huhTheme(p.Config.Theme)).
		WithAccessible(p.Config.Accessible).
		WithInput(p.Config.input()).
		WithOutput(p.Config.output())

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, ErrCancelled
		}
		return false, fmt.Errorf("confirm prompt: %w", err)
	}
	return result, nil
}

// Confirm implements Prompter.
func (AutoConfirm) Confirm(context.Context, ConfirmOptions) (bool, error) {
	return true, nil
}
