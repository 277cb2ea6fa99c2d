// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// Theme represents the visual theme for prompts.
type Theme string

const (
	// ThemeDefault uses the base huh theme.
	ThemeDefault Theme = "default"
	// ThemeCharm uses the Charm theme.
	ThemeCharm Theme = "charm"
	// ThemeDracula uses the Dracula theme.
	ThemeDracula Theme = "dracula"
	// ThemeBase16 uses the Base16 theme.
	ThemeBase16 Theme = "base16"
)

// Config holds common configuration for TUI components.
type Config struct {
	// Theme specifies the visual theme to use.
	Theme Theme
	// Accessible replaces interactive widgets with line-based prompts.
	Accessible bool
	// Input is read by prompts (nil means stdin).
	Input io.Reader
	// Output receives prompts (nil means stdout, or stderr in accessible mode).
	Output io.Writer
}

// DefaultConfig returns the configuration for the current process. Accessible
// mode is enabled when stdin is not a terminal or $ACCESSIBLE is set, and
// prompts then go to stderr so they survive stdout redirection.
func DefaultConfig() Config {
	accessible := !isInputTerminal() || os.Getenv("ACCESSIBLE") != ""

	var output io.Writer = os.Stdout
	if accessible {
		output = os.Stderr
	}

	return Config{
		Theme:      ThemeCharm,
		Accessible: accessible,
		Output:     output,
	}
}

func isInputTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func (c Config) input() io.Reader {
	if c.Input != nil {
		return c.Input
	}
	return os.Stdin
}

func (c Config) output() io.Writer {
	if c.Output != nil {
		return c.Output
	}
	if c.Accessible {
		return os.Stderr
	}
	return os.Stdout
}

func huhTheme(t Theme) *huh.Theme {
	switch t {
	case ThemeCharm:
		return huh.ThemeCharm()
	case ThemeDracula:
		return huh.ThemeDracula()
	case ThemeBase16:
		return huh.ThemeBase16()
	default:
		return huh.ThemeBase()
	}
}
