// SPDX-License-Identifier: MPL-2.0

// Package tui provides the terminal UI pieces fop needs: yes/no prompts
// built on charmbracelet/huh and static tables built on lipgloss.
//
// Prompts fall back to huh's accessible mode, reading plain lines from
// stdin, whenever stdin is not a terminal.
package tui
