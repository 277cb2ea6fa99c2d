// SPDX-License-Identifier: MPL-2.0

// Package modhost talks to the shop that hosts the modules being renamed.
//
// It reads a module's manifest (module.cue) and installs, uninstalls and
// queries modules by running the shell commands configured for the shop.
// Commands run in-process through mvdan.cc/sh, so no system shell is needed.
package modhost
