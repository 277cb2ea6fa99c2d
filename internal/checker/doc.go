// SPDX-License-Identifier: MPL-2.0

// Package checker verifies that the three names of a console command agree:
// the implementing class (FOP\Console\Commands\<Domain>\<Action>), the command
// name (fop:<domain>:<action>) and the service identifier
// (fop.console.<domain>.<action>.command).
//
// Every rule runs regardless of earlier failures and contributes to a single
// Results collection.
package checker
