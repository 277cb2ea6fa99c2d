// SPDX-License-Identifier: MPL-2.0

package checker

import (
	"errors"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
)

// ErrInvalidManifest is returned when a command manifest cannot be decoded.
var ErrInvalidManifest = errors.New("invalid command manifest")

type (
	// Command is one console command declared in a manifest.
	Command struct {
		Class   string `toml:"class"`
		Name    string `toml:"name"`
		Service string `toml:"service"`
	}

	// Manifest lists the commands to check, as found in commands.toml:
	//
	//	[[command]]
	//	class = 'FOP\Console\Commands\Modules\ModuleHooks'
	//	name = "fop:modules:hooks"
	//	service = "fop.console.modules.module_hooks.command"
	Manifest struct {
		Commands []Command `toml:"command"`
	}

	// CommandReport pairs a command with the results of validating it.
	CommandReport struct {
		Command Command
		Results Results
	}
)

// LoadManifest decodes a TOML command manifest from r.
// Unknown keys are rejected so typos surface instead of silently skipping a check.
func LoadManifest(r io.Reader) (*Manifest, error) {
	var m Manifest
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&m); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("%w: line %d, column %d: %s", ErrInvalidManifest, row, col, derr.Error())
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidManifest, err)
	}
	return &m, nil
}

// CheckAll validates every command of the manifest, in order.
func (m *Manifest) CheckAll() []CommandReport {
	reports := make([]CommandReport, 0, len(m.Commands))
	for _, c := range m.Commands {
		reports = append(reports, CommandReport{
			Command: c,
			Results: Validate(c.Class, c.Name, c.Service),
		})
	}
	return reports
}
