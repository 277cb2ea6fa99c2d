// SPDX-License-Identifier: MPL-2.0

package modhost

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fopconsole/fop/pkg/cueutil"
)

// ManifestFileName is the manifest file at the root of a module directory.
const ManifestFileName = "module.cue"

// ErrInvalidManifest is returned when module.cue does not match the schema.
var ErrInvalidManifest = errors.New("invalid module manifest")

//go:embed manifest_schema.cue
var manifestSchema []byte

// Manifest describes a module.
type Manifest struct {
	Name        string `json:"name"`
	Author      string `json:"author,omitempty"`
	Version     string `json:"version,omitempty"`
	Description string `json:"description,omitempty"`
}

// LoadManifest reads dir/module.cue. A missing file yields an error matching
// fs.ErrNotExist; a malformed one wraps ErrInvalidManifest.
func LoadManifest(dir string) (*Manifest, error) {
	path := filepath.Join(dir, ManifestFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read module manifest: %w", err)
	}

	m, err := cueutil.Decode[Manifest](manifestSchema, "#Manifest", data,
		cueutil.WithFilename(path),
		cueutil.WithConcrete(true),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidManifest, err)
	}
	return m, nil
}

// Author returns the author recorded in dir/module.cue, or "" when the module
// has no manifest.
func Author(dir string) (string, error) {
	m, err := LoadManifest(dir)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return m.Author, nil
}
