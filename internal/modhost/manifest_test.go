// SPDX-License-Identifier: MPL-2.0

package modhost

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fopconsole/fop/internal/testutil"
)

func TestLoadManifest(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	testutil.MustWriteFile(t, filepath.Join(dir, ManifestFileName), `
name:        "ps_oldname"
author:      "OldAuthor"
version:     "1.2.0"
description: "Old module"
`)

	m, err := LoadManifest(dir)
	require.NoError(t, err)
	assert.Equal(t, &Manifest{Name: "ps_oldname", Author: "OldAuthor", Version: "1.2.0", Description: "Old module"}, m)

	author, err := Author(dir)
	require.NoError(t, err)
	assert.Equal(t, "OldAuthor", author)
}

func TestLoadManifest_Missing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, err := LoadManifest(dir)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	author, err := Author(dir)
	require.NoError(t, err)
	assert.Empty(t, author)
}

func TestLoadManifest_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{name: "missing name", content: `author: "x"`},
		{name: "bad name", content: `name: "ps-old"`},
		{name: "unknown field", content: `name: "ps_old", license: "MIT"`},
		{name: "syntax error", content: `name: "ps_old`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			testutil.MustWriteFile(t, filepath.Join(dir, ManifestFileName), tt.content)

			_, err := LoadManifest(dir)
			assert.ErrorIs(t, err, ErrInvalidManifest)

			_, err = Author(dir)
			assert.ErrorIs(t, err, ErrInvalidManifest)
		})
	}
}
