// SPDX-License-Identifier: MPL-2.0

package checker

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadManifest(t *testing.T) {
	t.Parallel()

	input := `
[[command]]
class = 'FOP\Console\Commands\Modules\ModuleHooks'
name = "fop:modules:hooks"
service = "fop.console.modules.module_hooks.command"

[[command]]
class = 'FOP\Console\Commands\Modules\ModuleHooks'
name = "fop:module:hooks"
service = "fop.console.modules.module_hooks.command"
`
	m, err := LoadManifest(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, m.Commands, 2)
	assert.Equal(t, moduleHooksClass, m.Commands[0].Class)

	reports := m.CheckAll()
	require.Len(t, reports, 2)
	assert.True(t, reports[0].Results.OK())
	assert.False(t, reports[1].Results.OK())
	assert.Equal(t, "fop:module:hooks", reports[1].Command.Name)
}

func TestLoadManifest_Invalid(t *testing.T) {
	t.Parallel()

	for name, input := range map[string]string{
		"syntax error": "[[command]\nclass = 1",
		"unknown key":  "[[command]]\nklass = 'x'\n",
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := LoadManifest(strings.NewReader(input))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidManifest))
		})
	}
}
