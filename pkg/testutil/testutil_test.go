package testutil

import (
	"os"
	"testing"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemFS(t *testing.T) {
	fs := MemFS(t, map[string]string{
		"/project/install.xml":      "<installation/>",
		"/project/packs/extra.yaml": "packs: []",
	})

	data, err := afero.ReadFile(fs, "/project/install.xml")
	require.NoError(t, err)
	assert.Equal(t, "<installation/>", string(data))

	isDir, err := afero.IsDir(fs, "/project/packs")
	require.NoError(t, err)
	assert.True(t, isDir)
}

func TestIsolateState(t *testing.T) {
	dir := IsolateState(t)
	assert.Equal(t, dir, xdg.StateHome)
	assert.Equal(t, dir, os.Getenv("XDG_STATE_HOME"))
}

func TestPackBuilder(t *testing.T) {
	b := Packs().
		Add("core").Required().From("base.xml").
		Add("vim", "core").InGroup("editors", true).
		Add("emacs", "core").InGroup("editors", false).
		Add("docs").Preselected()

	packs := b.Build()
	require.Len(t, packs, 4)

	assert.True(t, packs[0].Required)
	assert.Equal(t, "base.xml", packs[0].Source)
	assert.Equal(t, []string{"core"}, packs[1].Dependencies)
	assert.Equal(t, "editors", packs[1].ExcludeGroup)
	assert.True(t, packs[1].Preselected)
	assert.False(t, packs[2].Preselected)
	assert.True(t, packs[3].Preselected)
	assert.False(t, packs[3].HasExcludeGroup())

	packs[0].Name = "changed"
	assert.Equal(t, "core", b.Build()[0].Name, "Build returns a copy")
}

func TestPackBuilderModifierWithoutPack(t *testing.T) {
	assert.Panics(t, func() { Packs().Required() })
}
