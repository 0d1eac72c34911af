package descriptor

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/errors"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/filesystem"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/types"
)

func testMod() *types.ModDescriptor {
	mod := types.NewModDescriptor("PAL_MoreWhiskers")
	mod.Name = "More Whiskers"
	mod.Description = "Adds whiskers"
	mod.Version = "1.2.0"
	mod.CreatedBy = "zapsharkrs"
	mod.DirName = "MoreWhiskers"
	return mod
}

func TestBuild(t *testing.T) {
	doc := Build(testMod(), 0)
	assert.Nil(t, doc.SteamAppID)
	assert.Empty(t, doc.SteamWorkshopID)

	mod := testMod()
	mod.WorkshopID = "3100200300"
	doc = Build(mod, 2489330)
	require.NotNil(t, doc.SteamAppID)
	assert.Equal(t, 2489330, *doc.SteamAppID)
	assert.Equal(t, "3100200300", doc.SteamWorkshopID)
}

func TestBuildNameFallsBackToAssetName(t *testing.T) {
	doc := Build(types.NewModDescriptor("PAL_Bare"), 0)
	assert.Equal(t, "PAL_Bare", doc.Name)
}

func TestEncodeOmitsAbsentOptionalKeys(t *testing.T) {
	data, err := Encode(Build(testMod(), 0))
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))

	assert.NotContains(t, raw, "SteamAppID")
	assert.NotContains(t, raw, "SteamWorkshopId")
	assert.NotContains(t, string(data), "null")
	assert.Equal(t, "More Whiskers", raw["Name"])
	assert.Equal(t, "Adds whiskers", raw["Description"])
	assert.Equal(t, "1.2.0", raw["Version"])
	assert.Equal(t, "zapsharkrs", raw["CreatedBy"])
}

func TestEncodeIncludesConfiguredKeys(t *testing.T) {
	mod := testMod()
	mod.WorkshopID = "42"
	data, err := Encode(Build(mod, 12345))
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, float64(12345), raw["SteamAppID"])
	assert.Equal(t, "42", raw["SteamWorkshopId"])
}

func TestWriteAndReadRoundTrip(t *testing.T) {
	ws := filepath.ToSlash(filepath.Join(t.TempDir(), "Whiskerwood"))
	gate := filesystem.NewGate(filesystem.NewOS(), filesystem.SafetyToken)
	target := ws + "/Saved/mods/MoreWhiskers/MoreWhiskers" + Extension

	mod := testMod()
	require.NoError(t, Write(gate, mod, 0, target))

	doc, err := Read(filesystem.NewOS(), target)
	require.NoError(t, err)
	assert.Equal(t, mod.Name, doc.Name)
	assert.Equal(t, mod.Description, doc.Description)
	assert.Equal(t, mod.Version, doc.Version)
	assert.Equal(t, mod.CreatedBy, doc.CreatedBy)
	assert.Nil(t, doc.SteamAppID)
}

func TestWriteRefusesUnsafeTarget(t *testing.T) {
	dir := filepath.ToSlash(t.TempDir())
	gate := filesystem.NewGate(filesystem.NewOS(), filesystem.SafetyToken)

	err := Write(gate, testMod(), 0, dir+"/MoreWhiskers"+Extension)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnsafePath))
	_, statErr := os.Stat(dir + "/MoreWhiskers" + Extension)
	assert.True(t, os.IsNotExist(statErr))
}

func TestReadErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := Read(filesystem.NewOS(), filepath.Join(dir, "missing.uplugin"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileNotFound))

	bad := filepath.Join(dir, "bad.uplugin")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0644))
	_, err = Read(filesystem.NewOS(), bad)
	assert.True(t, errors.IsErrorCode(err, errors.ErrModParse))
}
