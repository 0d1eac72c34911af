package wwmod

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/config"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/errors"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/testutil"
)

const betterBeds = `
name = "Better Beds"
version = "1.0.0"
dir_name = "BetterBeds"

[rules]
chunk_id = 7
`

type cliEnv struct {
	ws         *testutil.Workspace
	configPath string
}

func newCLIEnv(t *testing.T) *cliEnv {
	t.Helper()
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	ws := testutil.NewWorkspace(t)
	configPath := ws.Path("config/settings.toml")
	require.NoError(t, config.Save(ws.FS, configPath, ws.Settings()))
	return &cliEnv{ws: ws, configPath: configPath}
}

func (e *cliEnv) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", e.configPath}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func (e *cliEnv) statusJSON(t *testing.T) []map[string]interface{} {
	t.Helper()
	out, err := e.run(t, "status", "--format", "json")
	require.NoError(t, err)

	var decoded struct {
		Mods []map[string]interface{} `json:"mods"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	return decoded.Mods
}

func TestNoSubcommand(t *testing.T) {
	env := newCLIEnv(t)
	_, err := env.run(t)
	assert.Error(t, err)
}

func TestStatus(t *testing.T) {
	env := newCLIEnv(t)
	env.ws.WriteProjectFile("Mods/PAL_BetterBeds.wwmod.toml", betterBeds)
	env.ws.WriteProjectFile("Mods/PAL_NoChunk.wwmod.toml", `name = "No Chunk"`)

	mods := env.statusJSON(t)
	require.Len(t, mods, 2)
	assert.Equal(t, "PAL_BetterBeds", mods[0]["modId"])
	assert.Equal(t, "NoSourceArtifact", mods[0]["state"])
	assert.Equal(t, "No Pak Found", mods[0]["label"])
	assert.Equal(t, "MissingChunkId", mods[1]["state"])

	env.ws.WriteProjectFile("Saved/StagedBuilds/Windows/Content/Paks/pakchunk7-Windows.pak", "pak")
	mods = env.statusJSON(t)
	assert.Equal(t, "ReadyToMove", mods[0]["state"])
	assert.Equal(t, true, mods[0]["actions"].(map[string]interface{})["move"])

	out, err := env.run(t, "status", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "Better Beds")
	assert.Contains(t, out, "Ready to be Moved")
}

func TestMoveStageRemove(t *testing.T) {
	env := newCLIEnv(t)
	env.ws.WriteProjectFile("Mods/PAL_BetterBeds.wwmod.toml", betterBeds)
	env.ws.WriteProjectFile("Saved/StagedBuilds/Windows/Content/Paks/pakchunk7-Windows.pak", "pak")
	modDir := env.ws.AppDataDir + "/Saved/mods/BetterBeds"

	out, err := env.run(t, "move", "Better Beds", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "BetterBeds.pak")
	assert.FileExists(t, modDir+"/BetterBeds.pak")
	assert.FileExists(t, modDir+"/BetterBeds.uplugin")

	mods := env.statusJSON(t)
	assert.Equal(t, "MovedReadyToPublish", mods[0]["state"])

	_, err = env.run(t, "move", "PAL_BetterBeds")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	out, err = env.run(t, "stage", "BetterBeds", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "WorkshopStaging/BetterBeds")
	assert.FileExists(t, env.ws.AppDataDir+"/WorkshopStaging/BetterBeds/BetterBeds.pak")

	_, err = env.run(t, "remove", "BetterBeds")
	require.NoError(t, err)
	assert.NoDirExists(t, modDir)

	_, err = env.run(t, "remove", "BetterBeds")
	assert.True(t, errors.IsErrorCode(err, errors.ErrModNotMoved))
}

func TestMoveErrors(t *testing.T) {
	env := newCLIEnv(t)
	env.ws.WriteProjectFile("Mods/PAL_BetterBeds.wwmod.toml", betterBeds)
	env.ws.WriteProjectFile("Mods/PAL_NoChunk.wwmod.toml", `name = "No Chunk"`)

	_, err := env.run(t, "move", "PAL_NoChunk")
	assert.True(t, errors.IsErrorCode(err, errors.ErrChunkMissing))

	_, err = env.run(t, "move", "PAL_BetterBeds")
	assert.True(t, errors.IsErrorCode(err, errors.ErrPakNotFound))

	_, err = env.run(t, "move", "nope")
	assert.True(t, errors.IsErrorCode(err, errors.ErrModNotFound))
}

func TestShow(t *testing.T) {
	env := newCLIEnv(t)
	env.ws.WriteProjectFile("Mods/PAL_BetterBeds.wwmod.toml", betterBeds)

	out, err := env.run(t, "show", "PAL_BetterBeds", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "# Better Beds")
	assert.Contains(t, out, "No Pak Found")
}

func TestNewAndMigrate(t *testing.T) {
	env := newCLIEnv(t)

	_, err := env.run(t, "new", "PAL_Fresh", "--dir-name", "Fresh", "--chunk", "5")
	require.NoError(t, err)
	data, err := os.ReadFile(env.ws.ProjectPath("PAL_Fresh.wwmod.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Fresh")

	old := env.ws.WriteProjectFile("PAL_Old.wwmod.toml", "name = \"Old\"\nlegacy_chunk_id = 9\n")

	out, err := env.run(t, "migrate", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "PAL_Old")
	assert.NotContains(t, out, "PAL_Fresh")

	data, err = os.ReadFile(old)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[rules]")
	assert.Contains(t, string(data), "chunk_id = 9")

	out, err = env.run(t, "migrate", "--format", "text")
	require.NoError(t, err)
	assert.Equal(t, MsgNoMigrations+"\n", out)
}

func TestLogsCommands(t *testing.T) {
	env := newCLIEnv(t)
	logFile := env.ws.Path("logs/editor.log")

	_, err := env.run(t, "logs", "add", logFile, "--id", "editor", "--name", "Editor")
	require.NoError(t, err)
	_, err = env.run(t, "logs", "add", logFile, "--id", "editor")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	out, err := env.run(t, "logs", "add", logFile)
	require.NoError(t, err)
	assert.Contains(t, out, logFile)

	_, err = env.run(t, "logs", "disable", "editor")
	require.NoError(t, err)

	settings, err := config.Load(config.Options{Path: env.configPath})
	require.NoError(t, err)
	require.Len(t, settings.LogWatch, 2)
	assert.Equal(t, "editor", settings.LogWatch[0].ID)
	assert.False(t, settings.LogWatch[0].Enabled)
	assert.True(t, settings.LogWatch[1].Enabled)
	assert.Len(t, settings.LogWatch[1].ID, 36)

	_, err = env.run(t, "logs", "enable", "missing")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))

	out, err = env.run(t, "logs", "list", "--format", "json")
	require.NoError(t, err)
	var listed []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &listed))
	assert.Len(t, listed, 2)
}

func TestPathsEnsure(t *testing.T) {
	env := newCLIEnv(t)

	out, err := env.run(t, "paths", "ensure", "--format", "text")
	require.NoError(t, err)
	want := env.ws.AppDataDir + "/TempWorkshop"
	assert.Contains(t, out, want)
	assert.DirExists(t, want)

	settings, err := config.Load(config.Options{Path: env.configPath})
	require.NoError(t, err)
	assert.Equal(t, want, settings.TempDeployDirectory)

	out, err = env.run(t, "paths", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, want)
}

func TestPathsEnsureKeepsSetting(t *testing.T) {
	env := newCLIEnv(t)
	staging := env.ws.Path("Staging")
	settings := env.ws.Settings()
	settings.TempDeployDirectory = staging
	require.NoError(t, config.Save(env.ws.FS, env.configPath, settings))

	out, err := env.run(t, "paths", "ensure", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, staging)
	assert.DirExists(t, staging)
	assert.NoDirExists(t, env.ws.AppDataDir+"/TempWorkshop")

	loaded, err := config.Load(config.Options{Path: env.configPath})
	require.NoError(t, err)
	assert.Equal(t, staging, loaded.TempDeployDirectory)
}

func TestProjectOverrideIsNotSaved(t *testing.T) {
	env := newCLIEnv(t)
	other := env.ws.Path("Other")
	require.NoError(t, os.MkdirAll(other, 0755))

	_, err := env.run(t, "--project", other, "paths", "ensure")
	require.NoError(t, err)

	settings, err := config.Load(config.Options{Path: env.configPath})
	require.NoError(t, err)
	assert.Equal(t, env.ws.ProjectDir, settings.ProjectDirectory)
}

func TestConfigCommands(t *testing.T) {
	env := newCLIEnv(t)
	fresh := env.ws.Path("config/fresh.toml")

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--config", fresh, "config", "init", "--format", "text"})
	require.NoError(t, cmd.Execute())
	assert.FileExists(t, fresh)

	cmd = NewRootCmd()
	cmd.SetArgs([]string{"--config", fresh, "config", "init"})
	assert.True(t, errors.IsErrorCode(cmd.Execute(), errors.ErrConfigSave))

	got, err := env.run(t, "config", "path", "--format", "text")
	require.NoError(t, err)
	assert.Equal(t, env.configPath, strings.TrimSpace(got))

	got, err = env.run(t, "config", "show", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, got, "publish_app_id = 2489330")
}

func TestVersion(t *testing.T) {
	env := newCLIEnv(t)
	out, err := env.run(t, "version", "--format", "json")
	require.NoError(t, err)

	var info map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, "dev", info["version"])
}

func TestCompletion(t *testing.T) {
	env := newCLIEnv(t)
	out, err := env.run(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "wwmod")
}
