package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/errors"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/testutil"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/types"
)

func chunkedMod(chunkID int) *types.ModDescriptor {
	mod := types.NewModDescriptor("PAL_MoreWhiskers")
	mod.Name = "More Whiskers"
	mod.DirName = "MoreWhiskers"
	mod.Rules.ChunkID = chunkID
	return mod
}

func TestEvaluate(t *testing.T) {
	ws := testutil.NewWorkspace(t)
	settings := ws.Settings()
	checker := NewChecker(ws.Resolver(settings), ws.FS)
	mod := chunkedMod(5)

	report := checker.Evaluate(mod)
	assert.Equal(t, NoSourceArtifact, report.State)
	assert.Equal(t, 5, report.ChunkID)
	assert.Equal(t, ws.AppDataDir+"/Saved/mods/MoreWhiskers", report.ModDir)
	assert.False(t, report.Moved)

	ws.WriteProjectFile("Saved/StagedBuilds/Linux/pakchunk5-Linux.pak", "linux")
	src := ws.WriteProjectFile("Saved/StagedBuilds/Windows/pakchunk5-Windows.pak", "win")
	report = checker.Evaluate(mod)
	assert.Equal(t, ReadyToMove, report.State)
	assert.Equal(t, src, report.SourcePak)
	assert.Equal(t, Actions{Move: true}, report.Actions)

	ws.WriteFile(report.ModDir+"/MoreWhiskers.pak", "win")
	report = checker.Evaluate(mod)
	assert.Equal(t, MovedReadyToPublish, report.State)
	assert.Equal(t, "Moved | Ready for Deploy", report.Label)
	assert.Equal(t, Actions{Remove: true, Publish: true}, report.Actions)

	settings.PublishAppID = 0
	report = checker.Evaluate(mod)
	assert.Equal(t, MovedPublishNotConfigured, report.State)
	assert.Equal(t, Actions{Remove: true}, report.Actions)
}

func TestEvaluateMissingChunkWithMovedArtifact(t *testing.T) {
	ws := testutil.NewWorkspace(t)
	checker := NewChecker(ws.Resolver(ws.Settings()), ws.FS)
	mod := chunkedMod(0)

	ws.WriteFile(ws.AppDataDir+"/Saved/mods/MoreWhiskers/MoreWhiskers.pak", "x")
	report := checker.Evaluate(mod)
	assert.Equal(t, MissingChunkID, report.State)
	assert.Equal(t, -1, report.ChunkID)
	assert.True(t, report.Moved)
	assert.Equal(t, Actions{Remove: true}, report.Actions)
}

func TestEvaluateUsesTypeDefault(t *testing.T) {
	ws := testutil.NewWorkspace(t)
	settings := ws.Settings()
	settings.DefaultChunkID = 20
	checker := NewChecker(ws.Resolver(settings), ws.FS)

	report := checker.Evaluate(chunkedMod(0))
	assert.Equal(t, 20, report.ChunkID)
	assert.Equal(t, NoSourceArtifact, report.State)
}

func TestDisplayState(t *testing.T) {
	ws := testutil.NewWorkspace(t)
	checker := NewChecker(ws.Resolver(ws.Settings()), ws.FS)
	list := []*types.ModDescriptor{chunkedMod(5)}

	ws.WriteProjectFile("Saved/pakchunk5-Windows.pak", "x")
	ds, err := checker.DisplayState(list, "PAL_MoreWhiskers")
	require.NoError(t, err)
	assert.Equal(t, ReadyToMove, ds.Status)
	assert.True(t, ds.EnabledActions.Move)

	_, err = checker.DisplayState(list, "missing")
	assert.True(t, errors.IsErrorCode(err, errors.ErrModNotFound))

	reports := checker.EvaluateAll(list)
	require.Len(t, reports, 1)
	assert.Equal(t, ReadyToMove, reports[0].State)
}
