package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewModDescriptorDefaults(t *testing.T) {
	m := NewModDescriptor("PAL_MoreWhiskers")

	assert.Equal(t, "PAL_MoreWhiskers", m.AssetName)
	assert.True(t, m.UseDirNameForChunk)
	assert.Equal(t, ChunkUnset, m.OverrideChunkID)
	assert.Equal(t, ChunkUnset, m.LegacyChunkID)
	assert.Equal(t, 0, m.Rules.ChunkID)
}

func TestModDescriptorFallbacks(t *testing.T) {
	tests := []struct {
		name        string
		mod         ModDescriptor
		wantDisplay string
		wantDir     string
	}{
		{
			name:        "all set",
			mod:         ModDescriptor{AssetName: "PAL_A", Name: "More Whiskers", DirName: "MoreWhiskers"},
			wantDisplay: "More Whiskers",
			wantDir:     "MoreWhiskers",
		},
		{
			name:        "dir falls back to name",
			mod:         ModDescriptor{AssetName: "PAL_A", Name: "MoreWhiskers"},
			wantDisplay: "MoreWhiskers",
			wantDir:     "MoreWhiskers",
		},
		{
			name:        "name falls back to asset name",
			mod:         ModDescriptor{AssetName: "PAL_A"},
			wantDisplay: "PAL_A",
			wantDir:     "PAL_A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantDisplay, tt.mod.DisplayName())
			assert.Equal(t, tt.wantDir, tt.mod.EffectiveDirName())
			assert.Equal(t, tt.mod.AssetName, tt.mod.ID())
		})
	}
}

func TestTypeRules(t *testing.T) {
	s := DeploymentSettings{DefaultChunkID: 20}
	assert.Equal(t, ChunkRules{ChunkID: 20}, s.TypeRules())
}

func TestValidate(t *testing.T) {
	mod := NewModDescriptor("PAL_A")
	mod.DirName = "MoreWhiskers"
	assert.NoError(t, Validate(mod))

	mod.DirName = "../escape"
	err := Validate(mod)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "DirName")

	mod.DirName = "ok"
	mod.OverrideChunkID = -5
	err = Validate(mod)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "OverrideChunkID must be at least -1")
}

func TestValidateSettings(t *testing.T) {
	s := &DeploymentSettings{
		LogWatch: []LogWatchConfig{{ID: "a"}, {ID: "b"}},
	}
	assert.NoError(t, Validate(s))

	s.LogWatch = append(s.LogWatch, LogWatchConfig{ID: "a"})
	assert.Error(t, Validate(s))

	s.LogWatch = []LogWatchConfig{{ID: ""}}
	err := Validate(s)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "is required")

	s.LogWatch = nil
	s.PublishAppID = -1
	assert.Error(t, Validate(s))
}
