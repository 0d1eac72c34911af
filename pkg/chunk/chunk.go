// Package chunk resolves the effective chunk id of a mod.
//
// Precedence, first positive value wins:
//
//  1. OverrideChunkID, only when UseDirNameForChunk is false
//  2. the mod's own Rules.ChunkID
//  3. LegacyChunkID
//  4. the type-level default rule
//
// Otherwise the mod has no chunk (Unset).
package chunk

import (
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/logging"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/types"
)

// Unset is returned when no tier yields a positive id
const Unset = types.ChunkUnset

// Resolve returns the effective chunk id. It never mutates mod.
func Resolve(mod *types.ModDescriptor, typeDefault types.ChunkRules) int {
	if mod == nil {
		return Unset
	}
	if !mod.UseDirNameForChunk && mod.OverrideChunkID > 0 {
		return mod.OverrideChunkID
	}
	if mod.Rules.ChunkID > 0 {
		return mod.Rules.ChunkID
	}
	if mod.LegacyChunkID > 0 {
		return mod.LegacyChunkID
	}
	if typeDefault.ChunkID > 0 {
		return typeDefault.ChunkID
	}
	return Unset
}

// MigrateLegacy copies a positive legacy id forward into the mod's rules
// when the rules carry none. It reports whether the mod changed.
func MigrateLegacy(mod *types.ModDescriptor) bool {
	if mod == nil || mod.LegacyChunkID <= 0 || mod.Rules.ChunkID > 0 {
		return false
	}

	mod.Rules.ChunkID = mod.LegacyChunkID
	logger := logging.GetLogger("chunk")
	logger.Info().
		Str("mod", mod.ID()).
		Int("chunkId", mod.Rules.ChunkID).
		Msg("Migrated legacy chunk id into mod rules")
	return true
}
