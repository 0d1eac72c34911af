// Package deploy copies built paks into the game's mods folder, removes
// them again, and stages moved mods for workshop upload. Every write goes
// through the Safety Gate.
package deploy

import (
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/chunk"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/descriptor"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/errors"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/filesystem"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/logging"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/pak"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/paths"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/types"
)

// Deployer runs deployment operations for one settings snapshot
type Deployer struct {
	resolver *paths.Resolver
	gate     *filesystem.Gate
}

// New creates a deployer
func New(resolver *paths.Resolver, gate *filesystem.Gate) *Deployer {
	return &Deployer{resolver: resolver, gate: gate}
}

// MoveResult describes a completed move
type MoveResult struct {
	ChunkID        int    `json:"chunkId" yaml:"chunkId"`
	SourcePak      string `json:"sourcePak" yaml:"sourcePak"`
	ModDir         string `json:"modDir" yaml:"modDir"`
	PakPath        string `json:"pakPath" yaml:"pakPath"`
	DescriptorPath string `json:"descriptorPath" yaml:"descriptorPath"`
}

// Moved reports whether the mod's pak already sits in its mods folder
func (d *Deployer) Moved(mod *types.ModDescriptor) bool {
	return filesystem.FileExists(d.gate.FS(), d.resolver.ModPakPath(mod))
}

// Move locates the mod's built pak under the project directory and copies
// it with a freshly written descriptor into the mod's folder. Existing files
// are overwritten.
func (d *Deployer) Move(mod *types.ModDescriptor) (*MoveResult, error) {
	logger := logging.GetLogger("deploy").With().Str("mod", mod.ID()).Logger()
	settings := d.resolver.Settings()

	projectDir := d.resolver.Project()
	if projectDir == "" || !filesystem.DirExists(d.gate.FS(), projectDir) {
		logger.Error().Str("project", projectDir).Msg("Project directory is not set or does not exist")
		return nil, errors.New(errors.ErrSettingMissing,
			"project directory is not set; set project_directory to the folder containing the .uproject").
			WithDetail("project", projectDir)
	}

	platform := d.resolver.PlatformHint()
	if platform == "" {
		logger.Warn().Msg("Platform name is empty, no platform will be preferred in the pak search")
	}

	chunkID := chunk.Resolve(mod, settings.TypeRules())
	if chunkID <= 0 {
		logger.Error().Msg("Chunk id is not set")
		return nil, errors.Newf(errors.ErrChunkMissing, "chunk id is not set for mod '%s'", mod.ID())
	}

	logger.Info().Str("root", projectDir).Str("pattern", pak.Pattern(chunkID)).Msg("Searching for source pak")
	source, ok := pak.Locate(chunkID, projectDir, platform)
	if !ok || !filesystem.FileExists(d.gate.FS(), source) {
		logger.Error().Str("pattern", pak.Pattern(chunkID)).Str("root", projectDir).Msg("No pak found")
		return nil, errors.Newf(errors.ErrPakNotFound,
			"could not find any pak matching '%s' under '%s'", pak.Pattern(chunkID), projectDir)
	}
	logger.Info().Str("source", source).Msg("Using source pak")
	defer logging.LogOperationStart(logger, "move")()

	result := &MoveResult{
		ChunkID:        chunkID,
		SourcePak:      source,
		ModDir:         d.resolver.ModDir(mod),
		PakPath:        d.resolver.ModPakPath(mod),
		DescriptorPath: d.resolver.ModDescriptorPath(mod),
	}

	if err := d.gate.EnsureDir(result.ModDir); err != nil {
		return nil, err
	}
	if err := d.gate.CopyFile(source, result.PakPath, true); err != nil {
		return nil, err
	}
	if err := descriptor.Write(d.gate, mod, settings.PublishAppID, result.DescriptorPath); err != nil {
		return nil, err
	}

	logger.Info().Str("modDir", result.ModDir).Msg("Moved mod")
	return result, nil
}

// Remove deletes a moved mod's folder
func (d *Deployer) Remove(mod *types.ModDescriptor) (string, error) {
	logger := logging.GetLogger("deploy").With().Str("mod", mod.ID()).Logger()

	if !d.Moved(mod) {
		logger.Warn().Msg("Mod is not moved, nothing to remove")
		return "", errors.Newf(errors.ErrModNotMoved, "mod '%s' is not moved; nothing to remove", mod.ID())
	}

	modDir := d.resolver.ModDir(mod)
	if err := d.gate.DeleteDir(modDir); err != nil {
		return "", err
	}
	logger.Info().Str("modDir", modDir).Msg("Removed mod")
	return modDir, nil
}

// Stage copies a moved mod's pak and descriptor into its workshop staging
// folder and returns that folder.
func (d *Deployer) Stage(mod *types.ModDescriptor) (string, error) {
	logger := logging.GetLogger("deploy").With().Str("mod", mod.ID()).Logger()

	if !d.Moved(mod) {
		logger.Warn().Msg("Mod is not moved, move it to the mods folder first")
		return "", errors.Newf(errors.ErrModNotMoved,
			"mod '%s' is not moved; move it to the mods folder first", mod.ID())
	}
	if d.resolver.Settings().PublishAppID <= 0 {
		logger.Warn().Msg("Publish app id is not configured")
		return "", errors.New(errors.ErrPublishNotConfigured, "publish_app_id must be greater than 0 to stage for the workshop")
	}

	stagingDir := d.resolver.StagingDir(mod)
	if err := d.gate.EnsureDir(stagingDir); err != nil {
		return "", err
	}

	dirName := mod.EffectiveDirName()
	if err := d.gate.CopyFile(d.resolver.ModPakPath(mod), paths.Join(stagingDir, dirName+pak.Extension), true); err != nil {
		return "", err
	}

	descriptorPath := d.resolver.ModDescriptorPath(mod)
	if filesystem.FileExists(d.gate.FS(), descriptorPath) {
		if err := d.gate.CopyFile(descriptorPath, paths.Join(stagingDir, dirName+descriptor.Extension), true); err != nil {
			return "", err
		}
	}

	logger.Info().Str("staging", stagingDir).Msg("Staged mod for workshop")
	return stagingDir, nil
}
