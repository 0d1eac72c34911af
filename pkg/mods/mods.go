// Package mods discovers, loads and saves the hand-authored mod descriptor
// files (*.wwmod.toml) that live inside the project tree.
package mods

import (
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/chunk"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/errors"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/filesystem"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/logging"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/types"
)

// FileSuffix identifies mod descriptor files
const FileSuffix = ".wwmod.toml"

// DefaultDirName is the folder name given to freshly scaffolded mods
const DefaultDirName = "NewMod"

// skipDirs are never descended into during discovery
var skipDirs = map[string]bool{
	".git":             true,
	"Saved":            true,
	"Intermediate":     true,
	"Binaries":         true,
	"DerivedDataCache": true,
}

// AssetName derives the asset name from a descriptor file path
func AssetName(file string) string {
	return strings.TrimSuffix(path.Base(strings.ReplaceAll(file, `\`, "/")), FileSuffix)
}

// Discover returns every descriptor file under projectDir in lexical order
func Discover(projectDir string) ([]string, error) {
	logger := logging.GetLogger("mods")
	if projectDir == "" {
		return nil, errors.New(errors.ErrSettingMissing, "project directory is not set")
	}

	var found []string
	err := filepath.WalkDir(projectDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == projectDir {
				return err
			}
			logger.Debug().Err(err).Str("path", p).Msg("Skipping unreadable entry")
			return nil
		}
		if d.IsDir() {
			if p != projectDir && skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(d.Name(), FileSuffix) {
			found = append(found, filepath.ToSlash(p))
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirNotFound, "failed to scan project directory '%s'", projectDir)
	}

	logger.Debug().Str("root", projectDir).Int("count", len(found)).Msg("Discovered mod descriptors")
	return found, nil
}

// Load parses one descriptor file over the authoring defaults and runs the
// legacy chunk migration step.
func Load(fsys types.FS, file string) (*types.ModDescriptor, error) {
	data, err := fsys.ReadFile(file)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileNotFound, "failed to read mod file '%s'", file)
	}

	mod := types.NewModDescriptor(AssetName(file))
	if err := toml.Unmarshal(data, mod); err != nil {
		return nil, errors.Wrapf(err, errors.ErrModParse, "failed to parse mod file '%s'", file).
			WithDetail("path", file)
	}
	if err := types.Validate(mod); err != nil {
		return nil, errors.Wrapf(err, errors.ErrModParse, "invalid mod file '%s'", file).
			WithDetail("path", file)
	}
	mod.SourcePath = filepath.ToSlash(file)

	mod.Migrated = chunk.MigrateLegacy(mod)
	return mod, nil
}

// LoadAll discovers and loads every mod under projectDir. Files that fail to
// load are logged and skipped. The result is sorted by asset name.
func LoadAll(fsys types.FS, projectDir string) ([]*types.ModDescriptor, error) {
	logger := logging.GetLogger("mods")

	files, err := Discover(projectDir)
	if err != nil {
		return nil, err
	}

	mods := make([]*types.ModDescriptor, 0, len(files))
	for _, file := range files {
		mod, err := Load(fsys, file)
		if err != nil {
			logger.Warn().Err(err).Str("path", file).Msg("Skipping mod file")
			continue
		}
		mods = append(mods, mod)
	}

	sort.SliceStable(mods, func(i, j int) bool { return mods[i].AssetName < mods[j].AssetName })
	return mods, nil
}

// Encode serializes a mod to its TOML form
func Encode(mod *types.ModDescriptor) ([]byte, error) {
	data, err := toml.Marshal(mod)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrModParse, "failed to encode mod '%s'", mod.ID())
	}
	return data, nil
}

// Save writes mod back to its SourcePath through the gate
func Save(gate *filesystem.Gate, mod *types.ModDescriptor) error {
	if mod.SourcePath == "" {
		return errors.Newf(errors.ErrInvalidInput, "mod '%s' has no source path", mod.ID())
	}

	data, err := Encode(mod)
	if err != nil {
		return err
	}
	if err := gate.WriteFile(mod.SourcePath, data, true); err != nil {
		return err
	}
	mod.Migrated = false
	logger := logging.GetLogger("mods")
	logger.Info().Str("mod", mod.ID()).Str("path", mod.SourcePath).Msg("Saved mod file")
	return nil
}

// SaveMigrated persists every mod whose legacy chunk id was migrated on
// load and returns the ones written. It stops at the first failure.
func SaveMigrated(gate *filesystem.Gate, list []*types.ModDescriptor) ([]*types.ModDescriptor, error) {
	var saved []*types.ModDescriptor
	for _, mod := range list {
		if !mod.Migrated {
			continue
		}
		if err := Save(gate, mod); err != nil {
			return saved, err
		}
		saved = append(saved, mod)
	}
	return saved, nil
}

// Find looks a mod up by asset name, then dir name, then display name
func Find(mods []*types.ModDescriptor, id string) (*types.ModDescriptor, error) {
	for _, match := range []func(*types.ModDescriptor) string{
		(*types.ModDescriptor).ID,
		(*types.ModDescriptor).EffectiveDirName,
		(*types.ModDescriptor).DisplayName,
	} {
		for _, mod := range mods {
			if match(mod) == id {
				return mod, nil
			}
		}
	}
	return nil, errors.Newf(errors.ErrModNotFound, "mod '%s' not found", id)
}

// Option customizes a scaffolded mod before it is written
type Option func(*types.ModDescriptor)

// New scaffolds <dir>/<name>.wwmod.toml and returns the written mod. An
// existing file is never overwritten.
func New(gate *filesystem.Gate, dir, name string, opts ...Option) (*types.ModDescriptor, error) {
	if name == "" {
		return nil, errors.New(errors.ErrInvalidInput, "mod name is required")
	}

	mod := types.NewModDescriptor(name)
	mod.Name = name
	mod.Version = "1.0.0"
	mod.DirName = DefaultDirName
	for _, opt := range opts {
		opt(mod)
	}
	if err := types.Validate(mod); err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "invalid mod")
	}

	mod.SourcePath = path.Join(filepath.ToSlash(dir), name+FileSuffix)
	data, err := Encode(mod)
	if err != nil {
		return nil, err
	}
	if err := gate.WriteFile(mod.SourcePath, data, false); err != nil {
		return nil, err
	}
	logger := logging.GetLogger("mods")
	logger.Info().Str("mod", mod.ID()).Str("path", mod.SourcePath).Msg("Created mod file")
	return mod, nil
}
