package config

import (
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/errors"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/filesystem"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/logging"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/types"
)

// Save writes settings to path as TOML. The settings file is host state
// outside the game tree, so it bypasses the filesystem.Gate token check.
func Save(fsys types.FS, path string, settings *types.DeploymentSettings) error {
	if path == "" {
		path = DefaultPath()
	}
	if err := types.Validate(settings); err != nil {
		return errors.Wrap(err, errors.ErrConfigInvalid, "refusing to save invalid settings")
	}

	data, err := toml.Marshal(settings)
	if err != nil {
		return errors.Wrap(err, errors.ErrConfigSave, "failed to encode settings")
	}
	if err := write(fsys, path, data); err != nil {
		return err
	}
	logger := logging.GetLogger("config")
	logger.Info().Str("path", path).Msg("Saved settings")
	return nil
}

// Init writes the commented template to path. An existing file is kept
// unless force is set.
func Init(fsys types.FS, path string, force bool) (string, error) {
	if path == "" {
		path = DefaultPath()
	}
	if !force && filesystem.FileExists(fsys, path) {
		return path, errors.Newf(errors.ErrConfigSave, "settings file %s already exists", path).
			WithDetail("path", path)
	}
	if err := write(fsys, path, settingsTemplate); err != nil {
		return path, err
	}
	logger := logging.GetLogger("config")
	logger.Info().Str("path", path).Msg("Wrote settings template")
	return path, nil
}

func write(fsys types.FS, path string, data []byte) error {
	if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrConfigSave, "failed to create settings directory for %s", path)
	}
	if err := fsys.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrConfigSave, "failed to write settings to %s", path)
	}
	return nil
}
