package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/errors"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/logging"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/types"
)

const (
	// EnvPrefix namespaces settings environment variables
	EnvPrefix = "WWMOD_"
	// FileName of the user settings file
	FileName = "settings.toml"

	logWatchKey = "log_watch"
	enabledKey  = "enabled"
)

// Options controls where settings come from
type Options struct {
	// Path of the settings file. Empty means DefaultPath().
	Path string
	// Overrides are applied last, keyed like the settings file
	Overrides map[string]interface{}
}

// DefaultPath returns <config home>/wwmod/settings.toml.
// XDG_CONFIG_HOME is read on every call so tests can redirect it.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = xdg.ConfigHome
	}
	return filepath.Join(configHome, "wwmod", FileName)
}

// Load builds the effective settings
func Load(opts Options) (*types.DeploymentSettings, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load default settings")
	}

	// 2. User file
	path := opts.Path
	if path == "" {
		path = DefaultPath()
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load settings from %s", path).
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded settings file")
	} else if opts.Path != "" {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "settings file %s not found", path).
			WithDetail("path", path)
	}

	// 3. Environment
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment settings")
	}

	// 4. Overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply settings overrides")
		}
	}

	if err := defaultLogWatchEnabled(k); err != nil {
		return nil, err
	}

	settings, err := unmarshal(k)
	if err != nil {
		return nil, err
	}
	if err := types.Validate(settings); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigInvalid, "invalid settings").WithDetail("path", path)
	}
	return settings, nil
}

// defaultLogWatchEnabled turns on every log watch entry that does not say
// otherwise
func defaultLogWatchEnabled(k *koanf.Koanf) error {
	raw := k.Get(logWatchKey)
	if raw == nil {
		return nil
	}

	var entries []map[string]interface{}
	switch list := raw.(type) {
	case []map[string]interface{}:
		entries = list
	case []interface{}:
		for _, item := range list {
			entry, ok := item.(map[string]interface{})
			if !ok {
				return errors.New(errors.ErrConfigInvalid, "log_watch entries must be tables")
			}
			entries = append(entries, entry)
		}
	default:
		return errors.New(errors.ErrConfigInvalid, "log_watch must be an array of tables")
	}

	fixed := make([]interface{}, 0, len(entries))
	for _, entry := range entries {
		if _, ok := entry[enabledKey]; !ok {
			entry[enabledKey] = true
		}
		fixed = append(fixed, entry)
	}

	if err := k.Load(confmap.Provider(map[string]interface{}{logWatchKey: fixed}, "."), nil); err != nil {
		return errors.Wrap(err, errors.ErrConfigLoad, "failed to apply log watch defaults")
	}
	return nil
}

func unmarshal(k *koanf.Koanf) (*types.DeploymentSettings, error) {
	var settings types.DeploymentSettings
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &settings,
			WeaklyTypedInput: true,
			TagName:          "koanf",
		},
	}
	if err := k.UnmarshalWithConf("", &settings, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode settings")
	}
	return &settings, nil
}
