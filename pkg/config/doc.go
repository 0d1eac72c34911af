// Package config loads and saves the per-user deployment settings.
//
// Settings are layered with koanf, later layers winning:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user settings file, if present
//  3. WWMOD_* environment variables (WWMOD_PUBLISH_APP_ID -> publish_app_id)
//  4. explicit overrides supplied by the caller (command-line flags)
//
// The result is decoded with mapstructure and checked with validator before
// it is returned.
package config
