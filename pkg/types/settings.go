package types

// DeploymentSettings holds the per-user, per-workstation configuration.
// Every directory is optional; pkg/paths derives a fallback for each.
type DeploymentSettings struct {
	ProjectDirectory    string `koanf:"project_directory" toml:"project_directory" json:"projectDirectory" yaml:"projectDirectory"`
	ModsDirectory       string `koanf:"mods_directory" toml:"mods_directory" json:"modsDirectory" yaml:"modsDirectory"`
	AppDataDirectory    string `koanf:"app_data_directory" toml:"app_data_directory" json:"appDataDirectory" yaml:"appDataDirectory"`
	BaseLogsDirectory   string `koanf:"base_logs_directory" toml:"base_logs_directory" json:"baseLogsDirectory" yaml:"baseLogsDirectory"`
	TempDeployDirectory string `koanf:"temp_deploy_directory" toml:"temp_deploy_directory" json:"tempDeployDirectory" yaml:"tempDeployDirectory"`
	PakDirectory        string `koanf:"pak_directory" toml:"pak_directory" json:"pakDirectory" yaml:"pakDirectory"`
	EngineDirectory     string `koanf:"engine_directory" toml:"engine_directory" json:"engineDirectory" yaml:"engineDirectory"`

	// PlatformName is the human platform name ("Windows", "Linux", ...)
	PlatformName string `koanf:"platform_name" toml:"platform_name" json:"platformName" yaml:"platformName"`

	// PublishAppID must be > 0 to permit publish-stage actions
	PublishAppID int `koanf:"publish_app_id" toml:"publish_app_id" json:"publishAppId" yaml:"publishAppId" validate:"gte=0"`

	// DefaultChunkID is the type-level chunk rule applied when a mod has none
	DefaultChunkID int `koanf:"default_chunk_id" toml:"default_chunk_id" json:"defaultChunkId" yaml:"defaultChunkId"`

	LogWatch []LogWatchConfig `koanf:"log_watch" toml:"log_watch" json:"logWatch" yaml:"logWatch" validate:"unique=ID,dive"`
}

// TypeRules returns the type-level default chunk rule
func (s *DeploymentSettings) TypeRules() ChunkRules {
	return ChunkRules{ChunkID: s.DefaultChunkID}
}

// LogWatchConfig is one watched log file
type LogWatchConfig struct {
	ID          string `koanf:"id" toml:"id" json:"id" yaml:"id" validate:"required"`
	DisplayName string `koanf:"display_name" toml:"display_name" json:"displayName" yaml:"displayName"`
	FilePath    string `koanf:"file_path" toml:"file_path" json:"filePath" yaml:"filePath"`
	Enabled     bool   `koanf:"enabled" toml:"enabled" json:"enabled" yaml:"enabled"`
}
