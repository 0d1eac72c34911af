package types

// ChunkUnset is the chunk id sentinel meaning "no chunk configured"
const ChunkUnset = -1

// ChunkRules is the cooking rule carried by a mod or inherited from the
// type-level default.
type ChunkRules struct {
	ChunkID int `toml:"chunk_id" json:"chunkId" yaml:"chunkId" validate:"gte=-1"`
}

// ModDescriptor describes one mod. Instances are authored by hand in
// *.wwmod.toml files inside the project tree.
type ModDescriptor struct {
	// AssetName is the internal name of the descriptor (file stem).
	AssetName string `toml:"-" json:"assetName" yaml:"assetName"`

	Name        string `toml:"name" json:"name" yaml:"name"`
	Description string `toml:"description" json:"description" yaml:"description"`
	Version     string `toml:"version" json:"version" yaml:"version"`
	CreatedBy   string `toml:"created_by" json:"createdBy" yaml:"createdBy"`

	// DirName is the folder name under the mods root
	DirName string `toml:"dir_name" json:"dirName" yaml:"dirName" validate:"omitempty,excludesall=/\\:"`

	// WorkshopID is the external publish id; empty means not yet published
	WorkshopID string `toml:"workshop_id" json:"workshopId,omitempty" yaml:"workshopId,omitempty"`

	UseDirNameForChunk bool       `toml:"use_dir_name_for_chunk" json:"useDirNameForChunk" yaml:"useDirNameForChunk"`
	OverrideChunkID    int        `toml:"override_chunk_id" json:"overrideChunkId" yaml:"overrideChunkId" validate:"gte=-1"`
	LegacyChunkID      int        `toml:"legacy_chunk_id" json:"legacyChunkId" yaml:"legacyChunkId" validate:"gte=-1"`
	Rules              ChunkRules `toml:"rules" json:"rules" yaml:"rules"`

	// SourcePath is where the descriptor was loaded from
	SourcePath string `toml:"-" json:"sourcePath,omitempty" yaml:"sourcePath,omitempty"`

	// Migrated is set when loading moved a legacy chunk id forward and the
	// file on disk has not caught up yet
	Migrated bool `toml:"-" json:"-" yaml:"-"`
}

// NewModDescriptor returns a descriptor with the authoring defaults applied
func NewModDescriptor(assetName string) *ModDescriptor {
	return &ModDescriptor{
		AssetName:          assetName,
		UseDirNameForChunk: true,
		OverrideChunkID:    ChunkUnset,
		LegacyChunkID:      ChunkUnset,
	}
}

// DisplayName is the mod name, falling back to the asset name
func (m *ModDescriptor) DisplayName() string {
	if m.Name != "" {
		return m.Name
	}
	return m.AssetName
}

// EffectiveDirName is the mods-root folder name, falling back to DisplayName
func (m *ModDescriptor) EffectiveDirName() string {
	if m.DirName != "" {
		return m.DirName
	}
	return m.DisplayName()
}

// ID is the stable identifier used by lookups and display state queries
func (m *ModDescriptor) ID() string {
	return m.AssetName
}
