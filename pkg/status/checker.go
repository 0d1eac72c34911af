package status

import (
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/chunk"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/filesystem"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/logging"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/mods"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/pak"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/paths"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/types"
)

// Report is the evaluated status of one mod
type Report struct {
	ModID     string  `json:"modId" yaml:"modId"`
	Name      string  `json:"name" yaml:"name"`
	ChunkID   int     `json:"chunkId" yaml:"chunkId"`
	DirName   string  `json:"dirName" yaml:"dirName"`
	ModDir    string  `json:"modDir" yaml:"modDir"`
	SourcePak string  `json:"sourcePak,omitempty" yaml:"sourcePak,omitempty"`
	Moved     bool    `json:"moved" yaml:"moved"`
	State     State   `json:"state" yaml:"state"`
	Label     string  `json:"label" yaml:"label"`
	Actions   Actions `json:"actions" yaml:"actions"`
}

// DisplayState is the narrow read-only view a presentation layer consumes
type DisplayState struct {
	Status         State   `json:"status" yaml:"status"`
	EnabledActions Actions `json:"enabledActions" yaml:"enabledActions"`
}

// Checker evaluates mods against the resolved directories
type Checker struct {
	resolver *paths.Resolver
	fs       types.FS
}

// NewChecker creates a checker
func NewChecker(resolver *paths.Resolver, fsys types.FS) *Checker {
	return &Checker{resolver: resolver, fs: fsys}
}

// Moved reports whether the mod's pak is present in its mods-root folder
func (c *Checker) Moved(mod *types.ModDescriptor) bool {
	return filesystem.FileExists(c.fs, c.resolver.ModPakPath(mod))
}

// Evaluate computes the mod's current report
func (c *Checker) Evaluate(mod *types.ModDescriptor) Report {
	settings := c.resolver.Settings()
	chunkID := chunk.Resolve(mod, settings.TypeRules())

	var source string
	hasSource := false
	if chunkID > 0 {
		source, hasSource = pak.Locate(chunkID, c.resolver.Project(), c.resolver.PlatformHint())
	}

	moved := c.Moved(mod)
	state := Classify(chunkID, hasSource, moved, settings.PublishAppID)

	logger := logging.WithFields(map[string]interface{}{"mod": mod.ID(), "chunk": chunkID})
	logger.Debug().Str("state", state.String()).Str("source", source).Bool("moved", moved).Msg("Evaluated mod")

	return Report{
		ModID:     mod.ID(),
		Name:      mod.DisplayName(),
		ChunkID:   chunkID,
		DirName:   mod.EffectiveDirName(),
		ModDir:    c.resolver.ModDir(mod),
		SourcePak: source,
		Moved:     moved,
		State:     state,
		Label:     state.Label(),
		Actions:   ActionsFor(state, moved),
	}
}

// EvaluateAll evaluates every mod in order
func (c *Checker) EvaluateAll(list []*types.ModDescriptor) []Report {
	reports := make([]Report, 0, len(list))
	for _, mod := range list {
		reports = append(reports, c.Evaluate(mod))
	}
	return reports
}

// DisplayState looks modID up in list and returns its status and enabled
// actions.
func (c *Checker) DisplayState(list []*types.ModDescriptor, modID string) (DisplayState, error) {
	mod, err := mods.Find(list, modID)
	if err != nil {
		return DisplayState{}, err
	}
	report := c.Evaluate(mod)
	return DisplayState{Status: report.State, EnabledActions: report.Actions}, nil
}
