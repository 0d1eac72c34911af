package paths

import (
	"os"
	"strings"

	"github.com/zapsharkrs/whiskerwood-modtools/pkg/pak"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/types"
)

// Environment variable names
const (
	// EnvLocalAppData seeds the default AppData root
	EnvLocalAppData = "LOCALAPPDATA"
)

// Fixed directory and file names of the game's on-disk layout. These are
// dictated by the game and are not user-configurable.
const (
	GameDirName         = "Whiskerwood"
	SavedDirName        = "Saved"
	ModsDirName         = "mods"
	LogsDirName         = "Logs"
	TempWorkshopDirName = "TempWorkshop"
	StagingDirName      = "WorkshopStaging"

	// DescriptorExtension is the extension of a deployed mod's JSON descriptor
	DescriptorExtension = ".uplugin"
)

// Source records how a resolved directory was obtained
type Source string

const (
	SourceSetting  Source = "setting"
	SourceDerived  Source = "derived"
	SourceDetected Source = "detected"
	SourceUnset    Source = "unset"
)

// Resolver derives effective directories from DeploymentSettings
type Resolver struct {
	settings *types.DeploymentSettings
	getenv   func(string) string
	getwd    func() (string, error)
}

// Option customizes a Resolver
type Option func(*Resolver)

// WithEnv replaces the environment lookup
func WithEnv(getenv func(string) string) Option {
	return func(r *Resolver) { r.getenv = getenv }
}

// WithWorkingDir replaces the working directory lookup used as the
// project fallback
func WithWorkingDir(getwd func() (string, error)) Option {
	return func(r *Resolver) { r.getwd = getwd }
}

// NewResolver creates a resolver over settings. A nil settings value is
// treated as all-empty.
func NewResolver(settings *types.DeploymentSettings, opts ...Option) *Resolver {
	if settings == nil {
		settings = &types.DeploymentSettings{}
	}
	r := &Resolver{
		settings: settings,
		getenv:   os.Getenv,
		getwd:    os.Getwd,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Settings returns the settings the resolver reads from
func (r *Resolver) Settings() *types.DeploymentSettings {
	return r.settings
}

// Project returns the project directory: the setting made absolute, or
// the current working directory.
func (r *Resolver) Project() string {
	dir, _ := r.project()
	return dir
}

func (r *Resolver) project() (string, Source) {
	if r.settings.ProjectDirectory != "" {
		return r.absolute(r.settings.ProjectDirectory), SourceSetting
	}
	wd, err := r.getwd()
	if err != nil {
		return "", SourceUnset
	}
	return Normalize(wd), SourceDerived
}

// AppData returns the game's local application data root
func (r *Resolver) AppData() string {
	dir, _ := r.appData()
	return dir
}

func (r *Resolver) appData() (string, Source) {
	if r.settings.AppDataDirectory != "" {
		return Normalize(r.settings.AppDataDirectory), SourceSetting
	}
	if r.settings.ModsDirectory != "" {
		// <AppData>/Saved/mods -> <AppData>
		return Parent(Parent(r.settings.ModsDirectory)), SourceDerived
	}
	return Join(r.localAppDataRoot(), GameDirName), SourceDerived
}

func (r *Resolver) localAppDataRoot() string {
	if root := r.getenv(EnvLocalAppData); root != "" {
		return Normalize(root)
	}
	return Join(r.Project(), SavedDirName)
}

// Mods returns the mods root
func (r *Resolver) Mods() string {
	dir, _ := r.mods()
	return dir
}

func (r *Resolver) mods() (string, Source) {
	if r.settings.ModsDirectory != "" {
		return Normalize(r.settings.ModsDirectory), SourceSetting
	}
	return Join(r.AppData(), SavedDirName, ModsDirName), SourceDerived
}

// Logs returns the game's log directory
func (r *Resolver) Logs() string {
	dir, _ := r.logs()
	return dir
}

func (r *Resolver) logs() (string, Source) {
	if r.settings.BaseLogsDirectory != "" {
		return Normalize(r.settings.BaseLogsDirectory), SourceSetting
	}
	return Join(r.AppData(), SavedDirName, LogsDirName), SourceDerived
}

// TempDeploy returns the temporary workshop deploy directory
func (r *Resolver) TempDeploy() string {
	dir, _ := r.tempDeploy()
	return dir
}

func (r *Resolver) tempDeploy() (string, Source) {
	if r.settings.TempDeployDirectory != "" {
		return Normalize(r.settings.TempDeployDirectory), SourceSetting
	}
	return r.DefaultTempDeploy(), SourceDerived
}

// DefaultTempDeploy returns the derived temp deploy directory, ignoring
// any setting
func (r *Resolver) DefaultTempDeploy() string {
	return Join(r.AppData(), TempWorkshopDirName)
}

// Pak returns the pak output directory. Without a setting it scans the
// project tree and returns the directory of the first pak found, or "".
func (r *Resolver) Pak() string {
	dir, _ := r.pak()
	return dir
}

func (r *Resolver) pak() (string, Source) {
	if r.settings.PakDirectory != "" {
		return Normalize(r.settings.PakDirectory), SourceSetting
	}
	if dir := pak.FindAnyDir(r.Project()); dir != "" {
		return Normalize(dir), SourceDetected
	}
	return "", SourceUnset
}

// Staging returns the workshop staging root
func (r *Resolver) Staging() string {
	return Join(r.AppData(), StagingDirName)
}

// ModDir returns <Mods>/<dirName> for mod
func (r *Resolver) ModDir(mod *types.ModDescriptor) string {
	if mod == nil {
		return ""
	}
	return Join(r.Mods(), mod.EffectiveDirName())
}

// ModPakPath returns <Mods>/<dirName>/<dirName>.pak
func (r *Resolver) ModPakPath(mod *types.ModDescriptor) string {
	if mod == nil {
		return ""
	}
	return Join(r.ModDir(mod), mod.EffectiveDirName()+pak.Extension)
}

// ModDescriptorPath returns <Mods>/<dirName>/<dirName>.uplugin
func (r *Resolver) ModDescriptorPath(mod *types.ModDescriptor) string {
	if mod == nil {
		return ""
	}
	return Join(r.ModDir(mod), mod.EffectiveDirName()+DescriptorExtension)
}

// StagingDir returns <AppData>/WorkshopStaging/<dirName>
func (r *Resolver) StagingDir(mod *types.ModDescriptor) string {
	if mod == nil {
		return ""
	}
	return Join(r.Staging(), mod.EffectiveDirName())
}

// PlatformHint is the human platform name used to break pak ties
func (r *Resolver) PlatformHint() string {
	return r.settings.PlatformName
}

// UATPlatform maps the human platform name to the packaging tool's
// platform token. Unknown or empty names map to Win64.
func (r *Resolver) UATPlatform() string {
	human := r.settings.PlatformName
	if human == "" {
		human = "Windows"
	}
	lower := strings.ToLower(human)

	switch {
	case strings.Contains(lower, "win"):
		return "Win64"
	case strings.Contains(lower, "linux"):
		return "Linux"
	case strings.Contains(lower, "mac"):
		return "Mac"
	default:
		return "Win64"
	}
}

func (r *Resolver) absolute(p string) string {
	p = Normalize(p)
	if IsAbsolute(p) {
		return p
	}
	wd, err := r.getwd()
	if err != nil {
		return p
	}
	return Join(wd, p)
}

// IsAbsolute reports whether p is absolute in either Unix or Windows form
func IsAbsolute(p string) bool {
	p = strings.ReplaceAll(p, "\\", "/")
	if strings.HasPrefix(p, "/") {
		return true
	}
	return len(p) >= 3 && p[1] == ':' && p[2] == '/'
}
