package testutil

import (
	"os"
	"path"
	"path/filepath"
	"testing"

	"github.com/zapsharkrs/whiskerwood-modtools/pkg/filesystem"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/paths"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/types"
)

// Workspace is a temporary project tree plus an app data root
type Workspace struct {
	// Root holds both trees and contains the safety token
	Root       string
	ProjectDir string
	AppDataDir string

	FS   types.FS
	Gate *filesystem.Gate

	t *testing.T
}

// NewWorkspace creates the directory layout under t.TempDir()
func NewWorkspace(t *testing.T) *Workspace {
	t.Helper()

	root := filepath.ToSlash(filepath.Join(t.TempDir(), "Whiskerwood-Workspace"))
	ws := &Workspace{
		Root:       root,
		ProjectDir: root + "/Project",
		AppDataDir: root + "/AppData/Whiskerwood",
		FS:         filesystem.NewOS(),
		t:          t,
	}
	ws.Gate = filesystem.NewGate(ws.FS, filesystem.SafetyToken)

	for _, dir := range []string{ws.ProjectDir, ws.AppDataDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create workspace directory %s: %v", dir, err)
		}
	}
	return ws
}

// Path joins rel onto the workspace root
func (ws *Workspace) Path(rel string) string {
	return path.Join(ws.Root, filepath.ToSlash(rel))
}

// ProjectPath joins rel onto the project directory
func (ws *Workspace) ProjectPath(rel string) string {
	return path.Join(ws.ProjectDir, filepath.ToSlash(rel))
}

// WriteFile writes content to an absolute path, creating parents
func (ws *Workspace) WriteFile(p, content string) string {
	ws.t.Helper()

	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		ws.t.Fatalf("Failed to create directory for %s: %v", p, err)
	}
	if err := os.WriteFile(p, []byte(content), 0644); err != nil {
		ws.t.Fatalf("Failed to write file %s: %v", p, err)
	}
	return filepath.ToSlash(p)
}

// WriteProjectFile writes content relative to the project directory
func (ws *Workspace) WriteProjectFile(rel, content string) string {
	ws.t.Helper()
	return ws.WriteFile(ws.ProjectPath(rel), content)
}

// WithFileTree writes every entry of tree under base
func (ws *Workspace) WithFileTree(base string, tree FileTree) {
	ws.t.Helper()
	for rel, content := range tree {
		ws.WriteFile(path.Join(base, rel), content)
	}
}

// FileTree maps relative paths to file contents
type FileTree map[string]string

// Settings returns settings pointing every directory into the workspace.
// Mods and logs stay derived from AppDataDirectory.
func (ws *Workspace) Settings() *types.DeploymentSettings {
	return &types.DeploymentSettings{
		ProjectDirectory: ws.ProjectDir,
		AppDataDirectory: ws.AppDataDir,
		PlatformName:     "Windows",
		PublishAppID:     2489330,
	}
}

// Resolver returns a path resolver over settings with an empty environment
func (ws *Workspace) Resolver(settings *types.DeploymentSettings) *paths.Resolver {
	return paths.NewResolver(settings,
		paths.WithEnv(func(string) string { return "" }),
		paths.WithWorkingDir(func() (string, error) { return ws.ProjectDir, nil }),
	)
}
