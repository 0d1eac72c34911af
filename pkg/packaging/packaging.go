// Package packaging runs the engine's automation tool to cook and pak the
// project.
package packaging

import (
	"context"
	"io"
	"os/exec"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/zapsharkrs/whiskerwood-modtools/pkg/errors"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/filesystem"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/logging"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/paths"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/types"
)

// ProjectExtension identifies the project file
const ProjectExtension = ".uproject"

// DefaultPollInterval is how often a running tool is checked on
const DefaultPollInterval = time.Second

// Runner launches one BuildCookRun invocation
type Runner struct {
	FS         types.FS
	EngineDir  string
	ProjectDir string
	// Platform is the tool's platform token (Win64, Linux, Mac)
	Platform string

	// Tool overrides the tool path derived from EngineDir
	Tool string

	Stdout io.Writer
	Stderr io.Writer

	PollInterval time.Duration
}

// NewRunner builds a runner from the resolved directories
func NewRunner(fsys types.FS, resolver *paths.Resolver) *Runner {
	return &Runner{
		FS:           fsys,
		EngineDir:    paths.Normalize(resolver.Settings().EngineDirectory),
		ProjectDir:   resolver.Project(),
		Platform:     resolver.UATPlatform(),
		PollInterval: DefaultPollInterval,
	}
}

// UATPath returns the automation tool script path
func (r *Runner) UATPath() string {
	if r.Tool != "" {
		return paths.Normalize(r.Tool)
	}
	if r.EngineDir == "" {
		return ""
	}
	script := "RunUAT.sh"
	if runtime.GOOS == "windows" {
		script = "RunUAT.bat"
	}
	return paths.Join(r.EngineDir, "Build", "BatchFiles", script)
}

// ProjectFile returns the first project file in ProjectDir by name
func (r *Runner) ProjectFile() (string, error) {
	if r.ProjectDir == "" {
		return "", errors.New(errors.ErrSettingMissing, "project directory is not set")
	}

	entries, err := r.FS.ReadDir(r.ProjectDir)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrDirNotFound, "failed to read project directory '%s'", r.ProjectDir)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ProjectExtension) {
			names = append(names, entry.Name())
		}
	}
	if len(names) == 0 {
		return "", errors.Newf(errors.ErrFileNotFound, "no %s file in '%s'", ProjectExtension, r.ProjectDir)
	}
	sort.Strings(names)
	return paths.Join(r.ProjectDir, names[0]), nil
}

// Args returns the tool arguments for projectFile
func (r *Runner) Args(projectFile string) []string {
	platform := r.Platform
	if platform == "" {
		platform = "Win64"
	}
	return []string{
		"BuildCookRun",
		"-project=" + projectFile,
		"-noP4",
		"-clientconfig=Development",
		"-serverconfig=Development",
		"-nocompile",
		"-stage",
		"-pak",
		"-package",
		"-platform=" + platform,
		"-cook",
		"-skipeditorcontent",
	}
}

// Run launches the tool and blocks until it exits. Only exit code 0 is
// success.
func (r *Runner) Run(ctx context.Context) error {
	logger := logging.GetLogger("packaging")

	tool := r.UATPath()
	if tool == "" {
		return errors.New(errors.ErrSettingMissing, "engine directory is not set")
	}
	if !filesystem.FileExists(r.FS, tool) {
		logger.Error().Str("tool", tool).Msg("Automation tool not found")
		return errors.Newf(errors.ErrFileNotFound, "automation tool not found at '%s'", tool)
	}

	projectFile, err := r.ProjectFile()
	if err != nil {
		return err
	}

	args := r.Args(projectFile)
	logger.Info().Str("tool", tool).Strs("args", args).Msg("Starting automation tool")

	cmd := exec.CommandContext(ctx, tool, args...)
	cmd.Dir = r.ProjectDir
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	if err := cmd.Start(); err != nil {
		logger.Error().Err(err).Msg("Failed to start automation tool")
		return errors.Wrap(err, errors.ErrProcessStart, "failed to start automation tool").
			WithDetail("tool", tool)
	}

	defer logging.LogOperationStart(logger, "package")()

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	interval := r.PollInterval
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	started := time.Now()
	for {
		select {
		case err := <-done:
			return r.finish(err, started)
		case <-ticker.C:
			logger.Debug().Dur("elapsed", time.Since(started)).Msg("Automation tool still running")
		}
	}
}

func (r *Runner) finish(waitErr error, started time.Time) error {
	logger := logging.GetLogger("packaging")

	exitCode := 0
	if waitErr != nil {
		exitCode = -1
		if exitErr, ok := waitErr.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
	}

	logger.Info().
		Int("exitCode", exitCode).
		Bool("success", exitCode == 0).
		Dur("elapsed", time.Since(started)).
		Msg("Automation tool finished")

	if exitCode != 0 {
		logger.Error().Msg("Automation tool reported failure, check the AutomationTool logs")
		return errors.Wrapf(waitErr, errors.ErrProcessExit, "automation tool exited with code %d", exitCode).
			WithDetail("exitCode", exitCode)
	}
	return nil
}
