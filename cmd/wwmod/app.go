package wwmod

import (
	"github.com/spf13/cobra"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/config"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/deploy"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/filesystem"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/mods"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/paths"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/status"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/types"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/ui"
)

// app is everything a command needs, built once per invocation
type app struct {
	opts     *globalOptions
	fs       types.FS
	gate     *filesystem.Gate
	settings *types.DeploymentSettings
	resolver *paths.Resolver
	renderer ui.Renderer
}

func newRenderer(cmd *cobra.Command, opts *globalOptions) (ui.Renderer, error) {
	format, err := ui.ParseFormat(opts.format)
	if err != nil {
		return nil, err
	}
	return ui.NewRenderer(format, cmd.OutOrStdout())
}

// isMachineFormat reports whether output is meant for another program
func (o *globalOptions) isMachineFormat() bool {
	format, err := ui.ParseFormat(o.format)
	return err == nil && format.IsMachine()
}

func (o *globalOptions) overrides() map[string]interface{} {
	if o.project == "" {
		return nil
	}
	return map[string]interface{}{"project_directory": o.project}
}

// loadApp loads the effective settings and wires the resolver and gate
func loadApp(cmd *cobra.Command, opts *globalOptions) (*app, error) {
	renderer, err := newRenderer(cmd, opts)
	if err != nil {
		return nil, err
	}

	settings, err := config.Load(config.Options{Path: opts.configPath, Overrides: opts.overrides()})
	if err != nil {
		return nil, err
	}

	fsys := filesystem.NewOS()
	return &app{
		opts:     opts,
		fs:       fsys,
		gate:     filesystem.NewGate(fsys, filesystem.SafetyToken),
		settings: settings,
		resolver: paths.NewResolver(settings),
		renderer: renderer,
	}, nil
}

// settingsPath is the file mutations are saved to
func (a *app) settingsPath() string {
	if a.opts.configPath != "" {
		return a.opts.configPath
	}
	return config.DefaultPath()
}

// updateSettings reloads the settings file without command line overrides,
// applies change and saves the result
func (a *app) updateSettings(change func(*types.DeploymentSettings) error) error {
	stored, err := config.Load(config.Options{Path: a.opts.configPath})
	if err != nil {
		return err
	}
	if err := change(stored); err != nil {
		return err
	}
	if err := config.Save(a.fs, a.settingsPath(), stored); err != nil {
		return err
	}
	return change(a.settings)
}

func (a *app) loadMods() ([]*types.ModDescriptor, error) {
	return mods.LoadAll(a.fs, a.resolver.Project())
}

func (a *app) findMod(id string) (*types.ModDescriptor, error) {
	list, err := a.loadMods()
	if err != nil {
		return nil, err
	}
	return mods.Find(list, id)
}

func (a *app) checker() *status.Checker {
	return status.NewChecker(a.resolver, a.fs)
}

func (a *app) deployer() *deploy.Deployer {
	return deploy.New(a.resolver, a.gate)
}

// modNamesCompletion completes mod ids from the project tree
func modNamesCompletion(opts *globalOptions) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		a, err := loadApp(cmd, opts)
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		list, err := a.loadMods()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		names := make([]string, 0, len(list))
		for _, mod := range list {
			names = append(names, mod.ID())
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	}
}
