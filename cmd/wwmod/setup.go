package wwmod

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/config"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/filesystem"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/packaging"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/types"
)

func newPackageCmd(opts *globalOptions) *cobra.Command {
	var tool string

	cmd := &cobra.Command{
		Use:     "package",
		Short:   MsgPackageShort,
		Long:    MsgPackageLong,
		GroupID: "mods",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}

			runner := packaging.NewRunner(a.fs, a.resolver)
			runner.Tool = tool
			runner.Stdout = cmd.OutOrStdout()
			runner.Stderr = cmd.ErrOrStderr()
			if err := runner.Run(cmd.Context()); err != nil {
				return err
			}
			return a.renderer.RenderMessage(MsgPackaged)
		},
	}

	cmd.Flags().StringVar(&tool, "tool", "", MsgFlagTool)
	return cmd
}

func newPathsCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "paths",
		Short:   MsgPathsShort,
		GroupID: "setup",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}
			return a.renderer.RenderResult(a.resolver.All())
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "ensure",
		Short: MsgPathsEnsure,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}

			dir := a.resolver.TempDeploy()
			unset := a.settings.TempDeployDirectory == ""
			if unset {
				dir = a.resolver.DefaultTempDeploy()
			}
			if err := a.gate.EnsureDir(dir); err != nil {
				return err
			}
			if unset {
				err := a.updateSettings(func(s *types.DeploymentSettings) error {
					s.TempDeployDirectory = dir
					return nil
				})
				if err != nil {
					return err
				}
			}
			return a.renderer.RenderMessage(fmt.Sprintf(MsgTempDeploy, dir))
		},
	})

	return cmd
}

func newConfigCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		GroupID: "setup",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: MsgConfigInitShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := newRenderer(cmd, opts)
			if err != nil {
				return err
			}
			path, err := config.Init(filesystem.NewOS(), opts.configPath, force)
			if err != nil {
				return err
			}
			return renderer.RenderMessage(fmt.Sprintf(MsgConfigWritten, path))
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)

	showCmd := &cobra.Command{
		Use:   "show",
		Short: MsgConfigShowShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}
			return a.renderer.RenderResult(a.settings)
		},
	}

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: MsgConfigPathShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := newRenderer(cmd, opts)
			if err != nil {
				return err
			}
			path := opts.configPath
			if path == "" {
				path = config.DefaultPath()
			}
			return renderer.RenderMessage(path)
		},
	}

	cmd.AddCommand(initCmd, showCmd, pathCmd)
	return cmd
}
