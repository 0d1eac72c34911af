package wwmod

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/descriptor"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/errors"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/filesystem"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/mods"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/types"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/ui/view"
)

func newStatusCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Short:   MsgStatusShort,
		Long:    MsgStatusLong,
		Example: MsgStatusExample,
		GroupID: "mods",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}

			list, err := a.loadMods()
			if err != nil {
				return err
			}
			log.Info().Str("project", a.resolver.Project()).Int("mods", len(list)).Msg("Evaluating mods")

			return a.renderer.RenderResult(view.ModList{
				ProjectDir: a.resolver.Project(),
				ModsDir:    a.resolver.Mods(),
				Mods:       a.checker().EvaluateAll(list),
			})
		},
	}
}

func newShowCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:               "show <mod>",
		Short:             MsgShowShort,
		GroupID:           "mods",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: modNamesCompletion(opts),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}
			mod, err := a.findMod(args[0])
			if err != nil {
				return err
			}

			detail := view.ModDetail{Report: a.checker().Evaluate(mod), Mod: mod}
			descPath := a.resolver.ModDescriptorPath(mod)
			if filesystem.FileExists(a.fs, descPath) {
				doc, err := descriptor.Read(a.fs, descPath)
				if err != nil {
					log.Warn().Err(err).Str("path", descPath).Msg("Ignoring unreadable descriptor")
				} else {
					detail.Descriptor = &doc
				}
			}
			return a.renderer.RenderResult(detail)
		},
	}
}

func newMoveCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:               "move <mod>",
		Short:             MsgMoveShort,
		Long:              MsgMoveLong,
		Example:           MsgMoveExample,
		GroupID:           "mods",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: modNamesCompletion(opts),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}
			mod, err := a.findMod(args[0])
			if err != nil {
				return err
			}

			// A moved mod has to be removed first; every other state is
			// reported by Move itself with its own error code.
			if a.checker().Moved(mod) {
				return errors.Newf(errors.ErrInvalidInput, MsgAlreadyMoved, mod.ID())
			}

			result, err := a.deployer().Move(mod)
			if err != nil {
				return err
			}
			return a.renderer.RenderResult(result)
		},
	}
}

func newRemoveCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:               "remove <mod>",
		Short:             MsgRemoveShort,
		GroupID:           "mods",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: modNamesCompletion(opts),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}
			mod, err := a.findMod(args[0])
			if err != nil {
				return err
			}

			dir, err := a.deployer().Remove(mod)
			if err != nil {
				return err
			}
			return a.renderer.RenderMessage(fmt.Sprintf(MsgRemoved, dir))
		},
	}
}

func newStageCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:               "stage <mod>",
		Short:             MsgStageShort,
		GroupID:           "mods",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: modNamesCompletion(opts),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}
			mod, err := a.findMod(args[0])
			if err != nil {
				return err
			}

			dir, err := a.deployer().Stage(mod)
			if err != nil {
				return err
			}
			return a.renderer.RenderMessage(fmt.Sprintf(MsgStaged, mod.DisplayName(), dir))
		},
	}
}

func newMigrateCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "migrate",
		Short:   MsgMigrateShort,
		GroupID: "mods",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}
			list, err := a.loadMods()
			if err != nil {
				return err
			}

			saved, err := mods.SaveMigrated(a.gate, list)
			if err != nil {
				return err
			}
			if len(saved) == 0 {
				return a.renderer.RenderMessage(MsgNoMigrations)
			}
			for _, mod := range saved {
				if err := a.renderer.RenderMessage(fmt.Sprintf(MsgMigrated, mod.ID(), mod.Rules.ChunkID)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newNewCmd(opts *globalOptions) *cobra.Command {
	var (
		dir         string
		dirName     string
		chunkID     int
		description string
		author      string
	)

	cmd := &cobra.Command{
		Use:     "new <asset-name>",
		Short:   MsgNewShort,
		Example: MsgNewExample,
		GroupID: "mods",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}
			target := dir
			if target == "" {
				target = a.resolver.Project()
			}

			mod, err := mods.New(a.gate, target, args[0], func(m *types.ModDescriptor) {
				if dirName != "" {
					m.DirName = dirName
				}
				if chunkID > 0 {
					m.Rules.ChunkID = chunkID
				}
				m.Description = description
				m.CreatedBy = author
			})
			if err != nil {
				return err
			}
			return a.renderer.RenderMessage(fmt.Sprintf(MsgCreated, mod.SourcePath))
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", MsgFlagDir)
	cmd.Flags().StringVar(&dirName, "dir-name", "", MsgFlagDirName)
	cmd.Flags().IntVar(&chunkID, "chunk", 0, MsgFlagChunk)
	cmd.Flags().StringVar(&description, "description", "", MsgFlagDesc)
	cmd.Flags().StringVar(&author, "author", "", MsgFlagAuthor)

	return cmd
}
