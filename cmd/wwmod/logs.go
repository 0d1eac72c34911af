package wwmod

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/errors"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/logwatch"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/paths"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/types"
)

const (
	gameLogID   = "game"
	gameLogName = "Game"
	gameLogFile = "Whiskerwood.log"
)

func newLogsCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "logs",
		Short:   MsgLogsShort,
		Example: MsgLogsExample,
		GroupID: "setup",
	}

	cmd.AddCommand(
		newLogsAddCmd(opts),
		newLogsListCmd(opts),
		newLogsToggleCmd(opts, "enable", MsgLogsEnableShort, true),
		newLogsToggleCmd(opts, "disable", MsgLogsDisable, false),
		newLogsWatchCmd(opts),
	)
	return cmd
}

func newLogsAddCmd(opts *globalOptions) *cobra.Command {
	var (
		id       string
		name     string
		disabled bool
	)

	cmd := &cobra.Command{
		Use:   "add <file>",
		Short: MsgLogsAddShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}

			entry := types.LogWatchConfig{
				ID:          id,
				DisplayName: name,
				FilePath:    paths.Normalize(args[0]),
				Enabled:     !disabled,
			}
			if entry.ID == "" {
				entry.ID = uuid.NewString()
			}

			err = a.updateSettings(func(s *types.DeploymentSettings) error {
				for _, existing := range s.LogWatch {
					if existing.ID == entry.ID {
						return errors.Newf(errors.ErrInvalidInput, MsgLogIDExists, entry.ID)
					}
				}
				s.LogWatch = append(s.LogWatch, entry)
				return nil
			})
			if err != nil {
				return err
			}
			return a.renderer.RenderMessage(fmt.Sprintf(MsgLogAdded, entry.FilePath, entry.ID))
		},
	}

	cmd.Flags().StringVar(&id, "id", "", MsgFlagLogID)
	cmd.Flags().StringVar(&name, "name", "", MsgFlagLogName)
	cmd.Flags().BoolVar(&disabled, "disabled", false, MsgFlagDisabled)
	return cmd
}

func newLogsListCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: MsgLogsListShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}
			configs := a.settings.LogWatch
			if configs == nil {
				configs = []types.LogWatchConfig{}
			}
			return a.renderer.RenderResult(configs)
		},
	}
}

func newLogsToggleCmd(opts *globalOptions, use, short string, enabled bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}

			saver := func(configs []types.LogWatchConfig) error {
				return a.updateSettings(func(s *types.DeploymentSettings) error {
					s.LogWatch = configs
					return nil
				})
			}
			watcher := logwatch.New(a.settings.LogWatch, nil, logwatch.WithFS(a.fs), logwatch.WithSaver(saver))
			if err := watcher.SetConfigEnabled(args[0], enabled); err != nil {
				return err
			}

			msg := MsgLogDisabled
			if enabled {
				msg = MsgLogEnabled
			}
			return a.renderer.RenderMessage(fmt.Sprintf(msg, args[0]))
		},
	}
}

func newLogsWatchCmd(opts *globalOptions) *cobra.Command {
	var (
		game     bool
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: MsgLogsWatchShort,
		Long:  MsgLogsWatchLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}

			configs := append([]types.LogWatchConfig(nil), a.settings.LogWatch...)
			if game {
				configs = append(configs, types.LogWatchConfig{
					ID:          gameLogID,
					DisplayName: gameLogName,
					FilePath:    paths.Join(a.resolver.Logs(), gameLogFile),
					Enabled:     true,
				})
			}

			enabled := 0
			for _, c := range configs {
				if c.Enabled && c.FilePath != "" {
					enabled++
				}
			}
			if enabled == 0 {
				return a.renderer.RenderMessage(MsgNoEnabledLogs)
			}

			handler := func(ev logwatch.Event) {
				if err := a.renderer.RenderResult(ev); err != nil {
					log.Warn().Err(err).Str("id", ev.ConfigID).Msg("Failed to print log lines")
				}
			}
			watcher := logwatch.New(configs, handler, logwatch.WithFS(a.fs), logwatch.WithInterval(interval))

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			if err := a.renderer.RenderMessage(fmt.Sprintf(MsgWatching, enabled)); err != nil {
				return err
			}
			// Record the current length of every file so only new lines print
			watcher.ScanOnce()
			watcher.Run(ctx)
			return nil
		},
	}

	cmd.Flags().BoolVar(&game, "game", false, MsgFlagGame)
	cmd.Flags().DurationVar(&interval, "interval", logwatch.DefaultInterval, MsgFlagInterval)
	return cmd
}
