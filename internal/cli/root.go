package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/rockpaperscissors/internal/factory"
	"github.com/mcoot/rockpaperscissors/internal/services/leaderboard"
)

// runtime carries what the root command's pre-run sets up for its subcommands
type runtime struct {
	cfg *Config
	app *factory.App
}

// NewRootCmd creates the root command. Run without a subcommand it starts the
// interactive menu.
func NewRootCmd() *cobra.Command {
	rt := &runtime{}

	cfg, cfgErr := LoadConfig()
	if cfgErr != nil {
		cfg = &Config{}
	}
	rt.cfg = cfg

	rootCmd := &cobra.Command{
		Use:   "rps",
		Short: "Rock-Paper-Scissors against the computer",
		Long: `rps is a menu-driven Rock-Paper-Scissors game with persistent player profiles,
scores, achievements, friends and messages.

Run without arguments to start the interactive menu.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfgErr != nil {
				return cfgErr
			}

			logger, err := rt.cfg.NewLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			app, err := factory.New(cmd.Context(), rt.cfg.FactoryConfig(logger))
			if err != nil {
				return err
			}
			rt.app = app
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if rt.app == nil {
				return nil
			}
			return rt.app.Close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewMenu(rt.app, cmd.InOrStdin(), cmd.OutOrStdout()).Run(cmd.Context())
		},
		Args:         cobra.NoArgs,
		SilenceUsage: true,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfg.StorageType, "storage", cfg.StorageType, "Storage backend: file, memory, redis (env: RPS_STORAGE)")
	flags.StringVar(&cfg.DataFile, "data-file", cfg.DataFile, "Profile file for the file backend (env: RPS_DATA_FILE)")
	flags.StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL, "Redis URL for the redis backend (env: RPS_REDIS_URL)")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error (env: RPS_LOG_LEVEL)")
	flags.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: text, json (env: RPS_LOG_FORMAT)")
	flags.StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format for views: text, json")

	rootCmd.AddCommand(newLeaderboardCmd(rt))
	rootCmd.AddCommand(newProfileCmd(rt))
	rootCmd.AddCommand(newResetCmd(rt))

	return rootCmd
}

func newLeaderboardCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "leaderboard",
		Short: "Print the leaderboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(rt.cfg.Output, cmd.OutOrStdout())
			out.Print(Leaderboard{Entries: leaderboard.Rank(rt.app.Store.All())})
			return nil
		},
	}
}

func newProfileCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "profile <name>",
		Short: "Print a player's profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := rt.app.Store.Get(args[0])
			if err != nil {
				return err
			}
			NewOutput(rt.cfg.Output, cmd.OutOrStdout()).Print(NewProfileView(p))
			return nil
		},
	}
}

func newResetCmd(rt *runtime) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to reset without --yes")
			}
			rt.app.Store.Reset(cmd.Context())
			NewOutput(rt.cfg.Output, cmd.OutOrStdout()).PrintMessage("Leaderboard has been reset.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the reset")

	return cmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
