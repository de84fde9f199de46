package commands

import (
	"context"

	"explorer-state/internal/config"
	"explorer-state/internal/logging"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	// Version, Commit, and BuildDate are set at build time via ldflags.
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"

	verbose bool
	cfg     *config.AppConfig
)

var rootCmd = &cobra.Command{
	Use:   "explorer-state",
	Short: "Encode and decode shareable Explorer links",
	Long: `explorer-state translates Explorer visualization state (series, interval, group-by,
order-by, time range) to and from the query string of a shareable link.

Decoding never fails: malformed parameters fall back to their defaults, and
'decode' or 'lint' list what was dropped.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// One-shot commands keep the file sink off; the long-running servers keep it.
		_, longRunning := cmd.Annotations["server"]
		logging.Init(logging.Options{Verbose: verbose, NoFile: !longRunning})

		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}

		log.Debug().
			Str("version", Version).
			Str("commit", Commit).
			Str("buildDate", BuildDate).
			Str("command", cmd.Name()).
			Msg("explorer-state starting")
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.Version = Version
}
