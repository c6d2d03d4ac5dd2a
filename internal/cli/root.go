// Package cli wires the streamvault commands. Commands receive the
// loaded configuration through the package-level cfg set by the root
// command's PersistentPreRunE; components themselves take explicit
// config values, never ambient state.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/streamvault/streamvault-cli/internal/config"
	"github.com/streamvault/streamvault-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	cfgPath     string
	verboseFlag bool

	// cfg is the configuration loaded for the running command.
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "streamvault",
	Short: "Archive, download and prune a Twitch channel's highlights",
	Long: `streamvault fetches a channel's highlight metadata from the Helix API,
stores it in a date-partitioned archive with a rebuildable index, and
drives bulk downloads of video/chat artifacts through TwitchDownloaderCLI
or bulk deletion through the same API.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "",
		"path to the config file (default ~/.streamvault/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false,
		"enable verbose logging")
}

func loadConfig(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verboseFlag)

	// Commands that never touch the API or the archive run without a
	// config file.
	switch cmd.Name() {
	case "version", "help", "completion":
		return nil
	}

	path := cfgPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return fmt.Errorf("resolve config path: %w", err)
		}
	}

	loaded, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	cfg = loaded
	logger.Debug("loaded config for channel %s from %s", cfg.Channel, path)
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
