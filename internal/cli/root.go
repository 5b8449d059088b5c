package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/videojs/vjsplugin/internal/branding"
	"github.com/videojs/vjsplugin/internal/config"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	verbose bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: branding.CLIName(),
})

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds video.js plugin projects: it derives the plugin's
names, renders the project files, and synthesizes a package.json that can be
regenerated later without losing your changes.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetOutput(cmd.ErrOrStderr())
		if verbose {
			logger.SetLevel(log.DebugLevel)
		} else {
			logger.SetLevel(log.InfoLevel)
		}
		config.Load()
		logger.Debug("loaded user config", "path", config.FilePath())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
	}
	return err
}
