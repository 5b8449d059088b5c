package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/videojs/vjsplugin/internal/manifest"
	"github.com/videojs/vjsplugin/internal/project"
	"github.com/videojs/vjsplugin/internal/prompt"
	"github.com/videojs/vjsplugin/internal/scaffold"
)

var (
	manifestFlags   optionFlags
	manifestVersion string
)

func init() {
	manifestFlags.register(manifestCmd.Flags())
	manifestCmd.Flags().StringVar(&manifestVersion, "version", "", "Package version (default: keep the existing one, or 0.0.0)")
	rootCmd.AddCommand(manifestCmd)
}

var manifestCmd = &cobra.Command{
	Use:   "manifest [dir]",
	Short: "Print the package.json create would write",
	Long: `Synthesize package.json for the project in dir (default: the current
directory) from its persisted answers, its existing package.json, your user
config and the flags, and print it without writing anything.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}

		defaults, skip, err := manifestFlags.resolveDefaults(cmd, dir)
		if err != nil {
			return err
		}
		opts, err := prompt.StaticAsker{}.Ask(defaults, skip)
		if err != nil {
			return err
		}
		ctx, err := project.NewContext(opts, buildVersion)
		if err != nil {
			return err
		}
		ctx.Version = manifestVersion

		m, err := scaffold.BuildManifest(dir, ctx)
		if err != nil {
			return err
		}

		result, err := manifest.ValidateObject(m)
		if err != nil {
			return err
		}
		for _, issue := range result.Issues {
			logger.Warn("manifest does not match schema", "path", issue.Path, "issue", issue.Message)
		}

		data, err := manifest.Marshal(m)
		if err != nil {
			return fmt.Errorf("encoding manifest: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}
