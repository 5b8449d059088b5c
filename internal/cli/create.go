package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	"github.com/videojs/vjsplugin/internal/config"
	"github.com/videojs/vjsplugin/internal/project"
	"github.com/videojs/vjsplugin/internal/prompt"
	"github.com/videojs/vjsplugin/internal/runtime"
	"github.com/videojs/vjsplugin/internal/scaffold"
)

var (
	createFlags          optionFlags
	createYes            bool
	createForce          bool
	createSkipGit        bool
	createSkipInstall    bool
	createVersion        string
	createPackageManager string
)

func init() {
	createFlags.register(createCmd.Flags())
	createCmd.Flags().BoolVarP(&createYes, "yes", "y", false, "Accept the resolved defaults without prompting")
	createCmd.Flags().BoolVar(&createForce, "force", false, "Generate into a non-empty directory")
	createCmd.Flags().BoolVar(&createSkipGit, "skip-git", false, "Do not initialize a git repository")
	createCmd.Flags().BoolVar(&createSkipInstall, "skip-install", false, "Do not install dependencies")
	createCmd.Flags().StringVar(&createVersion, "version", "", "Package version (default: keep the existing one, or 0.0.0)")
	createCmd.Flags().StringVar(&createPackageManager, "package-manager", runtime.ManagerNPM, fmt.Sprintf("Package manager used to install, one of %v", runtime.Managers()))
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create [dir]",
	Short: "Generate or regenerate a video.js plugin project",
	Long: `Generate a video.js plugin project in dir (default: the current directory).

Running create again in a generated project regenerates its tooling: the
previous answers are offered as defaults, package.json is merged rather than
overwritten, and files you own (src/, test/, README.md, CHANGELOG.md) are kept.

Examples:
  vjsplugin create videojs-my-plugin
  vjsplugin create . --yes --name my-plugin --css --docs
  vjsplugin create --policy brightcove`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCreate,
}

func runCreate(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	if !slices.Contains(runtime.Managers(), createPackageManager) {
		return fmt.Errorf("unknown package manager %q: must be one of %v", createPackageManager, runtime.Managers())
	}

	defaults, skip, err := createFlags.resolveDefaults(cmd, dir)
	if err != nil {
		return err
	}

	var asker prompt.Asker = prompt.FormAsker{Accessible: os.Getenv("ACCESSIBLE") != ""}
	if createYes {
		asker = prompt.StaticAsker{}
	}
	opts, err := asker.Ask(defaults, skip)
	if err != nil {
		return err
	}
	logger.Debug("resolved options", "options", opts.String())

	ctx, err := project.NewContext(opts, buildVersion)
	if err != nil {
		return err
	}
	ctx.Version = createVersion

	result, err := scaffold.Generate(cmd.Context(), ctx, scaffold.Options{
		OutputDir:   dir,
		Force:       createForce,
		SkipGit:     createSkipGit,
		SkipInstall: createSkipInstall,
		Installer: &runtime.PackageManager{
			Bin:     createPackageManager,
			EnvFile: filepath.Join(config.Dir(), "install.env"),
			Stdout:  cmd.ErrOrStderr(),
			Stderr:  cmd.ErrOrStderr(),
		},
		Logger: logger,
	})
	if err != nil {
		return err
	}

	printResult(cmd, ctx, result)
	return nil
}

func printResult(cmd *cobra.Command, ctx *project.Context, result *scaffold.Result) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, successStyle.Render(fmt.Sprintf("Created %s at %s/", ctx.Names.Package, result.OutputDir)))
	for _, f := range result.Files {
		fmt.Fprintf(out, "  %s\n", f)
	}
	for _, f := range result.Skipped {
		fmt.Fprintf(out, "  %s\n", mutedStyle.Render(f+" (kept)"))
	}
	if len(result.Warnings) > 0 {
		fmt.Fprintln(out, warningStyle.Render("\nWarnings:"))
		for _, w := range result.Warnings {
			fmt.Fprintf(out, "  - %s\n", w)
		}
	}

	fmt.Fprintln(out, titleStyle.Render("\nNext steps:"))
	step := 1
	if !result.Installed {
		fmt.Fprintf(out, "  %d. Run %s to install dependencies\n", step, cmdStyle.Render(createPackageManager+" install"))
		step++
	}
	fmt.Fprintf(out, "  %d. Edit src/plugin.js to add your plugin logic\n", step)
	fmt.Fprintf(out, "  %d. Run %s to open the demo page\n", step+1, cmdStyle.Render("npm start"))
}
