package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/videojs/vjsplugin/internal/naming"
)

var (
	namesScope string
	namesJSON  bool
)

func init() {
	namesCmd.Flags().StringVar(&namesScope, "scope", "", "npm scope, without the @")
	namesCmd.Flags().BoolVar(&namesJSON, "json", false, "Print the names as JSON")
	rootCmd.AddCommand(namesCmd)
}

var namesCmd = &cobra.Command{
	Use:   "names <name>",
	Short: "Print every name derived from a plugin name",
	Long: `Print the package, class, function and module names a plugin called
<name> gets. The name may carry a scope (@scope/name) and the videojs- prefix.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := naming.New(args[0], namesScope)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if namesJSON {
			data, err := json.MarshalIndent(n, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling names: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		for _, row := range [][2]string{
			{"basic", n.Basic},
			{"prefixed", n.Prefixed},
			{"scope", n.ScopeDisplay()},
			{"package", n.Package},
			{"function", n.Function},
			{"class", n.Class},
			{"module", n.Module},
		} {
			fmt.Fprintf(out, "%s %s\n", keyStyle.Render(row[0]), row[1])
		}
		return nil
	},
}
