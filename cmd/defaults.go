package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

// defaultsCmd prints the configuration that's actually in effect, which is
// the built-in one unless a site config.yaml overrides it.
var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the active configuration as YAML.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		configuration, err := loadConfig(cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		out, err := yaml.Marshal(configuration)
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(defaultsCmd)
}
