package cmd

import (
	"fmt"
	"os"

	"github.com/sessiontools/loginenv/core/session"
	"github.com/spf13/cobra"
)

// promptCmd prints only the prompt string for the invoking session.
var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Print the prompt string for the invoking session.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		configuration, err := loadConfig(cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		// The prompt doesn't depend on the inherited environment, but the
		// initializer still runs the full pass for consistency.
		overlay := session.NewOverlayEnv(session.NewMapEnvFromList(os.Environ()))
		result := session.New(configuration).Apply(overlay, session.CurrentIdentity())

		fmt.Fprintln(cmd.OutOrStdout(), result.Prompt)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(promptCmd)
}
