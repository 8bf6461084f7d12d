package cmd

import (
	"os"

	"github.com/sessiontools/loginenv/core/emit"
	"github.com/sessiontools/loginenv/core/session"
	"github.com/spf13/cobra"
)

var (
	envShell    string
	envUID      int
	envHostname string
	envPID      int
)

// envCmd prints the environment delta for the invoking session.
var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Print shell source that initializes the session environment.",
	Long: `Prints the environment changes, edit mode, and prompt for the
invoking session as shell source, e.g.:

    eval "$(loginenv env)"          # from ~/.profile
    eval ` + "`loginenv env --shell csh`" + `  # from ~/.cshrc

Identity flags exist for the shell layer and for testing; they default to
the real process identity.`,
	Args: cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		flavor, err := emit.ParseFlavor(envShell)
		if err != nil {
			return err
		}

		configuration, err := loadConfig(cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		identity := session.CurrentIdentity()
		if cmd.Flags().Changed("uid") {
			identity.UID = envUID
		}
		if cmd.Flags().Changed("hostname") {
			identity.Hostname = session.ShortHostname(envHostname)
		}
		if cmd.Flags().Changed("pid") {
			identity.PID = envPID
		}

		overlay := session.NewOverlayEnv(session.NewMapEnvFromList(os.Environ()))
		result := session.New(configuration).Apply(overlay, identity)

		return emit.Render(cmd.OutOrStdout(), flavor, overlay, result)
	},
}

func init() {
	envCmd.Flags().StringVar(&envShell, "shell", string(emit.Sh), "output syntax: sh or csh")
	envCmd.Flags().IntVar(&envUID, "uid", 0, "override the effective uid")
	envCmd.Flags().StringVar(&envHostname, "hostname", "", "override the hostname")
	envCmd.Flags().IntVar(&envPID, "pid", 0, "override the process id")

	rootCmd.AddCommand(envCmd)
}
