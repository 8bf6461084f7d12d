package cmd

import (
	"errors"
	"io"
	"io/fs"

	"github.com/fatih/color"
	"github.com/sessiontools/loginenv/core/config"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var cfgPath string

// loadConfig returns the site configuration, falling back to the built-in
// defaults when no config.yaml exists. The warning goes to stderr so eval'd
// output stays clean.
func loadConfig(errOut io.Writer) (*config.Configuration, error) {
	configuration, err := config.Load(afero.NewOsFs(), cfgPath)

	if errors.Is(err, fs.ErrNotExist) {
		color.New(color.FgYellow).Fprintf(errOut, "no %s in %s, using built-in defaults\n", config.ConfigurationName, cfgPath)
		return config.Default(), nil
	}

	return configuration, err
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "loginenv",
	Short: "Compute the environment for a login session.",
	Long: `Computes the finalized environment, prompt string, and secondary
init file for a login session so the interactive shell can eval it.`,
	// Run: func(cmd *cobra.Command, args []string) { },
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "/usr/local/etc/loginenv", "config path")
}
