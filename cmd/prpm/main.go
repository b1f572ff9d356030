package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/prpm-io/prpm/pkg/logger"
	"github.com/prpm-io/prpm/pkg/presenter"
)

var out = presenter.New()

var rootCmd = &cobra.Command{
	Use:   "prpm",
	Short: "Convert AI assistant configuration files between editor formats",
	Long: `prpm converts rules, instructions and steering documents between the
file formats used by different coding assistants (Copilot project
instructions, Cursor rules, Kiro steering documents, CLAUDE.md).

Every conversion reports a 0-100 fidelity score and warnings for any
content the target format could not represent.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := logger.SetLogLevel(viper.GetString("log-level")); err != nil {
			return err
		}
		if viper.GetString("log-format") == "json" {
			logger.SetJSONFormat()
		}
		quiet, _ := cmd.Flags().GetBool("quiet")
		out.SetQuiet(quiet)
		return nil
	},
}

func init() {
	viper.SetEnvPrefix("PRPM")
	viper.AutomaticEnv()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME/.prpm")
	viper.AddConfigPath(".")
	_ = viper.ReadInConfig()

	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format (text, json)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress non-error output")
	_ = viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log-format", rootCmd.PersistentFlags().Lookup("log-format"))

	rootCmd.AddCommand(convertCmd, parseCmd, detectCmd, formatsCmd, versionCmd)
}

func main() {
	ctx := logger.WithLogger(context.Background(), logger.L)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		out.Error(err, "")
		os.Exit(1)
	}
}
