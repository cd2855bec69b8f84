package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/uiprobe/uiprobe/internal/logger"
	"github.com/uiprobe/uiprobe/internal/output"
	"github.com/uiprobe/uiprobe/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "uiprobe",
	Short: "Inspect and drive a running uiprobe-enabled application",
	Long: `A CLI tool that connects to the introspection socket of a running
uiprobe-enabled application to list windows, inject input events, read
logs, and inspect the UI element tree.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("socket", "", "Introspection socket path (default $UIPROBE_SOCKET or /tmp/uiprobe.sock)")
	rootCmd.PersistentFlags().Int("timeout", 15, "Per-request timeout in seconds")
	rootCmd.PersistentFlags().String("format", "", "Output format: yaml, json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")

	viper.SetEnvPrefix("UIPROBE")
	viper.AutomaticEnv()
	viper.BindPFlag("socket", rootCmd.PersistentFlags().Lookup("socket"))
	viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if level := viper.GetString("log_level"); level != "" {
			logger.Init(level, false)
		}

		format, _ := rootCmd.PersistentFlags().GetString("format")
		switch format {
		case "":
			// keep default
		case "yaml":
			output.OutputFormat = output.FormatYAML
		case "json":
			output.OutputFormat = output.FormatJSON
		default:
			return fmt.Errorf("unsupported format: %s (use yaml or json)", format)
		}

		pretty, _ := rootCmd.PersistentFlags().GetBool("pretty")
		output.PrettyOutput = pretty
		return nil
	}
}
