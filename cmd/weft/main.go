package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/weftworks/weft/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "weft",
	Short: "Customization engine for the weft coding agent",
	Long: `weft loads the layered customization (compiled-in defaults plus user
overrides), expands %KEY% macros, and turns system prompts and toolbox
commands into fully expanded message lists for the agent engine.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logger.SetLogLevel(viper.GetString("log_level")); err != nil {
			return err
		}
		logger.SetLogFormat(viper.GetString("log_format"))
		return nil
	},
}

func init() {
	viper.SetEnvPrefix("WEFT")
	viper.AutomaticEnv()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME/.weft")
	viper.AddConfigPath(".")
	_ = viper.ReadInConfig()

	flags := rootCmd.PersistentFlags()
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "text", "log format (text, json)")
	flags.String("customization", "", "path to the user customization file (default $HOME/.weft/customization.yaml)")
	flags.String("prompts-dir", "", "directory of markdown prompt overlays (default $HOME/.weft/system_prompts)")
	viper.BindPFlag("log_level", flags.Lookup("log-level"))
	viper.BindPFlag("log_format", flags.Lookup("log-format"))
	viper.BindPFlag("customization", flags.Lookup("customization"))
	viper.BindPFlag("prompts_dir", flags.Lookup("prompts-dir"))
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
