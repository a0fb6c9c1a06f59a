// Package main is the headless command line front end of the office
// converter. It runs the same task list and batch runner as the desktop app.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the office-converter CLI.
var rootCmd = &cobra.Command{
	Use:   "office-converter",
	Short: "Batch convert office documents with LibreOffice",
	Long: `office-converter converts batches of office documents using a headless
LibreOffice: Word to PDF, PDF to Word, PowerPoint to PDF and Excel to PDF.

Every file of a batch must have the input extension of the chosen mode.
Files are converted one at a time, in the order given.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: office-converter.yaml in . or ~/.config/office-converter)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("office-converter")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "office-converter"))
		}
	}

	viper.SetEnvPrefix("OFFICE_CONVERTER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
