package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"skycast/internal/config"
	"skycast/internal/telemetry"
)

var exit = os.Exit
var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "skycast",
	Short: "Skycast: terminal client for the Windbreaker flight-prediction service",
	Long: `Skycast is a terminal client for the Windbreaker prediction backend.
It signs an operator in, keeps the session in local storage, and drives the
delay-risk and fare-estimate models from one-shot commands or an
interactive dashboard.`,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n=== CRITICAL ERROR: Command Execution Panic ===\n")
			fmt.Fprintf(os.Stderr, "Error: %v\n", r)
			exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'skycast --help' for usage.")
		exit(1)
	}
}

func init() {
	// Default behavior: launch the interactive dashboard.
	rootCmd.RunE = runDashboardCmd
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().String("api-url", "", "Prediction backend base URL (overrides config)")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// applyFlagOverride copies a flag into a viper key only when the operator
// set it, so an empty flag never clobbers the config default.
func applyFlagOverride(key string, flag *pflag.Flag) {
	if flag != nil && flag.Changed {
		viper.Set(key, flag.Value.String())
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	config.Load(cfgFile)
	applyFlagOverride("api.base_url", rootCmd.PersistentFlags().Lookup("api-url"))

	if err := config.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
	}

	telemetry.InitLogger(viper.GetBool("verbose"), viper.GetString("log_file"))

	// Metrics are best effort; a taken port must not block the client.
	go func() {
		if err := telemetry.StartMetricsServer(viper.GetInt("metrics_port")); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Failed to start metrics server: %v\n", err)
		}
	}()
}
