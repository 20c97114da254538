package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load initializes the configuration from file and environment variables.
func Load(cfgFile string) {
	// explicit .env loading; a missing .env is fine
	_ = godotenv.Load()

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("SKYCAST")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// Set defaults
	viper.SetDefault("api.base_url", "http://127.0.0.1:8000")
	viper.SetDefault("session.store", "sqlite")
	viper.SetDefault("session.path", ".skycast.db")
	viper.SetDefault("predict.auto_select_airline", true)
	viper.SetDefault("metrics_port", 2112)
	viper.SetDefault("verbose", false)
	viper.SetDefault("log_file", "")

	// Notification Defaults
	slackEnabled := os.Getenv("SLACK_BOT_USER_TOKEN") != ""
	viper.SetDefault("notifications.slack.enabled", slackEnabled)
	viper.SetDefault("notifications.slack.channel", "#general")
	viper.SetDefault("notifications.slack.events.on_request_failure", true)
	viper.SetDefault("notifications.slack.events.on_auth_failure", true)

	// If a config file is found, read it in; otherwise create one with the
	// defaults so the operator has something to edit.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	} else if cfgFile == "" {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		if err := viper.SafeWriteConfig(); err != nil {
			if _, statErr := os.Stat("config.yaml"); os.IsNotExist(statErr) {
				if err := viper.WriteConfigAs("config.yaml"); err != nil {
					fmt.Fprintf(os.Stderr, "Warning: Failed to create default config file: %v\n", err)
				}
			}
		} else {
			fmt.Println("Created default configuration file: config.yaml")
		}
	}
}
