package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"skycast/internal/notify"
	"skycast/internal/ui"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Launch the interactive dashboard",
	Long: `Launch the full-screen dashboard. Without an active session the
login view is shown first; the dashboard lists the prediction modules
(Delay Predictor, Price Oracle).`,
	RunE: runDashboardCmd,
}

func runDashboardCmd(cmd *cobra.Command, args []string) error {
	sessions, err := sessionProviderFactory()
	if err != nil {
		return err
	}
	defer sessions.Close()

	app := ui.NewApp(
		apiClientFactory(),
		sessions,
		notify.NewManager(),
		viper.GetBool("predict.auto_select_airline"),
	)

	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("dashboard terminated: %w", err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
