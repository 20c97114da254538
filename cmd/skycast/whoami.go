package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the active session, if any",
	RunE:  runWhoamiCmd,
}

func runWhoamiCmd(cmd *cobra.Command, args []string) error {
	sessions, err := sessionProviderFactory()
	if err != nil {
		return err
	}
	defer sessions.Close()

	current := sessions.Current()
	if !current.Valid() {
		fmt.Fprintln(cmd.OutOrStdout(), "Not signed in.")
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", current.DisplayName)
	return nil
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
