package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear the stored session",
	RunE:  runLogoutCmd,
}

func runLogoutCmd(cmd *cobra.Command, args []string) error {
	sessions, err := sessionProviderFactory()
	if err != nil {
		return err
	}
	defer sessions.Close()

	if err := sessions.SignOut(); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
	return nil
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
