package main

import (
	"context"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the prediction backend",
	Long: `Sign in to the prediction backend and persist the session locally.
Credentials are prompted for unless passed via flags.`,
	RunE: runLoginCmd,
}

func runLoginCmd(cmd *cobra.Command, args []string) error {
	email, password := loginEmail, loginPassword
	if email == "" || password == "" {
		qs := []*survey.Question{
			{
				Name:     "email",
				Prompt:   &survey.Input{Message: "Email:"},
				Validate: survey.Required,
			},
			{
				Name:     "password",
				Prompt:   &survey.Password{Message: "Password:"},
				Validate: survey.Required,
			},
		}
		answers := struct {
			Email    string
			Password string
		}{}
		if err := survey.Ask(qs, &answers); err != nil {
			return fmt.Errorf("login aborted: %w", err)
		}
		email, password = answers.Email, answers.Password
	}

	client := apiClientFactory()
	resp, err := client.Login(context.Background(), email, password)
	if err != nil {
		return fmt.Errorf("sign-in failed: %w", err)
	}

	sessions, err := sessionProviderFactory()
	if err != nil {
		return err
	}
	defer sessions.Close()

	if err := sessions.SignIn(resp.AccessToken, resp.UserName); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", resp.UserName)
	return nil
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email (skips the prompt)")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password (skips the prompt)")
	rootCmd.AddCommand(loginCmd)
}
