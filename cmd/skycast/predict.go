package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"skycast/internal/api"
	"skycast/internal/flight"
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Run a one-shot prediction",
}

var (
	delayAirline     string
	delayOrigin      string
	delayDestination string
	delayDate        string
	delayTime        string
)

var predictDelayCmd = &cobra.Command{
	Use:   "delay",
	Short: "Predict delay risk for a flight",
	Long: `Submit a delay-risk request. Empty fields are sent as-is; the
backend validates the payload.`,
	RunE: runPredictDelayCmd,
}

func runPredictDelayCmd(cmd *cobra.Command, args []string) error {
	input := flight.DelayInput{}.
		WithAirline(delayAirline).
		WithOrigin(delayOrigin).
		WithDestination(delayDestination).
		WithDate(delayDate).
		WithTime(delayTime)

	client := apiClientFactory()
	result, err := client.PredictDelay(context.Background(), input.Request())
	if err != nil {
		return fmt.Errorf("delay prediction failed: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Prediction:  %s\n", result.Prediction)
	fmt.Fprintf(out, "Probability: %.2f\n", result.Probability)
	fmt.Fprintf(out, "Risk score:  %.0f%% (%s)\n", result.RiskScore, result.Band())
	return nil
}

var (
	priceAirline     string
	priceOrigin      string
	priceDestination string
	priceDuration    string
)

var predictPriceCmd = &cobra.Command{
	Use:   "price",
	Short: "Estimate the fare for a route",
	Long: `Submit an authenticated fare-estimate request. The travel time is
free text like "2h 30m"; unreadable text counts as zero minutes. The
session token is sent as-is and validated by the backend.`,
	RunE: runPredictPriceCmd,
}

func runPredictPriceCmd(cmd *cobra.Command, args []string) error {
	input := flight.PriceInput{}.
		WithAirline(priceAirline).
		WithOrigin(priceOrigin).
		WithDestination(priceDestination).
		WithDurationText(priceDuration)

	sessions, err := sessionProviderFactory()
	if err != nil {
		return err
	}
	defer sessions.Close()

	client := apiClientFactory()
	result, err := client.PredictPrice(context.Background(), input.Request(), sessions.Current().Token)
	if err != nil {
		if api.IsAuthError(err) {
			return fmt.Errorf("session rejected, run 'skycast login' first: %w", err)
		}
		return fmt.Errorf("price estimation failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Estimated fare: $%.2f\n", result.EstimatedPrice)
	return nil
}

func init() {
	predictDelayCmd.Flags().StringVar(&delayAirline, "airline", "", "Carrier code, e.g. AA")
	predictDelayCmd.Flags().StringVar(&delayOrigin, "origin", "", "Origin city")
	predictDelayCmd.Flags().StringVar(&delayDestination, "destination", "", "Destination city")
	predictDelayCmd.Flags().StringVar(&delayDate, "date", "", "Departure date (YYYY-MM-DD)")
	predictDelayCmd.Flags().StringVar(&delayTime, "time", "", "Scheduled time (HH:MM)")

	predictPriceCmd.Flags().StringVar(&priceAirline, "airline", "", "Carrier code, e.g. AA")
	predictPriceCmd.Flags().StringVar(&priceOrigin, "origin", "", "Origin city")
	predictPriceCmd.Flags().StringVar(&priceDestination, "destination", "", "Destination city")
	predictPriceCmd.Flags().StringVar(&priceDuration, "duration", "", `Travel time, e.g. "2h 30m"`)

	predictCmd.AddCommand(predictDelayCmd)
	predictCmd.AddCommand(predictPriceCmd)
	rootCmd.AddCommand(predictCmd)
}
