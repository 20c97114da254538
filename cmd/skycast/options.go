package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"skycast/internal/options"
)

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "List the selectable airlines and cities",
	Long: `Fetch the server-supplied enumerations used to populate the
prediction forms. Empty lists usually mean the backend is unreachable or
its encoders are not loaded.`,
	RunE: runOptionsCmd,
}

func runOptionsCmd(cmd *cobra.Command, args []string) error {
	client := apiClientFactory()
	cache := options.NewCache(client.FetchOptions, false)
	set := cache.Get(context.Background())

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Airlines (%d):\n", len(set.Airlines))
	for _, a := range set.Airlines {
		fmt.Fprintf(out, "  %s\n", a)
	}
	fmt.Fprintf(out, "Cities (%d):\n", len(set.Cities))
	for _, c := range set.Cities {
		fmt.Fprintf(out, "  %s\n", c)
	}

	if len(set.Airlines) == 0 && len(set.Cities) == 0 {
		fmt.Fprintln(out, strings.TrimSpace(`
No options available. Check that the backend is running and reachable.`))
	}
	return nil
}

func init() {
	rootCmd.AddCommand(optionsCmd)
}
