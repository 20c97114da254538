package main

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

const runbookMarkdown = `# Skycast Operator Runbook

## First run

1. Start the backend (` + "`uvicorn api:app`" + `) and check ` + "`skycast options`" + `
   returns airlines and cities.
2. ` + "`skycast login`" + ` — credentials are stored in the local session store.
3. ` + "`skycast`" + ` launches the dashboard; pick a module with enter.

## Modules

- **Delay Predictor** — unauthenticated. Risk scores above 40 are flagged
  as elevated.
- **Price Oracle** — requires a session. Travel time accepts free text
  like "2h 30m"; unreadable text counts as zero minutes.

## Troubleshooting

- Empty dropdowns: the options fetch failed silently; check the backend
  and re-enter the view.
- "Session rejected": the token expired server-side. Run
  ` + "`skycast login`" + ` again.
- Metrics: prometheus counters on ` + "`:2112/metrics`" + `.
`

var runbookCmd = &cobra.Command{
	Use:   "runbook",
	Short: "Show the operator runbook",
	RunE:  runRunbookCmd,
}

func runRunbookCmd(cmd *cobra.Command, args []string) error {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		// Degrade to plain markdown rather than failing the command.
		fmt.Fprint(cmd.OutOrStdout(), runbookMarkdown)
		return nil
	}

	rendered, err := renderer.Render(runbookMarkdown)
	if err != nil {
		fmt.Fprint(cmd.OutOrStdout(), runbookMarkdown)
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), rendered)
	return nil
}

func init() {
	rootCmd.AddCommand(runbookCmd)
}
