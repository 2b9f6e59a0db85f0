package cli

import (
	"github.com/spf13/cobra"

	"github.com/ppiankov/fieldlens/internal/model"
)

// actionsCmd represents the actions command
var actionsCmd = &cobra.Command{
	Use:   "actions <notes-file>",
	Short: "Extract action items from meeting notes",
	Long: `Actions reads meeting minutes and extracts follow-up commitments:
- Detect action-bearing sentences and bullets
- Resolve owners against the project team roster
- Resolve relative due dates ("by Friday", "this week") against the
  meeting date
- Classify priority and category per item
- Attach the section heading each item appeared under

Example:
  fieldlens actions minutes.txt --date 2024-01-10
  fieldlens actions minutes.txt --context project.yaml --md actions.md`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExtract(args[0], model.KindActionList)
	},
}

func init() {
	rootCmd.AddCommand(actionsCmd)

	// Shared flag variables are declared in punch.go
	actionsCmd.Flags().StringVar(&outJSON, "json", "report.json", "output JSON path")
	actionsCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	actionsCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable report cache")
	actionsCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
	actionsCmd.Flags().StringVar(&dateStr, "date", "", "meeting date YYYY-MM-DD (default: today)")
}
