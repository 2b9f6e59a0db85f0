package cli

import (
	"github.com/spf13/cobra"

	"github.com/ppiankov/fieldlens/internal/model"
)

// dailylogCmd represents the dailylog command
var dailylogCmd = &cobra.Command{
	Use:   "dailylog <notes-file>",
	Short: "Generate a structured daily log from field notes",
	Long: `Dailylog reads raw field notes and generates a structured daily log:
- Sort notes into work activities, manpower, weather, safety,
  deliveries, and issues
- Merge crew counts per trade and total labor hours
- Score log completeness and suggest what is missing

Example:
  fieldlens dailylog notes.txt --date 2024-01-10
  fieldlens dailylog notes.txt --md log.md`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExtract(args[0], model.KindDailyLog)
	},
}

func init() {
	rootCmd.AddCommand(dailylogCmd)

	// Shared flag variables are declared in punch.go
	dailylogCmd.Flags().StringVar(&outJSON, "json", "report.json", "output JSON path")
	dailylogCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	dailylogCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable report cache")
	dailylogCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
	dailylogCmd.Flags().StringVar(&dateStr, "date", "", "log date YYYY-MM-DD (default: today)")
}
