package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ppiankov/fieldlens/internal/pipeline"
)

var asOfStr string

// delaysCmd represents the delays command
var delaysCmd = &cobra.Command{
	Use:   "delays",
	Short: "Analyze schedule delays from the project context",
	Long: `Delays assesses every activity in the project context against its
planned dates:
- Classify each activity as delayed, on track, or ahead
- Infer the most likely delay cause from activity flags
- Flag critical-path impact and average delay
- Suggest recovery steps matched to the dominant causes

Requires --context with an activities section.

Example:
  fieldlens delays --context project.yaml
  fieldlens delays --context project.yaml --as-of 2024-01-15 --md delays.md`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		asOf, err := parseDate(asOfStr)
		if err != nil {
			return err
		}

		cfg := buildConfig()
		cfg.Output.IncludeFooter = !noFooter

		projCtx, err := pipeline.LoadContext(contextPath)
		if err != nil {
			return err
		}

		p := pipeline.NewPipeline(cfg, projCtx)
		report, err := p.AnalyzeDelays(asOf)
		if err != nil {
			return fmt.Errorf("analyze delays: %w", err)
		}

		if err := p.RenderReport(report, outJSON, outMD, verbose); err != nil {
			return fmt.Errorf("render: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(delaysCmd)

	delaysCmd.Flags().StringVar(&outJSON, "json", "report.json", "output JSON path")
	delaysCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	delaysCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
	delaysCmd.Flags().StringVar(&asOfStr, "as-of", "", "assessment date YYYY-MM-DD (default: today)")
}
