package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ppiankov/fieldlens/internal/pipeline"
)

var rfiSubject string

// routeCmd represents the route command
var routeCmd = &cobra.Command{
	Use:   "route <question>",
	Short: "Suggest routing for a new RFI",
	Long: `Route classifies a new RFI question to a trade, suggests the
subcontractor covering that trade, and ranks similar past RFIs from
the project context by relevance.

Example:
  fieldlens route "What is the required clearance at the electrical panel?" --context project.yaml
  fieldlens route "Rebar spacing at grade beams" --subject "Structural query"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		question := args[0]

		cfg := buildConfig()
		cfg.Output.IncludeFooter = !noFooter

		projCtx, err := pipeline.LoadContext(contextPath)
		if err != nil {
			return err
		}

		subject := rfiSubject
		if subject == "" {
			subject = question
		}

		p := pipeline.NewPipeline(cfg, projCtx)
		report := p.RouteRFI(subject, question)

		if err := p.RenderReport(report, outJSON, outMD, verbose); err != nil {
			return fmt.Errorf("render: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(routeCmd)

	routeCmd.Flags().StringVar(&outJSON, "json", "report.json", "output JSON path")
	routeCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	routeCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
	routeCmd.Flags().StringVar(&rfiSubject, "subject", "", "RFI subject line (default: the question)")
}
