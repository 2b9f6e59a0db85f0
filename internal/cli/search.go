package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/fieldlens/internal/pipeline"
)

var (
	searchLimit   int
	searchTimeout time.Duration
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search project records by relevance",
	Long: `Search scores every record in the project context against the query
and returns matches ranked by relevance. Record types (RFIs,
submittals, documents, daily reports, punch items, change orders,
tasks) are scored concurrently.

Example:
  fieldlens search "concrete pour" --context project.yaml
  fieldlens search "electrical rough-in" --limit 10 --md results.md`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := args[0]
		ctx, cancel := context.WithTimeout(context.Background(), searchTimeout)
		defer cancel()

		cfg := buildConfig()
		cfg.Output.IncludeFooter = !noFooter
		if searchLimit > 0 {
			cfg.Routing.MaxSearch = searchLimit
		}

		projCtx, err := pipeline.LoadContext(contextPath)
		if err != nil {
			return err
		}

		p := pipeline.NewPipeline(cfg, projCtx)
		report, err := p.Search(ctx, query)
		if err != nil {
			return fmt.Errorf("search: %w", err)
		}

		if err := p.RenderReport(report, outJSON, outMD, verbose); err != nil {
			return fmt.Errorf("render: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringVar(&outJSON, "json", "report.json", "output JSON path")
	searchCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	searchCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 0, "maximum results (0 = all)")
	searchCmd.Flags().DurationVar(&searchTimeout, "timeout", 30*time.Second, "search timeout")
}
