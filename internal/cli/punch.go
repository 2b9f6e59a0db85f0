package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/fieldlens/internal/model"
	"github.com/ppiankov/fieldlens/internal/pipeline"
)

var (
	outJSON  string
	outMD    string
	noCache  bool
	noFooter bool
	dateStr  string
)

// punchCmd represents the punch command
var punchCmd = &cobra.Command{
	Use:   "punch <notes-file>",
	Short: "Generate a punch list from walkthrough notes",
	Long: `Punch reads free-form walkthrough or inspection notes and generates a
structured punch list:
- Split notes into candidate observations
- Classify trade, priority, and deficiency category per item
- Extract locations and estimate completion hours
- Suggest assignees from the project's subcontractors
- Deduplicate and summarize by trade, priority, and category

Example:
  fieldlens punch walkthrough.txt
  fieldlens punch walkthrough.txt --context project.yaml --md punch.md`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExtract(args[0], model.KindPunchList)
	},
}

func init() {
	rootCmd.AddCommand(punchCmd)

	punchCmd.Flags().StringVar(&outJSON, "json", "report.json", "output JSON path")
	punchCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	punchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable report cache")
	punchCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
	punchCmd.Flags().StringVar(&dateStr, "date", "", "reference date YYYY-MM-DD (default: today)")
}

// runExtract wires the shared flags into a pipeline and runs the extractor
// for kind over a single notes file.
func runExtract(notesPath string, kind model.ReportKind) error {
	date, err := parseDate(dateStr)
	if err != nil {
		return err
	}

	cfg := buildConfig()
	cfg.Cache.Enabled = cfg.Cache.Enabled && !noCache
	cfg.Output.IncludeFooter = !noFooter

	projCtx, err := pipeline.LoadContext(contextPath)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Notes: %s\n", notesPath)
		fmt.Fprintf(os.Stderr, "Date: %s\n", date.Format("2006-01-02"))
		fmt.Fprintf(os.Stderr, "Cache: %v\n", cfg.Cache.Enabled)
		fmt.Fprintln(os.Stderr)
	}

	p := pipeline.NewPipeline(cfg, projCtx)

	start := time.Now()
	report, err := p.AnalyzeFile(notesPath, kind, date)
	if err != nil {
		return fmt.Errorf("extract: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Generated %s in %v\n\n", report.Kind, time.Since(start).Round(time.Millisecond))
	}

	if err := p.RenderReport(report, outJSON, outMD, verbose); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}
