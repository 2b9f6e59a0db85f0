package cli

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/ppiankov/fieldlens/internal/pipeline"
)

var (
	watchKind     string
	watchDebounce time.Duration
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Watch a directory and extract notes as they change",
	Long: `Watch monitors a directory for new or modified note files (.txt, .md)
and re-runs the chosen extractor on each change. Reports are written
next to the batch output layout. Rapid successive writes to the same
file are coalesced.

Stop with Ctrl-C.

Example:
  fieldlens watch ./notes --kind punch
  fieldlens watch ./notes --kind dailylog --output-dir ./reports --debounce 2s`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVar(&watchKind, "kind", "punch", "extractor to run (punch, actions, dailylog)")
	watchCmd.Flags().StringVar(&outputDir, "output-dir", "./fieldlens-reports", "output directory for reports")
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", time.Second, "delay before processing after the last write")
	watchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable report cache")
	watchCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
}

func runWatch(cmd *cobra.Command, args []string) error {
	dir := args[0]
	kind, err := reportKind(watchKind)
	if err != nil {
		return err
	}

	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	cfg := buildConfig()
	cfg.Cache.Enabled = cfg.Cache.Enabled && !noCache
	cfg.Output.IncludeFooter = !noFooter

	projCtx, err := pipeline.LoadContext(contextPath)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	p := pipeline.NewPipeline(cfg, projCtx)

	fmt.Fprintf(os.Stderr, "Watching %s for %s notes (Ctrl-C to stop)\n", dir, kind)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	// Pending timers coalesce rapid writes to the same file
	var mu sync.Mutex
	pending := make(map[string]*time.Timer)

	process := func(path string) {
		mu.Lock()
		delete(pending, path)
		mu.Unlock()

		date, _ := parseDate("")
		report, err := p.AnalyzeFile(path, kind, date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", path, err)
			return
		}

		slug := sanitizeFilename(path)
		jsonPath := filepath.Join(outputDir, slug+".json")
		mdPath := filepath.Join(outputDir, slug+".md")
		if err := p.RenderReport(report, jsonPath, mdPath, verbose); err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", path, err)
			return
		}
		fmt.Fprintf(os.Stderr, "✓ %s\n", path)
	}

	for {
		select {
		case <-sigCh:
			fmt.Fprintf(os.Stderr, "\nStopping watch\n")
			mu.Lock()
			for _, timer := range pending {
				timer.Stop()
			}
			mu.Unlock()
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !isNoteFile(event.Name) {
				continue
			}

			path := event.Name
			mu.Lock()
			if timer, exists := pending[path]; exists {
				timer.Reset(watchDebounce)
			} else {
				pending[path] = time.AfterFunc(watchDebounce, func() { process(path) })
			}
			mu.Unlock()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "watch error: %v\n", err)
		}
	}
}

func isNoteFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".md":
		return true
	}
	return false
}
