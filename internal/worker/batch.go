package worker

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/ppiankov/fieldlens/internal/model"
)

// noteExtensions are the file types treated as field notes
var noteExtensions = map[string]bool{
	".txt": true,
	".md":  true,
}

// Analyzer runs an extractor over a single note file
type Analyzer interface {
	AnalyzeFile(path string, kind model.ReportKind, date time.Time) (*model.Report, error)
}

// NoteJob extracts one note file
type NoteJob struct {
	Path     string
	Kind     model.ReportKind
	Date     time.Time
	Analyzer Analyzer
}

// Execute runs the extraction for the job's note file
func (j *NoteJob) Execute(ctx context.Context) Result {
	if err := ctx.Err(); err != nil {
		return &NoteResult{Path: j.Path, Error: err}
	}
	report, err := j.Analyzer.AnalyzeFile(j.Path, j.Kind, j.Date)
	if err != nil {
		return &NoteResult{Path: j.Path, Error: err}
	}
	return &NoteResult{Path: j.Path, Report: report}
}

// NoteResult is the outcome of processing one note file
type NoteResult struct {
	Path   string
	Report *model.Report
	Error  error
}

// GetError returns the error from the note result
func (r *NoteResult) GetError() error {
	return r.Error
}

// BatchProcessor extracts many note files concurrently
type BatchProcessor struct {
	analyzer    Analyzer
	concurrency int
}

// NewBatchProcessor creates a batch processor
func NewBatchProcessor(analyzer Analyzer, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		analyzer:    analyzer,
		concurrency: concurrency,
	}
}

// ProcessPaths runs the extractor for kind over every path concurrently.
// Cancelling ctx stops the pool: queued jobs are dropped and in-flight jobs
// see the cancellation.
func (b *BatchProcessor) ProcessPaths(ctx context.Context, paths []string, kind model.ReportKind, date time.Time) []*NoteResult {
	if len(paths) == 0 {
		return []*NoteResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	// Propagate caller cancellation into the pool's own context
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			pool.Shutdown()
		case <-stop:
		}
	}()

	for _, path := range paths {
		pool.Submit(&NoteJob{
			Path:     path,
			Kind:     kind,
			Date:     date,
			Analyzer: b.analyzer,
		})
	}

	results := pool.Wait()

	noteResults := make([]*NoteResult, len(results))
	for i, result := range results {
		noteResults[i] = result.(*NoteResult)
	}
	return noteResults
}

// ProcessTree collects note files under the given files and directories and
// processes them concurrently
func (b *BatchProcessor) ProcessTree(ctx context.Context, roots []string, kind model.ReportKind, date time.Time) ([]*NoteResult, error) {
	paths, err := CollectNotes(roots)
	if err != nil {
		return nil, fmt.Errorf("collect notes: %w", err)
	}
	return b.ProcessPaths(ctx, paths, kind, date), nil
}

// CollectNotes expands files and directories into a sorted, deduplicated
// list of note files. Directories are walked recursively; only note
// extensions are kept. Explicitly named files are taken as-is.
func CollectNotes(roots []string) ([]string, error) {
	seen := make(map[string]bool)
	var paths []string

	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			paths = append(paths, path)
		}
	}

	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", root, err)
		}

		if !info.IsDir() {
			add(root)
			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if noteExtensions[strings.ToLower(filepath.Ext(path))] {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", root, err)
		}
	}

	sort.Strings(paths)
	return paths, nil
}
