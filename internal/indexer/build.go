// Package indexer assembles per-file extraction results into a
// symbols.Index (§4.3) and runs the cross-reference pass (§4.4) that
// refines reference FQNs using whole-index knowledge.
package indexer

import (
	"context"
	"log/slog"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/kjnav/kjnav/internal/javasrc"
	"github.com/kjnav/kjnav/internal/kotlinsrc"
	"github.com/kjnav/kjnav/internal/symbols"
)

// ContentReader reads a source file's bytes, following the teacher
// repo's functional-reader convention for the build phase's single I/O
// boundary.
type ContentReader func(path string) ([]byte, error)

type fileResult struct {
	path            string
	fileInfo        symbols.FileInfo
	occurrences     []symbols.Occurrence
	typeAliases     []kotlinsrc.TypeAliasEdge
	lombokAccessors map[string][]string
	err             error
}

// Build runs the data-parallel extraction phase over files and reduces
// the results into a fresh symbols.Index sequentially. Per spec.md §5,
// extraction is pure per file; only this reduce step mutates the index.
// The returned error is ErrIndex-wrapped and non-nil only when the
// assembled index itself violates a structural invariant (P5's Lombok
// field/accessor containing-class check) — never for a per-file parse
// failure, which is logged and skipped instead.
func Build(ctx context.Context, files []string, read ContentReader, logger *slog.Logger) (*symbols.Index, error) {
	if logger == nil {
		logger = slog.Default()
	}

	numWorkers := runtime.GOMAXPROCS(0)
	if numWorkers > len(files) && len(files) > 0 {
		numWorkers = len(files)
	}
	if numWorkers < 1 {
		numWorkers = 1
	}

	jobs := make(chan string, len(files))
	results := make(chan fileResult, len(files))

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				select {
				case <-ctx.Done():
					return
				default:
				}
				results <- extractOne(path, read)
			}
		}()
	}

	for _, f := range files {
		jobs <- f
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	idx := symbols.NewIndex()
	for r := range results {
		if r.err != nil {
			logger.Warn("skipping file", "file", r.path, "error", r.err)
			continue
		}
		idx.AddFileInfo(r.fileInfo)
		for _, o := range r.occurrences {
			idx.AddOccurrence(o)
		}
		for _, edge := range r.typeAliases {
			idx.AddTypeAlias(edge.AliasFQN, edge.TargetName)
		}
		for fieldFQN, accessors := range r.lombokAccessors {
			idx.LombokAccessors[fieldFQN] = append(idx.LombokAccessors[fieldFQN], accessors...)
		}
	}

	logger.Info("index built", "stats", idx.Stats().String())

	if err := ValidateLombokAccessors(idx); err != nil {
		return idx, err
	}
	return idx, nil
}

func extractOne(path string, read ContentReader) fileResult {
	source, err := read(path)
	if err != nil {
		return fileResult{path: path, err: err}
	}

	switch filepath.Ext(path) {
	case ".kt":
		r, err := kotlinsrc.ExtractFile(path, source)
		if err != nil {
			return fileResult{path: path, err: err}
		}
		return fileResult{
			path:        path,
			fileInfo:    r.FileInfo,
			occurrences: r.Occurrences,
			typeAliases: r.TypeAliases,
		}
	case ".java":
		r, err := javasrc.ExtractFile(path, source)
		if err != nil {
			return fileResult{path: path, err: err}
		}
		return fileResult{
			path:            path,
			fileInfo:        r.FileInfo,
			occurrences:     r.Occurrences,
			lombokAccessors: r.LombokAccessors,
		}
	default:
		return fileResult{path: path, fileInfo: symbols.FileInfo{Path: path}}
	}
}
