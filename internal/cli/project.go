// Package cli holds the glue every subcommand needs: turning a project
// root into a cross-referenced symbols.Index. It exists so cmd/findusages,
// cmd/finddefinition and cmd/reindex don't each duplicate the
// discover+build+cross-reference sequence. The watch loop does not use it;
// it builds through indexer.NewHandle.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/kjnav/kjnav/internal/discover"
	"github.com/kjnav/kjnav/internal/indexer"
	"github.com/kjnav/kjnav/internal/symbols"
)

// ReadFile is the indexer.ContentReader backing a real filesystem.
func ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// BuildIndex discovers every .kt/.java file under root, builds the
// per-file index in parallel, then runs cross-reference resolution and
// companion-alias registration so the returned index is immediately
// queryable.
func BuildIndex(ctx context.Context, root string, logger *slog.Logger) (*symbols.Index, error) {
	files, err := discover.Find(root)
	if err != nil {
		return nil, fmt.Errorf("discover source files: %w", err)
	}

	idx, err := indexer.Build(ctx, files, ReadFile, logger)
	if err != nil {
		return nil, err
	}
	indexer.CrossReference(idx)
	return idx, nil
}
