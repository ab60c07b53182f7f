package indexer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dominikbraun/graph"

	"github.com/kjnav/kjnav/internal/symbols"
)

// ValidateLombokAccessors builds a bipartite graph (each field FQN to
// its synthesized accessor FQNs) from idx.LombokAccessors and walks its
// edges to check P5: an accessor's containing-class FQN must equal its
// field's containing-class FQN. A violation can only come from a bug in
// accessor synthesis, not from the source text, so it is reported as
// ErrIndex rather than a parse error.
func ValidateLombokAccessors(idx *symbols.Index) error {
	g := graph.New(graph.StringHash, graph.Directed())

	for fieldFQN, accessors := range idx.LombokAccessors {
		if err := addVertex(g, fieldFQN); err != nil {
			return err
		}
		for _, accessorFQN := range accessors {
			if err := addVertex(g, accessorFQN); err != nil {
				return err
			}
			if err := g.AddEdge(fieldFQN, accessorFQN); err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
				return fmt.Errorf("%w: %v", ErrIndex, err)
			}
		}
	}

	edges, err := g.Edges()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIndex, err)
	}

	for _, e := range edges {
		fieldFQN, accessorFQN := e.Source, e.Target
		if containingClass(fieldFQN) != containingClass(accessorFQN) {
			return fmt.Errorf("%w: lombok accessor %q is not in field %q's containing class",
				ErrIndex, accessorFQN, fieldFQN)
		}
	}

	return nil
}

func addVertex(g graph.Graph[string, string], v string) error {
	if err := g.AddVertex(v); err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
		return fmt.Errorf("%w: %v", ErrIndex, err)
	}
	return nil
}

func containingClass(fqn string) string {
	i := strings.LastIndex(fqn, ".")
	if i < 0 {
		return fqn
	}
	return fqn[:i]
}
