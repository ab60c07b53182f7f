package query

import (
	"strings"

	"github.com/kjnav/kjnav/internal/symbols"
)

// FindDefinition implements §4.5. file and line are optional; pass ""
// and 0 when absent.
func FindDefinition(idx *symbols.Index, symbol, file string, line int) []symbols.Occurrence {
	fqn := resolveFQNHint(idx, symbol, file, line)

	var decls []symbols.Occurrence
	if fqn != "" {
		decls = filterKind(idx.ByFQN[fqn], symbols.Kind.IsDeclaration)
		if len(decls) == 0 {
			if target, ok := idx.TypeAliases[fqn]; ok {
				decls = filterKind(idx.ByFQN[target], symbols.Kind.IsDeclaration)
			}
		}
	}

	if len(decls) == 0 {
		decls = filterKind(idx.ByName[symbol], symbols.Kind.IsDeclaration)
	}

	decls = dedupe(decls)
	sortByFileLine(decls)
	return decls
}

// resolveFQNHint is the first step of §4.5: an exact (file, line) match,
// else symbol-as-FQN if it contains a dot, else no hint. FindUsages uses
// resolveUsagesFQN, which adds a unique-declaration fallback.
func resolveFQNHint(idx *symbols.Index, symbol, file string, line int) string {
	if file != "" && line > 0 {
		if o, ok := occurrenceAt(idx, symbol, file, line); ok {
			return o.FQN
		}
	}
	if strings.Contains(symbol, ".") {
		return symbol
	}
	return ""
}
