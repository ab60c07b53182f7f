// Package render formats SymbolOccurrences for textual consumers (§6).
package render

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kjnav/kjnav/internal/symbols"
)

// FormatOccurrences renders occs against projectRoot using the format
// specified in §6:
//
//	Found <n> result(s):
//	  <relative_path>:<line>:<column> - <KindName> `<name>` [<fqn>] (receiver: <receiver>)
//
// or "No results found." when occs is empty. The FQN and receiver
// clauses are omitted when absent.
func FormatOccurrences(projectRoot string, occs []symbols.Occurrence) string {
	if len(occs) == 0 {
		return "No results found."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d result(s):\n", len(occs))
	for _, o := range occs {
		fmt.Fprintf(&b, "  %s:%d:%d - %s `%s`%s%s\n",
			relativize(projectRoot, o.File), o.Line, o.Column, string(o.Kind), o.Name,
			fqnClause(o.FQN), receiverClause(o.ReceiverType))
	}
	return strings.TrimRight(b.String(), "\n")
}

func fqnClause(fqn string) string {
	if fqn == "" {
		return ""
	}
	return " [" + fqn + "]"
}

func receiverClause(receiver string) string {
	if receiver == "" {
		return ""
	}
	return " (receiver: " + receiver + ")"
}

func relativize(root, path string) string {
	if root == "" {
		return path
	}
	rel, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}
