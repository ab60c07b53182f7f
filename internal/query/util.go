// Package query implements find_definition and find_usages (§4.5, §4.6):
// resolving a symbol name plus optional file/line context against a
// built symbols.Index.
package query

import (
	"sort"
	"strings"

	"github.com/kjnav/kjnav/internal/symbols"
)

// siteKey identifies an occurrence by its physical location, used for
// identity-based deduplication when combining overlapping result
// sources.
type siteKey struct {
	file  string
	start uint32
	end   uint32
}

func keyOf(o symbols.Occurrence) siteKey {
	return siteKey{file: o.File, start: o.ByteRange.Start, end: o.ByteRange.End}
}

func dedupe(occs []symbols.Occurrence) []symbols.Occurrence {
	seen := make(map[siteKey]bool, len(occs))
	out := make([]symbols.Occurrence, 0, len(occs))
	for _, o := range occs {
		k := keyOf(o)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, o)
	}
	return out
}

func sortByFileLine(occs []symbols.Occurrence) {
	sort.SliceStable(occs, func(i, j int) bool {
		if occs[i].File != occs[j].File {
			return occs[i].File < occs[j].File
		}
		return occs[i].Line < occs[j].Line
	})
}

func filterKind(occs []symbols.Occurrence, match func(symbols.Kind) bool) []symbols.Occurrence {
	out := make([]symbols.Occurrence, 0, len(occs))
	for _, o := range occs {
		if match(o.Kind) {
			out = append(out, o)
		}
	}
	return out
}

// packageOf returns the FQN with its last dotted segment removed: the
// containing package/class for a member FQN.
func packageOf(fqn string) string {
	i := strings.LastIndex(fqn, ".")
	if i < 0 {
		return ""
	}
	return fqn[:i]
}

func lastSegment(s string) string {
	i := strings.LastIndex(s, ".")
	if i < 0 {
		return s
	}
	return s[i+1:]
}

// occurrenceAt finds an occurrence of name at the exact (file, line),
// regardless of kind, used to resolve the caller's file/line hint to an
// FQN.
func occurrenceAt(idx *symbols.Index, name, file string, line int) (symbols.Occurrence, bool) {
	for _, o := range idx.ByName[name] {
		if o.File == file && o.Line == line {
			return o, true
		}
	}
	return symbols.Occurrence{}, false
}

// couldReference is the conservative predicate of §4.6: a file could
// reference class C only if its imports or package place C in scope. If C
// cannot be determined, the predicate is true.
func couldReference(fi symbols.FileInfo, classFQN string) bool {
	if classFQN == "" {
		return true
	}
	classPackage := packageOf(classFQN)

	for _, imp := range fi.Imports {
		if !imp.IsWildcard && imp.Path == classFQN {
			return true
		}
		if imp.IsWildcard && imp.Path == classPackage {
			return true
		}
	}
	return fi.Package == classPackage
}
