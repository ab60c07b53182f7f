package query

import (
	"strings"

	"github.com/kjnav/kjnav/internal/symbols"
)

// FindUsages implements §4.6. file and line are optional; pass "" and 0
// when absent.
func FindUsages(idx *symbols.Index, symbol, file string, line int, includeImports bool) []symbols.Occurrence {
	fqn := resolveUsagesFQN(idx, symbol, file, line)

	var result []symbols.Occurrence
	if fqn != "" {
		result = usagesForFQN(idx, fqn, includeImports)
	}

	if len(result) == 0 {
		result = filterKind(idx.ByName[lastSegment(symbol)], symbols.Kind.IsReference)
		if includeImports {
			result = append(result, filterKind(idx.ByName[lastSegment(symbol)], isImport)...)
		}
	}

	result = dedupe(result)
	sortByFileLine(result)
	return result
}

func isImport(k symbols.Kind) bool { return k == symbols.Import }

func resolveUsagesFQN(idx *symbols.Index, symbol, file string, line int) string {
	if file != "" && line > 0 {
		if o, ok := occurrenceAt(idx, symbol, file, line); ok {
			return o.FQN
		}
	}
	if strings.Contains(symbol, ".") {
		return symbol
	}

	distinct := make(map[string]bool)
	for _, o := range idx.ByName[symbol] {
		if o.Kind.IsDeclaration() && o.FQN != "" {
			distinct[o.FQN] = true
		}
	}
	if len(distinct) == 1 {
		for fqn := range distinct {
			return fqn
		}
	}
	return ""
}

func usagesForFQN(idx *symbols.Index, fqn string, includeImports bool) []symbols.Occurrence {
	var out []symbols.Occurrence

	out = append(out, filterKind(idx.ByFQN[fqn], symbols.Kind.IsReference)...)
	if includeImports {
		out = append(out, filterKind(idx.ByFQN[fqn], isImport)...)
	}

	for aliasFQN, targetFQN := range idx.TypeAliases {
		if targetFQN == fqn {
			out = append(out, filterKind(idx.ByFQN[aliasFQN], symbols.Kind.IsReference)...)
		}
	}

	if accessors, ok := idx.LombokAccessors[fqn]; ok {
		out = append(out, lombokFieldUsages(idx, fqn)...)
		for _, accessorFQN := range accessors {
			out = append(out, filterKind(idx.ByFQN[accessorFQN], symbols.Kind.IsReference)...)
			accessorName := lastSegment(accessorFQN)
			out = append(out, simpleNameUsagesInScope(idx, accessorName, accessorFQN, packageOf(fqn))...)
		}
	}

	return out
}

// lombokFieldUsages catches Kotlin property-syntax uses of a Lombok field:
// simple-name references to the field whose FQN is not fqn but whose
// file "could reference" the field's containing class.
func lombokFieldUsages(idx *symbols.Index, fieldFQN string) []symbols.Occurrence {
	fieldName := lastSegment(fieldFQN)
	classFQN := packageOf(fieldFQN)

	var out []symbols.Occurrence
	for _, o := range idx.ByName[fieldName] {
		if !o.Kind.IsReference() || o.FQN == fieldFQN {
			continue
		}
		fi, ok := idx.Files[o.File]
		if !ok {
			continue
		}
		if couldReference(fi, classFQN) {
			out = append(out, o)
		}
	}
	return out
}

// simpleNameUsagesInScope finds references by simple name in files that
// could reference classFQN, excluding any occurrence already attributed
// to excludeFQN (to avoid double counting occurrences already included
// via direct FQN match).
func simpleNameUsagesInScope(idx *symbols.Index, name, excludeFQN, classFQN string) []symbols.Occurrence {
	var out []symbols.Occurrence
	for _, o := range idx.ByName[name] {
		if !o.Kind.IsReference() || o.FQN == excludeFQN {
			continue
		}
		fi, ok := idx.Files[o.File]
		if !ok {
			continue
		}
		if couldReference(fi, classFQN) {
			out = append(out, o)
		}
	}
	return out
}
