package indexer

import (
	"errors"
	"strings"

	"github.com/dominikbraun/graph"

	"github.com/kjnav/kjnav/internal/symbols"
)

// kotlinImplicitImports are the packages every Kotlin file imports without
// writing an import statement.
var kotlinImplicitImports = []string{
	"kotlin",
	"kotlin.annotation",
	"kotlin.collections",
	"kotlin.comparisons",
	"kotlin.io",
	"kotlin.ranges",
	"kotlin.sequences",
	"kotlin.text",
}

type declRef struct {
	FQN  string
	File string
}

// CrossReference runs the single whole-index pass of §4.4: it refines
// reference FQNs using the full declaration set, then synthesizes
// companion-object aliases.
func CrossReference(idx *symbols.Index) {
	declsByName := buildDeclsByName(idx)

	type update struct {
		old symbols.Occurrence
		new string
	}
	var updates []update

	for _, occs := range idx.ByName {
		for _, o := range occs {
			if !o.Kind.IsReference() {
				continue
			}

			candidate := resolveCandidate(idx, o, declsByName)
			if candidate == "" {
				continue
			}
			candidate = followTypeAlias(idx, candidate)

			if hasDecl(declsByName, o.Name, o.FQN) {
				// Override rule: a current FQN that is already a valid
				// declaration FQN for this name is never demoted.
				continue
			}
			if candidate == o.FQN {
				continue
			}
			updates = append(updates, update{old: o, new: candidate})
		}
	}

	for _, u := range updates {
		idx.RewriteReferenceFQN(u.old, u.new)
	}

	RegisterCompanionAliases(idx)
}

func buildDeclsByName(idx *symbols.Index) map[string][]declRef {
	out := make(map[string][]declRef)
	for name, occs := range idx.ByName {
		for _, o := range occs {
			if o.Kind.IsDeclaration() && o.FQN != "" {
				out[name] = append(out[name], declRef{FQN: o.FQN, File: o.File})
			}
		}
	}
	return out
}

func hasDecl(declsByName map[string][]declRef, name, fqn string) bool {
	if fqn == "" {
		return false
	}
	for _, d := range declsByName[name] {
		if d.FQN == fqn {
			return true
		}
	}
	return false
}

// resolveCandidate runs the 5-step resolution order of §4.4(a), stopping
// at the first hit.
func resolveCandidate(idx *symbols.Index, o symbols.Occurrence, declsByName map[string][]declRef) string {
	fi, ok := idx.Files[o.File]
	if !ok {
		return ""
	}

	// 1. Explicit import of the same file.
	for _, imp := range fi.Imports {
		if imp.IsWildcard {
			continue
		}
		if imp.BoundName() == o.Name {
			return imp.Path
		}
	}

	// 2. Same-file declaration.
	for _, d := range declsByName[o.Name] {
		if d.File == o.File {
			return d.FQN
		}
	}

	// 3. Wildcard imports.
	for _, imp := range fi.Imports {
		if !imp.IsWildcard {
			continue
		}
		candidate := imp.Path + "." + o.Name
		if hasDecl(declsByName, o.Name, candidate) {
			return candidate
		}
	}

	// 4. Same-package declaration.
	if fi.Package != "" {
		candidate := fi.Package + "." + o.Name
		if hasDecl(declsByName, o.Name, candidate) {
			return candidate
		}
	}

	// 5. Kotlin implicit packages.
	for _, prefix := range kotlinImplicitImports {
		candidate := prefix + "." + o.Name
		if hasDecl(declsByName, o.Name, candidate) {
			return candidate
		}
	}

	return ""
}

// followTypeAlias chases idx.TypeAliases starting at start, detecting
// cycles with a dominikbraun/graph directed graph built with
// graph.PreventCycle(): each hop is attempted as a graph edge, and
// graph.ErrEdgeCreatesCycle signals the cycle. On cycle, the last FQN
// visited before the closing edge is returned (§9: "accept input cycles;
// detect with a visited set; return the last FQN visited").
func followTypeAlias(idx *symbols.Index, start string) string {
	g := graph.New(graph.StringHash, graph.Directed(), graph.PreventCycle())
	_ = g.AddVertex(start)

	current := start
	for hops := 0; hops <= len(idx.TypeAliases); hops++ {
		target, ok := idx.TypeAliases[current]
		if !ok {
			return current
		}

		_ = g.AddVertex(target)
		if err := g.AddEdge(current, target); err != nil {
			if errors.Is(err, graph.ErrEdgeCreatesCycle) {
				return current
			}
			// Already-visited edge (revisiting without a fresh cycle,
			// e.g. a diamond in the alias graph): stop where we are.
			return current
		}
		current = target
	}
	return current
}

// RegisterCompanionAliases duplicates every occurrence whose FQN contains
// ".Companion." under the FQN with that segment collapsed to ".", so
// callers writing MyClass.member match regardless of whether member lives
// on a companion object.
func RegisterCompanionAliases(idx *symbols.Index) {
	const marker = ".Companion."
	var toAdd []symbols.Occurrence

	for fqn, occs := range idx.ByFQN {
		if !strings.Contains(fqn, marker) {
			continue
		}
		collapsed := strings.Replace(fqn, marker, ".", 1)
		for _, o := range occs {
			alias := o
			alias.FQN = collapsed
			toAdd = append(toAdd, alias)
		}
	}

	for _, o := range toAdd {
		idx.AddOccurrence(o)
	}
}
