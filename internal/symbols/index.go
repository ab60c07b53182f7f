package symbols

import "fmt"

// Index is the assembled, whole-project result of extraction. It is
// mutated only during the build and cross-reference phases; the serve
// phase treats it as immutable once published.
type Index struct {
	ByName map[string][]Occurrence
	ByFQN  map[string][]Occurrence
	Files  map[string]FileInfo

	// TypeAliases maps an alias FQN to the target name as written
	// (Kotlin typealias).
	TypeAliases map[string]string

	// LombokAccessors maps a field FQN to the FQNs of its synthesized
	// Lombok accessors.
	LombokAccessors map[string][]string
}

// NewIndex returns an empty, ready-to-populate Index.
func NewIndex() *Index {
	return &Index{
		ByName:          make(map[string][]Occurrence),
		ByFQN:           make(map[string][]Occurrence),
		Files:           make(map[string]FileInfo),
		TypeAliases:     make(map[string]string),
		LombokAccessors: make(map[string][]string),
	}
}

// AddOccurrence appends o to ByName[o.Name] and, if o.FQN is set, to
// ByFQN[o.FQN] as well.
func (idx *Index) AddOccurrence(o Occurrence) {
	idx.ByName[o.Name] = append(idx.ByName[o.Name], o)
	if o.FQN != "" {
		idx.ByFQN[o.FQN] = append(idx.ByFQN[o.FQN], o)
	}
}

// AddFileInfo stores fi by path, overwriting any prior entry.
func (idx *Index) AddFileInfo(fi FileInfo) {
	idx.Files[fi.Path] = fi
}

// AddTypeAlias records an alias FQN -> target name edge.
func (idx *Index) AddTypeAlias(aliasFQN, targetName string) {
	idx.TypeAliases[aliasFQN] = targetName
}

// RewriteReferenceFQN moves the occurrence identified by (file,
// byteRange) from its old FQN bucket to newFQN, updating ByName in
// place. Used by cross-reference to refine a reference's best-effort
// FQN.
func (idx *Index) RewriteReferenceFQN(o Occurrence, newFQN string) Occurrence {
	if o.FQN != "" {
		bucket := idx.ByFQN[o.FQN]
		for i, cand := range bucket {
			if cand.sameSite(o) {
				bucket = append(bucket[:i], bucket[i+1:]...)
				break
			}
		}
		if len(bucket) == 0 {
			delete(idx.ByFQN, o.FQN)
		} else {
			idx.ByFQN[o.FQN] = bucket
		}
	}

	updated := o
	updated.FQN = newFQN
	idx.ByFQN[newFQN] = append(idx.ByFQN[newFQN], updated)

	nameBucket := idx.ByName[o.Name]
	for i, cand := range nameBucket {
		if cand.sameSite(o) {
			nameBucket[i] = updated
			break
		}
	}
	return updated
}

// Stats summarizes an Index for logging and the reindex report.
type Stats struct {
	Files            int
	UniqueNames      int
	UniqueFQNs       int
	TotalOccurrences int
	TypeAliases      int
}

// Stats computes summary counts over the index.
func (idx *Index) Stats() Stats {
	total := 0
	for _, occs := range idx.ByName {
		total += len(occs)
	}
	return Stats{
		Files:            len(idx.Files),
		UniqueNames:      len(idx.ByName),
		UniqueFQNs:       len(idx.ByFQN),
		TotalOccurrences: total,
		TypeAliases:      len(idx.TypeAliases),
	}
}

func (s Stats) String() string {
	return fmt.Sprintf(
		"Indexed %d files: %d unique names, %d FQNs, %d total occurrences, %d type aliases",
		s.Files, s.UniqueNames, s.UniqueFQNs, s.TotalOccurrences, s.TypeAliases,
	)
}
