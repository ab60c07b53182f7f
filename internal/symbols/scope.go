package symbols

import "sort"

// ScopeSegment is one named container: a class, object, enum, or
// companion body. Functions and blocks are never tracked — local
// shadowing is intentionally unmodeled.
type ScopeSegment struct {
	Name      string
	ByteRange ByteRange
}

func (s ScopeSegment) size() uint32 {
	return s.ByteRange.End - s.ByteRange.Start
}

func (s ScopeSegment) contains(offset uint32) bool {
	return offset > s.ByteRange.Start && offset < s.ByteRange.End
}

// ScopeTree is a file-local helper tracking nested container scopes so
// declarations can be assigned an FQN prefix.
type ScopeTree struct {
	segments []ScopeSegment
	sorted   bool
}

// Add registers a container scope. Call Finalize once all scopes for the
// file have been added.
func (t *ScopeTree) Add(name string, r ByteRange) {
	t.segments = append(t.segments, ScopeSegment{Name: name, ByteRange: r})
	t.sorted = false
}

// Finalize sorts segments by range start, as required before querying.
func (t *ScopeTree) Finalize() {
	sort.SliceStable(t.segments, func(i, j int) bool {
		return t.segments[i].ByteRange.Start < t.segments[j].ByteRange.Start
	})
	t.sorted = true
}

// ChainAt returns the enclosing scope chain at offset, outermost first:
// every segment that strictly contains offset, sorted by range size
// descending.
func (t *ScopeTree) ChainAt(offset uint32) []ScopeSegment {
	var chain []ScopeSegment
	for _, seg := range t.segments {
		if seg.contains(offset) {
			chain = append(chain, seg)
		}
	}
	sort.SliceStable(chain, func(i, j int) bool {
		return chain[i].size() > chain[j].size()
	})
	return chain
}

// FQNPrefixAt computes "pkg.outer.inner..." for offset, dropping empty
// components.
func (t *ScopeTree) FQNPrefixAt(pkg string, offset uint32) string {
	parts := make([]string, 0, 4)
	if pkg != "" {
		parts = append(parts, pkg)
	}
	for _, seg := range t.ChainAt(offset) {
		if seg.Name != "" {
			parts = append(parts, seg.Name)
		}
	}
	return joinDots(parts)
}

func joinDots(parts []string) string {
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out == "" {
			out = p
		} else {
			out = out + "." + p
		}
	}
	return out
}
