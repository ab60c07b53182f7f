package symbols

// ImportsToOccurrences is the post-processing step shared by both
// language pipelines: every import statement also becomes an Import
// occurrence so it can participate in find_usages(include_imports=true).
func ImportsToOccurrences(file string, imports []Import) []Occurrence {
	occs := make([]Occurrence, 0, len(imports))
	for _, imp := range imports {
		name := imp.BoundName()
		if imp.IsWildcard {
			name = lastSegment(imp.Path)
		}
		occs = append(occs, Occurrence{
			Name:      name,
			FQN:       imp.Path,
			Kind:      Import,
			File:      file,
			Line:      imp.Line,
			Column:    imp.Column,
			ByteRange: imp.ByteRange,
		})
	}
	return occs
}
