package symbols

// ResolveReference is the per-file, best-effort FQN guess made during
// reference extraction (§4.2). Cross-reference refines it later using
// whole-index knowledge.
func ResolveReference(name, pkg string, imports []Import) string {
	for _, imp := range imports {
		if imp.IsWildcard {
			continue
		}
		if imp.BoundName() == name {
			return imp.Path
		}
	}
	if pkg != "" {
		return pkg + "." + name
	}
	return ""
}
