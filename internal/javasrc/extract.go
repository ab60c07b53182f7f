package javasrc

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"

	"github.com/kjnav/kjnav/internal/symbols"
	"github.com/kjnav/kjnav/internal/tsutil"
)

// Result is everything per-file extraction produces for one Java file.
type Result struct {
	FileInfo        symbols.FileInfo
	Occurrences     []symbols.Occurrence
	LombokAccessors map[string][]string
}

// ExtractFile parses a single Java source file, extracts declarations and
// references, and runs Lombok accessor synthesis over the declared
// classes.
func ExtractFile(path string, source []byte) (Result, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(java.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, source)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %s: %v", symbols.ErrParse, path, err)
	}
	defer tree.Close()

	root := tree.RootNode()

	pkg := extractPackage(root, source)
	imports := extractImports(root, source)

	var scope symbols.ScopeTree
	buildScopeTree(root, source, &scope)
	scope.Finalize()

	e := &extraction{
		path:            path,
		source:          source,
		pkg:             pkg,
		imports:         imports,
		scope:           &scope,
		skip:            make(map[symbols.ByteRange]bool),
		lombokAccessors: make(map[string][]string),
	}

	e.extractDeclarations(root)
	e.extractReferences(root)
	e.synthesizeLombok(root)

	fi := symbols.FileInfo{Path: path, Package: pkg, Imports: imports}
	occs := append([]symbols.Occurrence{}, e.occurrences...)
	occs = append(occs, symbols.ImportsToOccurrences(path, imports)...)

	return Result{FileInfo: fi, Occurrences: occs, LombokAccessors: e.lombokAccessors}, nil
}

func extractPackage(root *sitter.Node, source []byte) string {
	decl := tsutil.FindChildOfType(root, nodePackageDeclaration)
	if decl == nil {
		return ""
	}
	for _, c := range tsutil.Children(decl) {
		switch c.Type() {
		case nodeScopedIdentifier, nodeIdentifier:
			return tsutil.Text(c, source)
		}
	}
	return ""
}

// extractImports: a plain import takes the scoped_identifier text; a
// static import is treated the same way, with its member name left in
// path and the "static" keyword not recorded; a wildcard import sets
// is_wildcard and omits the trailing "*" from path.
func extractImports(root *sitter.Node, source []byte) []symbols.Import {
	var out []symbols.Import
	for _, decl := range tsutil.Children(root) {
		if decl.Type() != nodeImportDeclaration {
			continue
		}

		isWildcard := tsutil.HasChildOfType(decl, nodeAsterisk)

		var pathNode *sitter.Node
		for _, c := range tsutil.Children(decl) {
			switch c.Type() {
			case nodeScopedIdentifier, nodeIdentifier:
				pathNode = c
			}
		}
		path := ""
		if pathNode != nil {
			path = tsutil.Text(pathNode, source)
		}

		line, col := tsutil.Position(decl)
		out = append(out, symbols.Import{
			Path:       path,
			IsWildcard: isWildcard,
			Line:       line,
			Column:     col,
			ByteRange:  tsutil.Range(decl),
		})
	}
	return out
}

func buildScopeTree(node *sitter.Node, source []byte, scope *symbols.ScopeTree) {
	switch node.Type() {
	case nodeClassDeclaration, nodeInterfaceDeclaration, nodeEnumDeclaration,
		nodeRecordDeclaration, nodeAnnotationTypeDeclaration:
		name := declarationName(node, source)
		if body := findBody(node); body != nil {
			scope.Add(name, tsutil.Range(body))
		}
	}
	for _, c := range tsutil.Children(node) {
		buildScopeTree(c, source, scope)
	}
}

func findBody(node *sitter.Node) *sitter.Node {
	for _, typ := range []string{nodeClassBody, nodeInterfaceBody, nodeEnumBody, nodeAnnotationTypeBody, nodeRecordBody} {
		if b := tsutil.FindChildOfType(node, typ); b != nil {
			return b
		}
	}
	return nil
}

func declarationName(node *sitter.Node, source []byte) string {
	if n := tsutil.FieldChild(node, fieldName); n != nil {
		return tsutil.Text(n, source)
	}
	if n := tsutil.FindChildOfType(node, nodeIdentifier); n != nil {
		return tsutil.Text(n, source)
	}
	return ""
}

type extraction struct {
	path            string
	source          []byte
	pkg             string
	imports         []symbols.Import
	scope           *symbols.ScopeTree
	skip            map[symbols.ByteRange]bool
	occurrences     []symbols.Occurrence
	lombokAccessors map[string][]string
}

func (e *extraction) fqnAt(node *sitter.Node, name string) string {
	prefix := e.scope.FQNPrefixAt(e.pkg, node.StartByte())
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}

func (e *extraction) emit(node *sitter.Node, name string, kind symbols.Kind, fqn, receiver string) {
	line, col := tsutil.Position(node)
	e.occurrences = append(e.occurrences, symbols.Occurrence{
		Name:         name,
		FQN:          fqn,
		Kind:         kind,
		File:         e.path,
		Line:         line,
		Column:       col,
		ByteRange:    tsutil.Range(node),
		ReceiverType: receiver,
	})
}

func (e *extraction) markSkip(node *sitter.Node) {
	if node != nil {
		e.skip[tsutil.Range(node)] = true
	}
}

// extractDeclarations implements the Java declaration mapping table
// (§4.1).
func (e *extraction) extractDeclarations(node *sitter.Node) {
	switch node.Type() {
	case nodeClassDeclaration:
		e.declareNamed(node, symbols.ClassDeclaration)
	case nodeInterfaceDeclaration:
		e.declareNamed(node, symbols.InterfaceDeclaration)
	case nodeEnumDeclaration:
		e.declareNamed(node, symbols.ClassDeclaration)
	case nodeEnumConstant:
		e.declareNamed(node, symbols.EnumEntryDeclaration)
	case nodeRecordDeclaration:
		e.declareNamed(node, symbols.RecordDeclaration)
	case nodeAnnotationTypeDeclaration:
		e.declareNamed(node, symbols.AnnotationTypeDeclaration)
	case nodeMethodDeclaration:
		e.declareNamed(node, symbols.FunctionDeclaration)
	case nodeConstructorDeclaration:
		e.declareConstructor(node)
	case nodeFieldDeclaration:
		e.declareFields(node)
	}

	for _, c := range tsutil.Children(node) {
		e.extractDeclarations(c)
	}
}

func (e *extraction) declareNamed(node *sitter.Node, kind symbols.Kind) {
	nameNode := tsutil.FieldChild(node, fieldName)
	if nameNode == nil {
		return
	}
	e.markSkip(nameNode)
	name := tsutil.Text(nameNode, e.source)
	e.emit(nameNode, name, kind, e.fqnAt(node, name), "")
}

// declareConstructor: FQN is com.example.Foo.Foo — the constructor's own
// name field combined with the enclosing class's scope prefix, which
// already includes the class name.
func (e *extraction) declareConstructor(node *sitter.Node) {
	nameNode := tsutil.FieldChild(node, fieldName)
	if nameNode == nil {
		return
	}
	e.markSkip(nameNode)
	name := tsutil.Text(nameNode, e.source)
	e.emit(nameNode, name, symbols.ConstructorDeclaration, e.fqnAt(node, name), "")
}

// declareFields emits one PropertyDeclaration per variable_declarator,
// with the FQN built from the field_declaration's own start byte so every
// declarator in `int a, b;` shares the same scope prefix.
func (e *extraction) declareFields(node *sitter.Node) {
	for _, declarator := range tsutil.Children(node) {
		if declarator.Type() != nodeVariableDeclarator {
			continue
		}
		nameNode := tsutil.FieldChild(declarator, fieldName)
		if nameNode == nil {
			nameNode = tsutil.FindChildOfType(declarator, nodeIdentifier)
		}
		if nameNode == nil {
			continue
		}
		e.markSkip(nameNode)
		name := tsutil.Text(nameNode, e.source)
		prefix := e.scope.FQNPrefixAt(e.pkg, node.StartByte())
		fqn := name
		if prefix != "" {
			fqn = prefix + "." + name
		}
		e.emit(nameNode, name, symbols.PropertyDeclaration, fqn, "")
	}
}

// extractReferences implements the Java reference mapping table (§4.1).
func (e *extraction) extractReferences(node *sitter.Node) {
	switch node.Type() {
	case nodePackageDeclaration, nodeImportDeclaration:
		return
	case nodeAnnotation, nodeMarkerAnnotation:
		return
	case nodeMethodInvocation:
		e.referenceMethodInvocation(node)
		return
	case nodeObjectCreationExpression:
		e.referenceObjectCreation(node)
		return
	case nodeFieldAccess:
		e.referenceFieldAccess(node)
		return
	case nodeTypeIdentifier:
		if !e.skip[tsutil.Range(node)] {
			text := tsutil.Text(node, e.source)
			fqn := symbols.ResolveReference(text, e.pkg, e.imports)
			e.emit(node, text, symbols.TypeReference, fqn, "")
		}
		return
	case nodeIdentifier:
		if e.skip[tsutil.Range(node)] {
			return
		}
		text := tsutil.Text(node, e.source)
		fqn := symbols.ResolveReference(text, e.pkg, e.imports)
		e.emit(node, text, symbols.PropertyReference, fqn, "")
		return
	}

	for _, c := range tsutil.Children(node) {
		e.extractReferences(c)
	}
}

func (e *extraction) referenceMethodInvocation(node *sitter.Node) {
	nameNode := tsutil.FieldChild(node, fieldName)
	if nameNode == nil {
		return
	}
	receiverNode := tsutil.FieldChild(node, fieldObject)
	receiver := ""
	if receiverNode != nil {
		receiver = tsutil.Text(receiverNode, e.source)
	}
	fqn := symbols.ResolveReference(tsutil.Text(nameNode, e.source), e.pkg, e.imports)
	e.emit(nameNode, tsutil.Text(nameNode, e.source), symbols.CallSite, fqn, receiver)

	for _, c := range tsutil.Children(node) {
		if sameNode(c, nameNode) {
			continue
		}
		e.extractReferences(c)
	}
}

// referenceObjectCreation emits a CallSite at the constructed type's
// leftmost identifier, unwrapping generic_type if present.
func (e *extraction) referenceObjectCreation(node *sitter.Node) {
	typeNode := tsutil.FieldChild(node, fieldType)
	if typeNode != nil && typeNode.Type() == nodeGenericType {
		if inner := tsutil.FirstNamedChild(typeNode); inner != nil {
			typeNode = inner
		}
	}
	if typeNode != nil {
		name := leftmostIdentifier(typeNode)
		if name != nil {
			text := tsutil.Text(name, e.source)
			fqn := symbols.ResolveReference(text, e.pkg, e.imports)
			e.emit(name, text, symbols.CallSite, fqn, "")
		}
	}

	for _, c := range tsutil.Children(node) {
		if typeNode != nil && sameNode(c, typeNode) {
			continue
		}
		if c.Type() == fieldType {
			continue
		}
		e.extractReferences(c)
	}
}

func (e *extraction) referenceFieldAccess(node *sitter.Node) {
	fieldNode := tsutil.FieldChild(node, fieldField)
	receiverNode := tsutil.FieldChild(node, fieldObject)
	if fieldNode == nil {
		return
	}
	receiver := ""
	if receiverNode != nil {
		receiver = tsutil.Text(receiverNode, e.source)
	}
	fqn := symbols.ResolveReference(tsutil.Text(fieldNode, e.source), e.pkg, e.imports)
	e.emit(fieldNode, tsutil.Text(fieldNode, e.source), symbols.PropertyReference, fqn, receiver)

	if receiverNode != nil {
		e.extractReferences(receiverNode)
	}
}

func leftmostIdentifier(node *sitter.Node) *sitter.Node {
	if node.Type() == nodeIdentifier || node.Type() == nodeTypeIdentifier || node.Type() == nodeScopedTypeIdent {
		if node.Type() == nodeScopedTypeIdent {
			if last := tsutil.LastNamedChild(node); last != nil {
				return last
			}
		}
		return node
	}
	for _, c := range tsutil.Children(node) {
		if found := leftmostIdentifier(c); found != nil {
			return found
		}
	}
	return nil
}

func sameNode(a, b *sitter.Node) bool {
	return a.StartByte() == b.StartByte() && a.EndByte() == b.EndByte() && a.Type() == b.Type()
}
