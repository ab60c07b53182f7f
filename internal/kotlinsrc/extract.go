package kotlinsrc

import (
	"context"
	"fmt"
	"unicode"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/kotlin"

	"github.com/kjnav/kjnav/internal/symbols"
	"github.com/kjnav/kjnav/internal/tsutil"
)

// TypeAliasEdge is a typealias -> target-name-as-written edge destined for
// Index.TypeAliases.
type TypeAliasEdge struct {
	AliasFQN   string
	TargetName string
}

// Result is everything per-file extraction produces for one Kotlin file.
type Result struct {
	FileInfo    symbols.FileInfo
	Occurrences []symbols.Occurrence
	TypeAliases []TypeAliasEdge
}

// ExtractFile parses a single Kotlin source file and runs the five
// extraction sub-passes over it.
func ExtractFile(path string, source []byte) (Result, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(kotlin.GetLanguage())

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
		path:    path,
		source:  source,
		pkg:     pkg,
		imports: imports,
		scope:   &scope,
		skip:    make(map[symbols.ByteRange]bool),
	}

	var typeAliases []TypeAliasEdge
	e.extractDeclarations(root, &typeAliases)
	e.extractReferences(root)

	fi := symbols.FileInfo{Path: path, Package: pkg, Imports: imports}
	occs := append([]symbols.Occurrence{}, e.occurrences...)
	occs = append(occs, symbols.ImportsToOccurrences(path, imports)...)

	return Result{FileInfo: fi, Occurrences: occs, TypeAliases: typeAliases}, nil
}

func extractPackage(root *sitter.Node, source []byte) string {
	header := tsutil.FindChildOfType(root, nodePackageHeader)
	if header == nil {
		return ""
	}
	ident := tsutil.FindChildOfType(header, nodeIdentifier)
	if ident == nil {
		return ""
	}
	return tsutil.Text(ident, source)
}

func extractImports(root *sitter.Node, source []byte) []symbols.Import {
	list := tsutil.FindChildOfType(root, nodeImportList)
	if list == nil {
		return nil
	}

	var out []symbols.Import
	for _, header := range tsutil.Children(list) {
		if header.Type() != nodeImportHeader {
			continue
		}

		ident := tsutil.FindChildOfType(header, nodeIdentifier)
		path := ""
		if ident != nil {
			path = tsutil.Text(ident, source)
		}

		isWildcard := tsutil.HasChildOfType(header, nodeWildcardImport)

		alias := ""
		children := tsutil.Children(header)
		if aliasNode := tsutil.FindChildOfType(header, "import_alias"); aliasNode != nil {
			children = tsutil.Children(aliasNode)
		}
		for i, c := range children {
			if c.Type() == kwAs && i+1 < len(children) {
				next := children[i+1]
				switch next.Type() {
				case nodeIdentifier, nodeSimpleIdent, nodeTypeIdentifier:
					alias = tsutil.Text(next, source)
				}
			}
		}

		line, col := tsutil.Position(header)
		out = append(out, symbols.Import{
			Path:       path,
			Alias:      alias,
			IsWildcard: isWildcard,
			Line:       line,
			Column:     col,
			ByteRange:  tsutil.Range(header),
		})
	}
	return out
}

// buildScopeTree registers a scope segment for every class/object body and
// companion-object body.
func buildScopeTree(node *sitter.Node, source []byte, scope *symbols.ScopeTree) {
	switch node.Type() {
	case nodeClassDeclaration, nodeObjectDeclaration:
		name := declarationName(node, source)
		if body := findBody(node); body != nil {
			scope.Add(name, tsutil.Range(body))
		}
	case nodeCompanionObject:
		name := companionName(node, source)
		if body := findBody(node); body != nil {
			scope.Add(name, tsutil.Range(body))
		}
	}
	for _, c := range tsutil.Children(node) {
		buildScopeTree(c, source, scope)
	}
}

func findBody(node *sitter.Node) *sitter.Node {
	if b := tsutil.FindChildOfType(node, nodeClassBody); b != nil {
		return b
	}
	return tsutil.FindChildOfType(node, nodeEnumClassBody)
}

func declarationName(node *sitter.Node, source []byte) string {
	ident := tsutil.FindChildOfType(node, nodeSimpleIdent)
	if ident == nil {
		ident = tsutil.FindChildOfType(node, nodeIdentifier)
	}
	return tsutil.Text(ident, source)
}

func companionName(node *sitter.Node, source []byte) string {
	if name := declarationName(node, source); name != "" {
		return name
	}
	return "Companion"
}

type extraction struct {
	path        string
	source      []byte
	pkg         string
	imports     []symbols.Import
	scope       *symbols.ScopeTree
	skip        map[symbols.ByteRange]bool
	occurrences []symbols.Occurrence
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

// extractDeclarations walks the whole tree emitting declaration
// occurrences (§4.1 sub-pass 4).
func (e *extraction) extractDeclarations(node *sitter.Node, aliases *[]TypeAliasEdge) {
	switch node.Type() {
	case nodeClassDeclaration:
		e.declareClass(node)
	case nodeObjectDeclaration:
		e.declareNamed(node, symbols.ObjectDeclaration)
	case nodeCompanionObject:
		name := companionName(node, e.source)
		ident := tsutil.FindChildOfType(node, nodeSimpleIdent)
		nameNode := node
		if ident != nil {
			nameNode = ident
		}
		e.markSkip(nameNode)
		e.emit(nameNode, name, symbols.CompanionObjectDeclaration, e.fqnAt(node, name), "")
	case nodeFunctionDeclaration:
		e.declareFunction(node)
	case nodePropertyDeclaration:
		e.declareProperty(node)
	case "enum_entry":
		e.declareNamed(node, symbols.EnumEntryDeclaration)
	case nodeTypeAlias:
		e.declareTypeAlias(node, aliases)
	}

	for _, c := range tsutil.Children(node) {
		e.extractDeclarations(c, aliases)
	}
}

func (e *extraction) markSkip(node *sitter.Node) {
	e.skip[tsutil.Range(node)] = true
}

func (e *extraction) declareClass(node *sitter.Node) {
	ident := tsutil.FindChildOfType(node, nodeTypeIdentifier)
	if ident == nil {
		ident = tsutil.FindChildOfType(node, nodeSimpleIdent)
	}
	if ident == nil {
		return
	}
	e.markSkip(ident)
	name := tsutil.Text(ident, e.source)
	kind := symbols.ClassDeclaration
	if tsutil.HasChildOfType(node, kwInterface) {
		kind = symbols.InterfaceDeclaration
	}
	e.emit(ident, name, kind, e.fqnAt(node, name), "")
}

func (e *extraction) declareNamed(node *sitter.Node, kind symbols.Kind) {
	ident := tsutil.FindChildOfType(node, nodeTypeIdentifier)
	if ident == nil {
		ident = tsutil.FindChildOfType(node, nodeSimpleIdent)
	}
	if ident == nil {
		return
	}
	e.markSkip(ident)
	name := tsutil.Text(ident, e.source)
	e.emit(ident, name, kind, e.fqnAt(node, name), "")
}

// declareFunction distinguishes a plain FunctionDeclaration from an
// ExtensionFunctionDeclaration: the latter has a user_type child
// appearing before its name identifier.
func (e *extraction) declareFunction(node *sitter.Node) {
	children := tsutil.Children(node)

	var nameIdx = -1
	var nameNode *sitter.Node
	for i, c := range children {
		if c.Type() == nodeSimpleIdent {
			nameIdx = i
			nameNode = c
			break
		}
	}
	if nameNode == nil {
		return
	}

	var receiverNode *sitter.Node
	for i, c := range children {
		if i >= nameIdx {
			break
		}
		if c.Type() == nodeUserType {
			receiverNode = c
		}
	}

	e.markSkip(nameNode)
	name := tsutil.Text(nameNode, e.source)

	if receiverNode != nil {
		receiver := tsutil.Text(receiverNode, e.source)
		e.emit(nameNode, name, symbols.ExtensionFunctionDeclaration, e.fqnAt(node, name), receiver)
		return
	}
	e.emit(nameNode, name, symbols.FunctionDeclaration, e.fqnAt(node, name), "")
}

// declareProperty finds the name inside the property's variable_declaration,
// falling back to the first identifier child.
func (e *extraction) declareProperty(node *sitter.Node) {
	var nameNode *sitter.Node
	if vd := tsutil.FindChildOfType(node, nodeVariableDeclaration); vd != nil {
		nameNode = tsutil.FindChildOfType(vd, nodeSimpleIdent)
	}
	if nameNode == nil {
		nameNode = tsutil.FindChildOfType(node, nodeSimpleIdent)
	}
	if nameNode == nil {
		return
	}
	e.markSkip(nameNode)
	name := tsutil.Text(nameNode, e.source)
	e.emit(nameNode, name, symbols.PropertyDeclaration, e.fqnAt(node, name), "")
}

// declareTypeAlias emits a TypeAliasDeclaration and records the
// alias-FQN -> target-name edge. The target is the first type/identifier
// child following the "=" terminal.
func (e *extraction) declareTypeAlias(node *sitter.Node, aliases *[]TypeAliasEdge) {
	nameNode := tsutil.FindChildOfType(node, nodeTypeIdentifier)
	if nameNode == nil {
		nameNode = tsutil.FindChildOfType(node, nodeSimpleIdent)
	}
	if nameNode == nil {
		return
	}
	e.markSkip(nameNode)
	name := tsutil.Text(nameNode, e.source)
	fqn := e.fqnAt(node, name)
	e.emit(nameNode, name, symbols.TypeAliasDeclaration, fqn, "")

	children := tsutil.Children(node)
	sawEquals := false
	for _, c := range children {
		if sawEquals {
			switch c.Type() {
			case nodeUserType, nodeTypeIdentifier, nodeSimpleIdent, nodeIdentifier:
				target := tsutil.Text(leftmostSimpleNameNode(c), e.source)
				if target != "" {
					*aliases = append(*aliases, TypeAliasEdge{AliasFQN: fqn, TargetName: target})
				}
				return
			}
		}
		if c.Type() == "=" {
			sawEquals = true
		}
	}
}

// extractReferences is the fifth sub-pass (§4.1): emits reference
// occurrences while traversing, honoring the dominated-node skip rules.
func (e *extraction) extractReferences(node *sitter.Node) {
	switch node.Type() {
	case nodePackageHeader, nodeImportList:
		return
	case "annotation", "type_parameters", "label":
		return
	case nodeCallExpression:
		e.referenceCall(node)
		return
	case nodeNavigationExpression:
		e.referenceNavigation(node)
		return
	case nodeUserType:
		e.referenceUserType(node)
		return
	case nodeIdentifier, nodeSimpleIdent:
		if !e.skip[tsutil.Range(node)] {
			fqn := symbols.ResolveReference(tsutil.Text(node, e.source), e.pkg, e.imports)
			e.emit(node, tsutil.Text(node, e.source), symbols.PropertyReference, fqn, "")
		}
		return
	}

	for _, c := range tsutil.Children(node) {
		e.extractReferences(c)
	}
}

func (e *extraction) referenceCall(node *sitter.Node) {
	callee := tsutil.FirstNamedChild(node)
	if callee == nil {
		return
	}

	switch callee.Type() {
	case nodeNavigationExpression:
		last := tsutil.LastNamedChild(callee)
		receiver := tsutil.FirstNamedChild(callee)
		if last != nil {
			fqn := symbols.ResolveReference(tsutil.Text(last, e.source), e.pkg, e.imports)
			receiverText := ""
			if receiver != nil {
				receiverText = tsutil.Text(receiver, e.source)
			}
			e.emit(last, tsutil.Text(last, e.source), symbols.CallSite, fqn, receiverText)
		}
		if receiver != nil {
			e.extractReferences(receiver)
		}
	case nodeIdentifier, nodeSimpleIdent:
		fqn := symbols.ResolveReference(tsutil.Text(callee, e.source), e.pkg, e.imports)
		e.emit(callee, tsutil.Text(callee, e.source), symbols.CallSite, fqn, "")
	default:
		e.extractReferences(callee)
	}

	for _, c := range tsutil.Children(node) {
		if c.StartByte() == callee.StartByte() && c.EndByte() == callee.EndByte() {
			continue
		}
		e.extractReferences(c)
	}
}

func (e *extraction) referenceNavigation(node *sitter.Node) {
	last := tsutil.LastNamedChild(node)
	receiver := tsutil.FirstNamedChild(node)
	if last == nil || receiver == nil {
		return
	}

	fqn := symbols.ResolveReference(tsutil.Text(last, e.source), e.pkg, e.imports)
	receiverText := tsutil.Text(receiver, e.source)
	e.emit(last, tsutil.Text(last, e.source), symbols.PropertyReference, fqn, receiverText)

	switch receiver.Type() {
	case nodeIdentifier, nodeSimpleIdent:
		receiverFQN := symbols.ResolveReference(receiverText, e.pkg, e.imports)
		e.emit(receiver, receiverText, symbols.PropertyReference, receiverFQN, "")
	default:
		e.extractReferences(receiver)
	}
}

// referenceUserType emits a TypeReference for the leftmost simple name
// when it starts with an uppercase letter; it never descends into generic
// arguments.
func (e *extraction) referenceUserType(node *sitter.Node) {
	name := leftmostSimpleNameNode(node)
	if name == nil {
		return
	}
	text := tsutil.Text(name, e.source)
	if text == "" || !unicode.IsUpper(rune(text[0])) {
		return
	}
	fqn := symbols.ResolveReference(text, e.pkg, e.imports)
	e.emit(name, text, symbols.TypeReference, fqn, "")
}

func leftmostSimpleNameNode(node *sitter.Node) *sitter.Node {
	if node.Type() == nodeSimpleIdent || node.Type() == nodeTypeIdentifier || node.Type() == nodeIdentifier {
		return node
	}
	for _, c := range tsutil.Children(node) {
		if found := leftmostSimpleNameNode(c); found != nil {
			return found
		}
	}
	return nil
}
