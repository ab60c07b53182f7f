package javasrc

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/kjnav/kjnav/internal/symbols"
	"github.com/kjnav/kjnav/internal/tsutil"
)

// synthesizeLombok inspects every class declaration for @Data (or
// @Getter+@Setter) and synthesizes accessor declarations for its
// non-static fields. Detection is purely syntactic: the presence of the
// annotation identifier, qualified or not, on the class declaration.
func (e *extraction) synthesizeLombok(node *sitter.Node) {
	if node.Type() == nodeClassDeclaration {
		e.synthesizeLombokForClass(node)
	}
	for _, c := range tsutil.Children(node) {
		e.synthesizeLombok(c)
	}
}

func (e *extraction) synthesizeLombokForClass(class *sitter.Node) {
	annotations := classAnnotations(class, e.source)
	hasData := annotations["Data"]
	hasGetterSetter := annotations["Getter"] && annotations["Setter"]
	if !hasData && !hasGetterSetter {
		return
	}

	name := declarationName(class, e.source)
	classFQN := e.fqnAt(class, name)

	body := tsutil.FindChildOfType(class, nodeClassBody)
	if body == nil {
		return
	}

	for _, member := range tsutil.Children(body) {
		if member.Type() != nodeFieldDeclaration {
			continue
		}
		e.synthesizeLombokForField(member, classFQN)
	}
}

func (e *extraction) synthesizeLombokForField(field *sitter.Node, classFQN string) {
	mods := tsutil.FindChildOfType(field, nodeModifiers)
	if mods != nil && tsutil.HasChildOfType(mods, "static") {
		return
	}
	isFinal := mods != nil && tsutil.HasChildOfType(mods, kwFinal)

	typeNode := tsutil.FieldChild(field, fieldType)
	isBoolean := typeNode != nil && tsutil.Text(typeNode, e.source) == "boolean"

	for _, declarator := range tsutil.Children(field) {
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

		name := tsutil.Text(nameNode, e.source)
		fieldFQN := classFQN + "." + name

		var accessors []string

		getter := getterName(name, isBoolean)
		e.emit(nameNode, getter, symbols.FunctionDeclaration, classFQN+"."+getter, "")
		accessors = append(accessors, classFQN+"."+getter)

		if !isFinal {
			setter := "set" + pascalCase(name)
			e.emit(nameNode, setter, symbols.FunctionDeclaration, classFQN+"."+setter, "")
			accessors = append(accessors, classFQN+"."+setter)
		}

		e.lombokAccessors[fieldFQN] = append(e.lombokAccessors[fieldFQN], accessors...)
	}
}

func getterName(field string, isBoolean bool) string {
	if isBoolean {
		if strings.HasPrefix(field, "is") {
			return field
		}
		return "is" + pascalCase(field)
	}
	return "get" + pascalCase(field)
}

func pascalCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func classAnnotations(class *sitter.Node, source []byte) map[string]bool {
	out := make(map[string]bool)
	mods := tsutil.FindChildOfType(class, nodeModifiers)
	if mods == nil {
		return out
	}
	for _, c := range tsutil.Children(mods) {
		if c.Type() != nodeAnnotation && c.Type() != nodeMarkerAnnotation {
			continue
		}
		nameNode := tsutil.FieldChild(c, fieldName)
		if nameNode == nil {
			nameNode = tsutil.FindChildOfType(c, nodeIdentifier)
		}
		if nameNode == nil {
			continue
		}
		name := tsutil.Text(nameNode, source)
		out[lastDotSegment(name)] = true
	}
	return out
}

func lastDotSegment(s string) string {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '.' {
			return s[i+1:]
		}
	}
	return s
}
