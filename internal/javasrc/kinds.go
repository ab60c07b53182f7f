// Package javasrc implements the Java occurrence-extraction pipeline and
// Lombok accessor synthesis. Tree-sitter node kinds are collected here
// (tree-sitter-java) rather than scattered through extract.go.
package javasrc

const (
	nodeProgram            = "program"
	nodePackageDeclaration = "package_declaration"
	nodeImportDeclaration  = "import_declaration"
	nodeScopedIdentifier   = "scoped_identifier"
	nodeIdentifier         = "identifier"
	nodeTypeIdentifier     = "type_identifier"
	nodeScopedTypeIdent    = "scoped_type_identifier"
	nodeGenericType        = "generic_type"
	nodeAsterisk           = "asterisk"
	kwStatic               = "static"
	kwFinal                = "final"

	nodeClassDeclaration          = "class_declaration"
	nodeInterfaceDeclaration      = "interface_declaration"
	nodeEnumDeclaration           = "enum_declaration"
	nodeEnumConstant              = "enum_constant"
	nodeRecordDeclaration         = "record_declaration"
	nodeAnnotationTypeDeclaration = "annotation_type_declaration"
	nodeMethodDeclaration         = "method_declaration"
	nodeConstructorDeclaration    = "constructor_declaration"
	nodeFieldDeclaration          = "field_declaration"
	nodeVariableDeclarator        = "variable_declarator"

	nodeClassBody          = "class_body"
	nodeInterfaceBody      = "interface_body"
	nodeEnumBody           = "enum_body"
	nodeAnnotationTypeBody = "annotation_type_body"
	nodeRecordBody         = "record_declaration_body"

	nodeMethodInvocation         = "method_invocation"
	nodeObjectCreationExpression = "object_creation_expression"
	nodeFieldAccess              = "field_access"

	nodeModifiers         = "modifiers"
	nodeMarkerAnnotation  = "marker_annotation"
	nodeAnnotation        = "annotation"

	fieldName   = "name"
	fieldObject = "object"
	fieldField  = "field"
	fieldType   = "type"
)
