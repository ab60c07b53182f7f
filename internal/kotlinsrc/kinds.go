// Package kotlinsrc implements the Kotlin occurrence-extraction pipeline:
// tree-sitter node kinds are grammar-version-sensitive (tree-sitter-kotlin),
// so they are collected here as a table rather than scattered through the
// traversal in extract.go.
package kotlinsrc

const (
	nodePackageHeader  = "package_header"
	nodeImportList     = "import_list"
	nodeImportHeader   = "import_header"
	nodeWildcardImport = "wildcard_import"
	nodeIdentifier     = "identifier"
	nodeSimpleIdent    = "simple_identifier"
	nodeTypeIdentifier = "type_identifier"

	nodeClassDeclaration    = "class_declaration"
	nodeObjectDeclaration   = "object_declaration"
	nodeCompanionObject     = "companion_object"
	nodeClassBody           = "class_body"
	nodeEnumClassBody       = "enum_class_body"
	nodeEnumEntry           = "enum_entry"
	nodeFunctionDeclaration = "function_declaration"
	nodePropertyDeclaration = "property_declaration"
	nodeVariableDeclaration = "variable_declaration"
	nodeTypeAlias           = "type_alias"

	nodeCallExpression       = "call_expression"
	nodeNavigationExpression = "navigation_expression"
	nodeUserType             = "user_type"

	kwInterface = "interface"
	kwAs        = "as"
)
