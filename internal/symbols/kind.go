package symbols

// Kind classifies a SymbolOccurrence. Declarations and references are
// disjoint families; Import and PackageDeclaration are neither.
type Kind string

const (
	ClassDeclaration            Kind = "ClassDeclaration"
	InterfaceDeclaration        Kind = "InterfaceDeclaration"
	ObjectDeclaration           Kind = "ObjectDeclaration"
	CompanionObjectDeclaration  Kind = "CompanionObjectDeclaration"
	FunctionDeclaration         Kind = "FunctionDeclaration"
	PropertyDeclaration         Kind = "PropertyDeclaration"
	EnumEntryDeclaration        Kind = "EnumEntryDeclaration"
	TypeAliasDeclaration        Kind = "TypeAliasDeclaration"
	RecordDeclaration           Kind = "RecordDeclaration"
	AnnotationTypeDeclaration   Kind = "AnnotationTypeDeclaration"
	ConstructorDeclaration      Kind = "ConstructorDeclaration"
	ExtensionFunctionDeclaration Kind = "ExtensionFunctionDeclaration"
	ParameterDeclaration        Kind = "ParameterDeclaration"

	TypeReference         Kind = "TypeReference"
	CallSite              Kind = "CallSite"
	PropertyReference     Kind = "PropertyReference"
	ExtensionFunctionCall Kind = "ExtensionFunctionCall"

	Import             Kind = "Import"
	PackageDeclaration Kind = "PackageDeclaration"
)

var declarationKinds = map[Kind]bool{
	ClassDeclaration:             true,
	InterfaceDeclaration:         true,
	ObjectDeclaration:            true,
	CompanionObjectDeclaration:   true,
	FunctionDeclaration:          true,
	PropertyDeclaration:          true,
	EnumEntryDeclaration:         true,
	TypeAliasDeclaration:         true,
	RecordDeclaration:            true,
	AnnotationTypeDeclaration:    true,
	ConstructorDeclaration:       true,
	ExtensionFunctionDeclaration: true,
	ParameterDeclaration:         true,
}

var referenceKinds = map[Kind]bool{
	TypeReference:         true,
	CallSite:              true,
	PropertyReference:     true,
	ExtensionFunctionCall: true,
}

// IsDeclaration reports whether k is one of the declaration variants.
func (k Kind) IsDeclaration() bool {
	return declarationKinds[k]
}

// IsReference reports whether k is one of the reference variants.
func (k Kind) IsReference() bool {
	return referenceKinds[k]
}
