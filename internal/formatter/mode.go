// Package formatter turns a document and the user's settings into an AStyle
// engine call.
package formatter

// DocumentType classifies a host document type name for mode selection.
type DocumentType int

const (
	TypeOther DocumentType = iota
	TypeC
	TypeCPP
	TypeJava
	TypeCSharp
)

// ParseDocumentType maps a host type name onto a DocumentType. Matching is
// exact and case-sensitive.
func ParseDocumentType(name string) DocumentType {
	switch name {
	case "C":
		return TypeC
	case "C++":
		return TypeCPP
	case "Java":
		return TypeJava
	case "C#":
		return TypeCSharp
	default:
		return TypeOther
	}
}

func (t DocumentType) String() string {
	switch t {
	case TypeC:
		return "C"
	case TypeCPP:
		return "C++"
	case TypeJava:
		return "Java"
	case TypeCSharp:
		return "C#"
	default:
		return "Other"
	}
}

// ModeFlag returns the engine's language mode argument for t. Other
// documents get no flag and the engine picks its own default.
func (t DocumentType) ModeFlag() string {
	switch t {
	case TypeC, TypeCPP:
		return "--mode=c"
	case TypeJava:
		return "--mode=java"
	case TypeCSharp:
		return "--mode=cs"
	case TypeOther:
		return ""
	default:
		return ""
	}
}

// ComposeOptions joins the mode flag and the option string with a single
// space. The space is kept when modeFlag is empty; the engine's argument
// parser skips leading whitespace.
func ComposeOptions(modeFlag, optionString string) string {
	return modeFlag + " " + optionString
}
