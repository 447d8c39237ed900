// Package model defines the data structures shared by the mapping converter.
package model

// Primitive names accepted as type tokens, including void.
const (
	TypeInt     = "int"
	TypeDouble  = "double"
	TypeBoolean = "boolean"
	TypeFloat   = "float"
	TypeLong    = "long"
	TypeByte    = "byte"
	TypeShort   = "short"
	TypeChar    = "char"
	TypeVoid    = "void"
)

// ClassRename pairs a dotted deobfuscated class name with its obfuscated name.
type ClassRename struct {
	Deobfuscated string
	Obfuscated   string
}

// TypeToken is a single type reference from a field or method signature.
// Base is either a primitive name, void, or a dotted class name.
type TypeToken struct {
	ArrayDepth int
	Base       string
}

// LineRange is the optional `start:end:` prefix on ProGuard method lines.
type LineRange struct {
	Start int
	End   int
}

// EntryKind classifies a declaration line.
type EntryKind string

const (
	// KindClass is a top-level class header.
	KindClass EntryKind = "class"
	// KindField is an indented member line without a parameter list.
	KindField EntryKind = "field"
	// KindMethod is an indented member line with a parameter list.
	KindMethod EntryKind = "method"
)

// Entry is one parsed declaration line. The concrete type is one of
// ClassEntry, FieldEntry or MethodEntry.
type Entry interface {
	Kind() EntryKind
}

// ClassEntry is a parsed class header.
type ClassEntry struct {
	ClassRename
}

// Kind implements Entry.
func (ClassEntry) Kind() EntryKind { return KindClass }

// FieldEntry is a parsed field line. Type is parsed but not emitted.
type FieldEntry struct {
	Owner        string
	Type         TypeToken
	Deobfuscated string
	Obfuscated   string
}

// Kind implements Entry.
func (FieldEntry) Kind() EntryKind { return KindField }

// MethodEntry is a parsed method line.
type MethodEntry struct {
	Owner        string
	Return       TypeToken
	Params       []TypeToken
	Deobfuscated string
	Obfuscated   string
	Lines        *LineRange // discarded on output
}

// Kind implements Entry.
func (MethodEntry) Kind() EntryKind { return KindMethod }
