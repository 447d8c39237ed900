package mappings

import (
	"errors"
	"strings"

	m "github.com/mouse-blink/mapconv/internal/model"
)

const arraySuffix = "[]"

var primitiveCodes = map[string]string{
	m.TypeInt:     "I",
	m.TypeDouble:  "D",
	m.TypeBoolean: "Z",
	m.TypeFloat:   "F",
	m.TypeLong:    "J",
	m.TypeByte:    "B",
	m.TypeShort:   "S",
	m.TypeChar:    "C",
	m.TypeVoid:    "V",
}

var (
	errEmptyType     = errors.New("empty type")
	errStrayBrackets = errors.New("unbalanced array brackets in type")
	errTypeSpaces    = errors.New("whitespace inside type")
	errBadLineRange  = errors.New("invalid line range prefix")
)

// IsPrimitive reports whether base is one of the eight primitive names or void.
func IsPrimitive(base string) bool {
	_, ok := primitiveCodes[base]
	return ok
}

// InternalPath converts a dotted name to slash-separated internal form.
func InternalPath(name string) string {
	return strings.ReplaceAll(name, ".", "/")
}

// InternalDescriptor converts a dotted class name to `Lpkg/Name;`.
func InternalDescriptor(name string) string {
	return "L" + InternalPath(name) + ";"
}

// ParseTypeToken counts and strips trailing `[]` pairs from a Java type.
func ParseTypeToken(raw string) (m.TypeToken, error) {
	token := m.TypeToken{Base: raw}

	for strings.HasSuffix(token.Base, arraySuffix) {
		token.Base = strings.TrimSuffix(token.Base, arraySuffix)
		token.ArrayDepth++
	}

	switch {
	case token.Base == "":
		return m.TypeToken{}, errEmptyType
	case strings.ContainsAny(token.Base, "[]"):
		return m.TypeToken{}, errStrayBrackets
	case strings.ContainsAny(token.Base, " \t"):
		return m.TypeToken{}, errTypeSpaces
	}

	return token, nil
}

// Resolve returns the JVM descriptor for token. Object types found in the
// table are renamed to their obfuscated form; all others pass through.
func (t *ClassTable) Resolve(token m.TypeToken) string {
	return strings.Repeat("[", token.ArrayDepth) + t.baseDescriptor(token.Base)
}

func (t *ClassTable) baseDescriptor(base string) string {
	if code, ok := primitiveCodes[base]; ok {
		return code
	}

	descriptor := InternalDescriptor(base)
	if obf, ok := t.Lookup(descriptor); ok {
		return InternalDescriptor(obf)
	}

	return descriptor
}
