package mappings

import (
	"fmt"
	"strings"

	m "github.com/mouse-blink/mapconv/internal/model"
)

// Translator renders parsed entries in TSRG form using a complete ClassTable.
type Translator struct {
	table    *ClassTable
	external map[string]struct{}
}

// NewTranslator returns a Translator bound to table.
func NewTranslator(table *ClassTable) *Translator {
	return &Translator{table: table, external: make(map[string]struct{})}
}

// TranslateEntry renders one entry as a single output line without the
// trailing newline.
func (t *Translator) TranslateEntry(entry m.Entry) (string, error) {
	switch e := entry.(type) {
	case m.ClassEntry:
		return InternalPath(e.Obfuscated) + " " + InternalPath(e.Deobfuscated), nil
	case m.FieldEntry:
		return "\t" + e.Obfuscated + " " + e.Deobfuscated, nil
	case m.MethodEntry:
		return "\t" + e.Obfuscated + " " + t.MethodDescriptor(e) + " " + e.Deobfuscated, nil
	}

	return "", fmt.Errorf("unsupported entry %T", entry)
}

// MethodDescriptor assembles `(<params>)<return>` for a method entry.
func (t *Translator) MethodDescriptor(method m.MethodEntry) string {
	var sb strings.Builder

	sb.WriteByte('(')

	for _, param := range method.Params {
		sb.WriteString(t.resolve(param))
	}

	sb.WriteByte(')')
	sb.WriteString(t.resolve(method.Return))

	return sb.String()
}

// External returns the number of distinct object types that were passed
// through unchanged because the table has no entry for them.
func (t *Translator) External() int {
	return len(t.external)
}

func (t *Translator) resolve(token m.TypeToken) string {
	if !IsPrimitive(token.Base) {
		if _, ok := t.table.Lookup(InternalDescriptor(token.Base)); !ok {
			t.external[token.Base] = struct{}{}
		}
	}

	return t.table.Resolve(token)
}
