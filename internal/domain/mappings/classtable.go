package mappings

import (
	"strings"

	m "github.com/mouse-blink/mapconv/internal/model"
)

// ClassTable maps the internal descriptor of a deobfuscated class name
// (`Lpkg/Name;`) to its obfuscated name. It is immutable once built.
type ClassTable struct {
	entries    map[string]string
	duplicates []string
}

// BuildClassTable runs the first pass over a mapping file and records every
// class header. Member lines are ignored. When a header repeats, the last
// one wins and the descriptor is listed in Duplicates.
func BuildClassTable(text string) (*ClassTable, error) {
	return buildClassTable(splitLines(text))
}

func buildClassTable(lines []line) (*ClassTable, error) {
	table := &ClassTable{entries: make(map[string]string)}

	for _, l := range lines {
		if l.isMember() {
			continue
		}

		rename, err := parseHeader(l)
		if err != nil {
			return nil, err
		}

		descriptor := InternalDescriptor(rename.Deobfuscated)
		if _, exists := table.entries[descriptor]; exists {
			table.duplicates = append(table.duplicates, descriptor)
		}

		table.entries[descriptor] = rename.Obfuscated
	}

	return table, nil
}

// Lookup returns the obfuscated name recorded for descriptor.
func (t *ClassTable) Lookup(descriptor string) (string, bool) {
	obf, ok := t.entries[descriptor]
	return obf, ok
}

// Len returns the number of distinct classes in the table.
func (t *ClassTable) Len() int {
	return len(t.entries)
}

// Duplicates returns descriptors that were declared by more than one header.
func (t *ClassTable) Duplicates() []string {
	return append([]string(nil), t.duplicates...)
}

// parseHeader reads `<deobf> -> <obf>:` and drops anything after the first
// colon of the obfuscated side.
func parseHeader(l line) (m.ClassRename, error) {
	deobf, obf, ok := strings.Cut(l.text, arrowSeparator)
	if !ok {
		return m.ClassRename{}, &MalformedHeaderError{Line: l.number, Text: l.text, Reason: "missing \" -> \""}
	}

	obf, _, ok = strings.Cut(obf, ":")
	if !ok {
		return m.ClassRename{}, &MalformedHeaderError{Line: l.number, Text: l.text, Reason: "missing trailing \":\""}
	}

	deobf = strings.TrimSpace(deobf)
	obf = strings.TrimSpace(obf)

	if deobf == "" || obf == "" {
		return m.ClassRename{}, &MalformedHeaderError{Line: l.number, Text: l.text, Reason: "empty class name"}
	}

	if strings.Contains(obf, arrowSeparator) {
		return m.ClassRename{}, &MalformedHeaderError{Line: l.number, Text: l.text, Reason: "repeated \" -> \""}
	}

	return m.ClassRename{Deobfuscated: deobf, Obfuscated: obf}, nil
}
