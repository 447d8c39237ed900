// Package mappings converts ProGuard-style deobfuscation mappings into the
// TSRG format consumed by bytecode remappers.
//
// Conversion is two passes over the same text. The first builds a
// ClassTable from every class header, the second classifies each line as a
// class, field or method and rewrites it, resolving Java types into JVM
// descriptors through the table. Types missing from the table are assumed
// to be platform classes and keep their own internal names.
package mappings

import (
	"strings"

	m "github.com/mouse-blink/mapconv/internal/model"
)

// Result is the output of converting one mapping file.
type Result struct {
	Output []byte
	Stats  m.Stats
}

// Convert translates a whole mapping file. Any malformed line aborts the
// conversion; no partial output is returned.
func Convert(text string) (Result, error) {
	lines := splitLines(text)

	table, err := buildClassTable(lines)
	if err != nil {
		return Result{}, err
	}

	translator := NewTranslator(table)
	stats := m.Stats{Duplicates: table.Duplicates()}

	var out strings.Builder

	owner := ""

	for _, l := range lines {
		entry, err := parseLine(l, owner)
		if err != nil {
			return Result{}, err
		}

		switch e := entry.(type) {
		case m.ClassEntry:
			owner = e.Deobfuscated
			stats.Classes++
		case m.FieldEntry:
			stats.Fields++
		case m.MethodEntry:
			stats.Methods++
		}

		rendered, err := translator.TranslateEntry(entry)
		if err != nil {
			return Result{}, err
		}

		out.WriteString(rendered)
		out.WriteByte('\n')
	}

	stats.External = translator.External()

	return Result{Output: []byte(out.String()), Stats: stats}, nil
}
