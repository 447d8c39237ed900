package mappings

import (
	"strconv"
	"strings"

	m "github.com/mouse-blink/mapconv/internal/model"
)

// ParseEntries runs the classification step over a whole mapping file and
// returns one Entry per declaration line, in input order.
func ParseEntries(text string) ([]m.Entry, error) {
	lines := splitLines(text)
	entries := make([]m.Entry, 0, len(lines))
	owner := ""

	for _, l := range lines {
		entry, err := parseLine(l, owner)
		if err != nil {
			return nil, err
		}

		if class, ok := entry.(m.ClassEntry); ok {
			owner = class.Deobfuscated
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

func parseLine(l line, owner string) (m.Entry, error) {
	if !l.isMember() {
		rename, err := parseHeader(l)
		if err != nil {
			return nil, err
		}

		return m.ClassEntry{ClassRename: rename}, nil
	}

	if owner == "" {
		return nil, memberError(l, "member line before any class header")
	}

	return parseMember(l, owner)
}

// parseMember classifies one indented line. A member is a method if and
// only if its name segment holds both parentheses.
func parseMember(l line, owner string) (m.Entry, error) {
	text := strings.TrimSpace(l.text)

	decl, obf, ok := strings.Cut(text, arrowSeparator)
	if !ok {
		return nil, memberError(l, "missing \" -> \"")
	}

	obf = strings.TrimSpace(obf)
	if obf == "" || strings.ContainsAny(obf, " \t") {
		return nil, memberError(l, "invalid obfuscated name")
	}

	rawType, name, ok := strings.Cut(strings.TrimSpace(decl), " ")
	if !ok || name == "" {
		return nil, memberError(l, "missing member name")
	}

	if strings.ContainsAny(name, " \t") {
		return nil, memberError(l, "unexpected whitespace in member name")
	}

	lines, rawType, err := splitLineRange(rawType)
	if err != nil {
		return nil, memberError(l, err.Error())
	}

	typ, err := ParseTypeToken(rawType)
	if err != nil {
		return nil, memberError(l, err.Error())
	}

	hasOpen := strings.Contains(name, "(")
	hasClose := strings.Contains(name, ")")

	switch {
	case hasOpen && hasClose:
		return parseMethod(l, owner, typ, name, obf, lines)
	case hasOpen || hasClose:
		return nil, memberError(l, "unbalanced parentheses")
	}

	return m.FieldEntry{
		Owner:        owner,
		Type:         typ,
		Deobfuscated: name,
		Obfuscated:   obf,
	}, nil
}

func parseMethod(l line, owner string, ret m.TypeToken, name, obf string, lines *m.LineRange) (m.Entry, error) {
	open := strings.Index(name, "(")
	closing := strings.LastIndex(name, ")")

	if closing < open || strings.Count(name, "(") != 1 || strings.Count(name, ")") != 1 {
		return nil, memberError(l, "unbalanced parentheses")
	}

	deobf := name[:open]
	if deobf == "" {
		return nil, memberError(l, "missing method name")
	}

	// ProGuard may append the original source range: name(args):12:14
	if rest := name[closing+1:]; rest != "" && !strings.HasPrefix(rest, ":") {
		return nil, memberError(l, "unexpected text after parameter list")
	}

	method := m.MethodEntry{
		Owner:        owner,
		Return:       ret,
		Deobfuscated: deobf,
		Obfuscated:   obf,
		Lines:        lines,
	}

	args := name[open+1 : closing]
	if args == "" {
		return method, nil
	}

	for _, arg := range strings.Split(args, ",") {
		param, err := ParseTypeToken(arg)
		if err != nil {
			return nil, memberError(l, "parameter: "+err.Error())
		}

		method.Params = append(method.Params, param)
	}

	return method, nil
}

// splitLineRange strips a `<start>:<end>:` prefix from a type token.
func splitLineRange(rawType string) (*m.LineRange, string, error) {
	parts := strings.Split(rawType, ":")

	switch len(parts) {
	case 1:
		return nil, rawType, nil
	case 3:
	default:
		return nil, "", errBadLineRange
	}

	start, err := strconv.Atoi(parts[0])
	if err != nil {
		return nil, "", errBadLineRange
	}

	end, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil, "", errBadLineRange
	}

	return &m.LineRange{Start: start, End: end}, parts[2], nil
}

func memberError(l line, reason string) error {
	return &MalformedMemberError{Line: l.number, Text: l.text, Reason: reason}
}
