package common

import (
	"fmt"
	"strings"

	"github.com/golang-cz/textcase"
)

// reservedNames cannot be used as parameter names in the generated files.
var reservedNames = map[string]struct{}{
	"and": {}, "as": {}, "assert": {}, "break": {}, "class": {}, "continue": {},
	"def": {}, "del": {}, "elif": {}, "else": {}, "except": {}, "finally": {},
	"for": {}, "from": {}, "global": {}, "if": {}, "import": {}, "in": {},
	"is": {}, "lambda": {}, "nonlocal": {}, "not": {}, "or": {}, "pass": {},
	"raise": {}, "return": {}, "try": {}, "while": {}, "with": {}, "yield": {},
	"None": {}, "True": {}, "False": {},
	"cdef": {}, "cpdef": {}, "ctypedef": {}, "cimport": {}, "struct": {},
	"union": {}, "enum": {}, "extern": {}, "inline": {}, "public": {},
	"readonly": {}, "nogil": {}, "gil": {}, "const": {}, "ret": {},
}

// NormalizeVoidList turns a literal "(void)" parameter list into "()".
func NormalizeVoidList(s string) string {
	return strings.ReplaceAll(s, "(void)", "()")
}

// StripPrefix removes the handle prefix from a type name, e.g. "GLenum" -> "enum".
func StripPrefix(name, prefix string) string {
	if prefix != "" && strings.HasPrefix(name, prefix) && len(name) > len(prefix) {
		return name[len(prefix):]
	}
	return name
}

// DeclType renders the declared type of a slot in native-declaration form,
// ready to be followed by a name: "GLenum ", "const void *", "const GLchar **".
func DeclType(p Param) string {
	var sb strings.Builder
	if p.Const {
		sb.WriteString("const ")
	}
	sb.WriteString(p.Type)
	sb.WriteString(" ")
	sb.WriteString(strings.Repeat("*", p.PointerDepth))
	return sb.String()
}

// Declaration renders "ret name(params)" for a normalized function, with a
// literal (void) list normalized to ().
func Declaration(fn NormalizedFunction, prefix string) string {
	params := make([]string, len(fn.Params))
	for i, p := range fn.Params {
		name := SanitizeParamName(p.Param, i, prefix)
		if p.IsVoid() && len(fn.Params) == 1 && p.Name == "" {
			params[i] = "void"
			continue
		}
		params[i] = DeclType(p.Param) + name
	}
	return NormalizeVoidList(fmt.Sprintf("%s%s(%s)", DeclType(fn.Return.Param), fn.Name, strings.Join(params, ", ")))
}

// SanitizeParamName fixes a parameter name if it is not usable in the
// generated files. Unnamed parameters are named after their type.
func SanitizeParamName(p Param, index int, prefix string) string {
	name := p.Name
	isBad := func(name string) bool {
		if name == "" {
			return true
		}
		if name[0] >= '0' && name[0] <= '9' {
			return true
		}
		_, reserved := reservedNames[name]
		return reserved
	}

	if !isBad(name) {
		return name
	}

	if name != "" && !(name[0] >= '0' && name[0] <= '9') {
		return name + "_"
	}

	base := textcase.CamelCase(StripPrefix(p.Type, prefix))
	if base == "" {
		base = "arg"
	}
	return fmt.Sprintf("%s%d", base, index)
}

// GetNameFromVersion derives the wrapper file and loader name of a version:
// identifiers naming a core version are kept, extensions get an "ext_" prefix.
func GetNameFromVersion(versionName string) string {
	if strings.Contains(strings.ToLower(versionName), "version") {
		return versionName
	}
	return "ext_" + versionName
}

// RewriteCast turns a doubly parenthesized reinterpretation such as
// "((GLfloat)(1065353216))" into the target cast notation "(<GLfloat>1065353216)".
// Other literals are returned unchanged.
func RewriteCast(value string) string {
	if !strings.HasPrefix(value, "((") {
		return value
	}
	v := strings.Trim(value, "()")
	v = strings.ReplaceAll(v, ")", ">")
	v = strings.ReplaceAll(v, "(", "")
	return "(<" + v + ")"
}
