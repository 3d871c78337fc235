package common

// Unhandled is the native type a descriptor is normalized to when its type name
// cannot be resolved (missing name, struct alias).
const Unhandled = "unhandled"

// VoidP is the base category of an untyped pointer.
const VoidP = "voidp"

// Param describes one parameter or return slot as delivered by the registry parser.
type Param struct {
	Name         string `yaml:"name" json:"name"`
	Type         string `yaml:"type" json:"type"`       // empty when the parser could not resolve it
	PointerDepth int    `yaml:"pointer" json:"pointer"` // 0 value, 1 pointer, 2+ pointer to pointer
	Const        bool   `yaml:"const" json:"const"`
}

// IsVoid reports whether the slot is a plain (non pointer) void.
func (p Param) IsVoid() bool {
	return p.Type == "void" && p.PointerDepth == 0
}

// RawFunction is a function entry from the tables file.
type RawFunction struct {
	Name   string  `yaml:"name" json:"name"`
	Return Param   `yaml:"return" json:"return"`
	Params []Param `yaml:"params" json:"params"`
}

// NormalizedParam carries the declared descriptor plus its alias resolution.
type NormalizedParam struct {
	Param
	Native string // e.g. "unsigned int" for "GLenum", or Unhandled
}

// NormalizedFunction is a RawFunction with every descriptor passed through the alias table.
type NormalizedFunction struct {
	Name   string
	Return NormalizedParam
	Params []NormalizedParam
}

// TypeAlias represents an entry in the "types" table.
type TypeAlias struct {
	Name   string `yaml:"name" json:"name"`     // e.g. "GLenum"
	Native string `yaml:"native" json:"native"` // e.g. "unsigned int"
	Struct bool   `yaml:"struct" json:"struct"` // compound types are never emitted as aliases
}

// EnumConstant is one enumerator. Value is kept exactly as written upstream.
type EnumConstant struct {
	Name  string `yaml:"name" json:"name"`
	Value string `yaml:"value" json:"value"`
	Group string `yaml:"group,omitempty" json:"group,omitempty"`
}

// Feature is one API version or extension and the names it requires.
type Feature struct {
	Name      string   `yaml:"name" json:"name"` // e.g. "GL_VERSION_3_3", "GL_ARB_debug_output"
	Functions []string `yaml:"functions" json:"functions"`
	Enums     []string `yaml:"enums" json:"enums"`
}

// Tables is the full snapshot produced by the external registry parser.
type Tables struct {
	Types     []TypeAlias       `yaml:"types" json:"types"`
	BaseTypes map[string]string `yaml:"baseTypes" json:"baseTypes"`
	Functions []RawFunction     `yaml:"functions" json:"functions"`
	Enums     []EnumConstant    `yaml:"enums" json:"enums"`
	Features  []Feature         `yaml:"features,omitempty" json:"features,omitempty"`
}
